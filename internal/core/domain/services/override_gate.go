package services

import (
	"crypto/subtle"
	"log/slog"

	"frameshop/internal/pkg/errs"
)

// OverrideGate is a domain service that authorizes proceeding with a material
// order batch despite an elevated risk verdict. Authorization needs both a
// named actor and the shared management override code.
//
// Code comparison is constant-time and every decision is logged, granted or
// denied, so override usage is reviewable after the fact.
type OverrideGate struct {
	overrideCode string
	logger       *slog.Logger
}

// NewOverrideGate creates an OverrideGate checking against the given code.
func NewOverrideGate(overrideCode string, logger *slog.Logger) OverrideGate {
	return OverrideGate{
		overrideCode: overrideCode,
		logger:       logger.With(slog.String("component", "override_gate")),
	}
}

// Authorize checks the actor, the justification, and the code. It returns an
// AuthorizationDeniedError when the actor or justification is missing, the
// code is wrong, or no code is configured.
func (g OverrideGate) Authorize(actorID, code, reason string) error {
	if actorID == "" {
		g.logger.Warn("override denied", slog.String("cause", "missing actor"))
		return errs.NewAuthorizationDeniedError("unknown")
	}

	if reason == "" {
		g.logger.Warn("override denied",
			slog.String("actor_id", actorID),
			slog.String("cause", "missing justification"))
		return errs.NewAuthorizationDeniedError(actorID)
	}

	if g.overrideCode == "" {
		g.logger.Warn("override denied",
			slog.String("actor_id", actorID),
			slog.String("reason", reason),
			slog.String("cause", "no override code configured"))
		return errs.NewAuthorizationDeniedError(actorID)
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(g.overrideCode)) != 1 {
		g.logger.Warn("override denied",
			slog.String("actor_id", actorID),
			slog.String("reason", reason),
			slog.String("cause", "invalid override code"))
		return errs.NewAuthorizationDeniedError(actorID)
	}

	g.logger.Info("override authorized",
		slog.String("actor_id", actorID),
		slog.String("reason", reason))
	return nil
}
