package cmd

import "time"

// Config carries everything the application reads from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OverrideCode is the shared management secret that unlocks high-risk
	// material ordering. Empty means overrides are effectively disabled.
	OverrideCode string

	// DuplicateWindow is the lookback used by duplicate detection.
	DuplicateWindow time.Duration

	// MaxDailyVendorOrders caps per-vendor order volume inside the window.
	MaxDailyVendorOrders int

	// UnclaimedAfter is how long a READY_FOR_PICKUP order may wait before
	// the sweep moves it to MYSTERY_UNCLAIMED.
	UnclaimedAfter time.Duration

	// NotifyQueueCapacity bounds the status notification dispatch queue.
	NotifyQueueCapacity int
}
