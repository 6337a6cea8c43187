package ports

import "time"

// Clock abstracts the current time so duplicate-detection windows and
// unclaimed-order cutoffs are testable.
type Clock interface {
	Now() time.Time
}
