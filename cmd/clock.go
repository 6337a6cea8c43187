package cmd

import "time"

// systemClock reads the wall clock.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
