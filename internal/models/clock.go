package models

import "time"

// Clock supplies the current time. Services take one so tests can pin it.
type Clock func() time.Time

// SystemClock is the wall clock in UTC
func SystemClock() time.Time {
	return time.Now().UTC()
}

// NextUpdate returns the updated_at for a record last stamped at prev.
// It never moves backwards, even if the wall clock does.
func NextUpdate(prev, now time.Time) time.Time {
	if now.Before(prev) {
		return prev
	}
	return now
}
