package utils

import (
	"time"
)

// TimeNowUTC returns the current time in UTC, the zone every ledger timestamp is stored in.
func TimeNowUTC() time.Time {
	return time.Now().UTC()
}
