//go:build unit

package pricing_test

import "time"

func minutesDuration(m int) time.Duration {
	return time.Duration(m) * time.Minute
}
