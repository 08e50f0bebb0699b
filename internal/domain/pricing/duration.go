package pricing

import "time"

// Minutes past the last full hour that are absorbed without billing another hour.
const graceMinutes = 20

// BillableHours converts a stay into whole billable hours.
//
// Elapsed time is counted in minutes, any partial minute rounding up. A remainder of more
// than graceMinutes over the full hours bills one more hour, and every positive stay bills
// at least one hour. Missing or unparseable timestamps, or a check-out that is not after
// check-in, yield 0, which callers must treat as an invalid duration.
func BillableHours(checkIn, checkOut string) int {
	in, ok := ParseTimestamp(checkIn)
	if !ok {
		return 0
	}
	out, ok := ParseTimestamp(checkOut)
	if !ok {
		return 0
	}
	return HoursBetween(in, out)
}

func HoursBetween(in, out time.Time) int {
	if !out.After(in) {
		return 0
	}
	elapsed := out.Sub(in)
	minutes := int64((elapsed + time.Minute - 1) / time.Minute)

	hours := minutes / 60
	if minutes%60 > graceMinutes {
		hours++
	}
	return int(max(hours, 1))
}
