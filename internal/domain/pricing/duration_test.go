//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"hotel-fastbill/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillableHours(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{name: "exactly 60 minutes", checkIn: "2025-03-01T10:00", checkOut: "2025-03-01T11:00", want: 1},
		{name: "80 minutes stays within grace", checkIn: "2025-03-01T10:00", checkOut: "2025-03-01T11:20", want: 1},
		{name: "81 minutes rounds up", checkIn: "2025-03-01T10:00", checkOut: "2025-03-01T11:21", want: 2},
		{name: "3h30m rounds up", checkIn: "2025-03-01T14:00", checkOut: "2025-03-01T17:30", want: 4},
		{name: "short stay bills one hour", checkIn: "2025-03-01T10:00", checkOut: "2025-03-01T10:05", want: 1},
		{name: "21 minutes bills one hour", checkIn: "2025-03-01T10:00", checkOut: "2025-03-01T10:21", want: 1},
		{name: "partial minute counts as a minute", checkIn: "2025-03-01T10:00:00", checkOut: "2025-03-01T11:20:01", want: 2},
		{name: "overnight", checkIn: "2025-03-01T23:30", checkOut: "2025-03-02T08:00", want: 9},
		{name: "equal timestamps", checkIn: "2025-03-01T10:00", checkOut: "2025-03-01T10:00", want: 0},
		{name: "check-out before check-in", checkIn: "2025-03-01T12:00", checkOut: "2025-03-01T10:00", want: 0},
		{name: "missing check-in", checkIn: "", checkOut: "2025-03-01T10:00", want: 0},
		{name: "missing check-out", checkIn: "2025-03-01T10:00", checkOut: "", want: 0},
		{name: "unparseable", checkIn: "yesterday", checkOut: "2025-03-01T10:00", want: 0},
		{name: "with seconds and space separator", checkIn: "2025-03-01 10:00:00", checkOut: "2025-03-01 12:00:00", want: 2},
		{name: "with zone offsets", checkIn: "2025-03-01T10:00:00+07:00", checkOut: "2025-03-01T04:00:00Z", want: 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, pricing.BillableHours(c.checkIn, c.checkOut))
		})
	}
}

func TestBillableHoursMonotonic(t *testing.T) {
	in := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	prev := 0
	for s := 0; s <= 12*60*60; s += 15 {
		got := pricing.HoursBetween(in, in.Add(time.Duration(s)*time.Second))
		if got < prev {
			t.Fatalf("hours decreased at %ds: %d < %d", s, got, prev)
		}
		if s > 0 && got < 1 {
			t.Fatalf("positive stay of %ds billed %d hours", s, got)
		}
		prev = got
	}
}

func TestParseTimestamp(t *testing.T) {
	valid := []string{
		"2025-03-01T14:00",
		"2025-03-01T14:00:05",
		"2025-03-01T14:00:05.250",
		"2025-03-01T14:00:05Z",
		"2025-03-01T14:00:05+07:00",
		"2025-03-01 14:00",
	}
	for _, v := range valid {
		_, ok := pricing.ParseTimestamp(v)
		assert.True(t, ok, v)
	}

	for _, v := range []string{"", "  ", "14:00", "01/03/2025 14:00", "not a date", "2025-03-01"} {
		_, ok := pricing.ParseTimestamp(v)
		assert.False(t, ok, v)
	}

	got, ok := pricing.ParseTimestamp("2025-03-01T23:15")
	assert.True(t, ok)
	assert.Equal(t, 23, got.Hour())
}

func TestParseDateBound(t *testing.T) {
	got, ok := pricing.ParseDateBound("2025-03-01")
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)

	got, ok = pricing.ParseDateBound(" 2025-03-01T14:30 ")
	require.True(t, ok)
	assert.Equal(t, 14, got.Hour())

	for _, v := range []string{"", "last week", "2025-13-01"} {
		_, ok := pricing.ParseDateBound(v)
		assert.False(t, ok, v)
	}
}
