//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/pkg/clock"
	"hotel-fastbill/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.BookingBuilder)
	errIs  error
}

func TestBooking(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		createdAt := time.Date(2025, 3, 1, 7, 30, 15, 123_000_000, time.UTC)
		actual, err := booking.New("bk_1", builder.NewBookingBuilder().BuildDraft(), createdAt)
		require.NoError(t, err)

		expected := booking.Booking{
			ID:        "bk_1",
			RoomID:    "101",
			CheckIn:   "2025-03-01T14:00",
			CheckOut:  "2025-03-01T17:30",
			WaterS:    1,
			WaterN:    0,
			WaterB:    1,
			Notes:     "",
			CreatedAt: "2025-03-01T07:30:15.123Z",
		}
		if diff := cmp.Diff(expected, actual); diff != "" {
			t.Errorf("Booking mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("created at is rendered in UTC", func(t *testing.T) {
		loc := time.FixedZone("ICT", 7*60*60)
		actual, err := booking.New("bk_1", builder.NewBookingBuilder().BuildDraft(), time.Date(2025, 3, 1, 9, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.Equal(t, "2025-03-01T02:00:00.000Z", actual.CreatedAt)
	})

	t.Run("draft validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "trimmed room OK", mutate: func(b *builder.BookingBuilder) { b.WithRoom(" 101 ") }},
			{name: "missing room NG", mutate: func(b *builder.BookingBuilder) { b.WithRoom("") }, errIs: booking.ErrRoomRequired},
			{name: "missing check-in NG", mutate: func(b *builder.BookingBuilder) { b.WithCheckIn("") }, errIs: booking.ErrTimesRequired},
			{name: "missing check-out NG", mutate: func(b *builder.BookingBuilder) { b.WithCheckOut(" ") }, errIs: booking.ErrTimesRequired},
			{name: "zero counts OK", mutate: func(b *builder.BookingBuilder) { b.WithWater(0, 0, 0) }},
			{name: "negative S NG", mutate: func(b *builder.BookingBuilder) { b.WithWater(-1, 0, 0) }, errIs: booking.ErrInvalidQuantity},
			{name: "negative N NG", mutate: func(b *builder.BookingBuilder) { b.WithWater(0, -2, 0) }, errIs: booking.ErrInvalidQuantity},
			{name: "negative B NG", mutate: func(b *builder.BookingBuilder) { b.WithWater(0, 0, -3) }, errIs: booking.ErrInvalidQuantity},
		})
	})

	t.Run("id is required", func(t *testing.T) {
		_, err := booking.New(" ", builder.NewBookingBuilder().BuildDraft(), time.Now())
		require.ErrorIs(t, err, booking.ErrInvalidID)
	})
}

func TestIDGenerator(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	gen := booking.NewIDGenerator(clock.NewMockClock(now))

	t.Run("timestamp derived", func(t *testing.T) {
		assert.Equal(t, "bk_1700000000000", gen.Next(nil))
	})

	t.Run("skips taken ids", func(t *testing.T) {
		taken := map[string]bool{"bk_1700000000000": true, "bk_1700000000001": true}
		got := gen.Next(func(id string) bool { return taken[id] })
		assert.Equal(t, "bk_1700000000002", got)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := booking.New("bk_1", builder.NewBookingBuilder().With(c.mutate).BuildDraft(), time.Now())

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotEmpty(t, actual.ID)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
