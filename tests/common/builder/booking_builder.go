//go:build unit || e2e

package builder

import (
	"time"

	"hotel-fastbill/internal/domain/booking"
	reqdto "hotel-fastbill/internal/handler/dto/request"
	"hotel-fastbill/internal/usecase/commands"
)

type BookingBuilder struct {
	RoomID    string
	CheckIn   string
	CheckOut  string
	WaterS    int
	WaterN    int
	WaterB    int
	Notes     string
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		RoomID:    "101",
		CheckIn:   "2025-03-01T14:00",
		CheckOut:  "2025-03-01T17:30",
		WaterS:    1,
		WaterN:    0,
		WaterB:    1,
		Notes:     "",
		CreatedAt: time.Date(2025, 3, 1, 7, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithRoom(roomID string) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithCheckIn(v string) *BookingBuilder {
	b.CheckIn = v
	return b
}

func (b *BookingBuilder) WithCheckOut(v string) *BookingBuilder {
	b.CheckOut = v
	return b
}

func (b *BookingBuilder) WithWater(s, n, beer int) *BookingBuilder {
	b.WaterS, b.WaterN, b.WaterB = s, n, beer
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = notes
	return b
}

// Build methods
func (b *BookingBuilder) BuildDraft() booking.Draft {
	return booking.Draft{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		WaterS:   b.WaterS,
		WaterN:   b.WaterN,
		WaterB:   b.WaterB,
		Notes:    b.Notes,
	}
}

// BuildDomain skips validation so tests can price malformed records.
func (b *BookingBuilder) BuildDomain(id string) booking.Booking {
	return booking.Booking{
		ID:        id,
		RoomID:    b.RoomID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		WaterS:    b.WaterS,
		WaterN:    b.WaterN,
		WaterB:    b.WaterB,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt.UTC().Format(booking.CreatedAtLayout),
	}
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{Draft: b.BuildDraft()}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		RoomID:   b.RoomID,
		CheckIn:  b.CheckIn,
		CheckOut: b.CheckOut,
		WaterS:   reqdto.QuantityOf(b.WaterS),
		WaterN:   reqdto.QuantityOf(b.WaterN),
		WaterB:   reqdto.QuantityOf(b.WaterB),
		Notes:    b.Notes,
	}
}
