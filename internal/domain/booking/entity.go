package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrRoomRequired    = errors.New("room is required")
	ErrTimesRequired   = errors.New("check-in and check-out are required")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidID       = errors.New("booking id is required")
)

// CreatedAtLayout matches the ISO-8601 form the bookings were always stored with.
const CreatedAtLayout = "2006-01-02T15:04:05.000Z"

// Booking is an immutable record of one stay. CheckIn and CheckOut keep the wall-clock
// text the clerk entered.
type Booking struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	WaterS    int    `json:"waterS"`
	WaterN    int    `json:"waterN"`
	WaterB    int    `json:"waterB"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

// Draft carries the form fields of a booking before it has an identity.
type Draft struct {
	RoomID   string
	CheckIn  string
	CheckOut string
	WaterS   int
	WaterN   int
	WaterB   int
	Notes    string
}

func (d Draft) Normalize() Draft {
	d.RoomID = strings.TrimSpace(d.RoomID)
	d.CheckIn = strings.TrimSpace(d.CheckIn)
	d.CheckOut = strings.TrimSpace(d.CheckOut)
	return d
}

func (d Draft) Validate() error {
	if d.RoomID == "" {
		return ErrRoomRequired
	}
	if d.CheckIn == "" || d.CheckOut == "" {
		return ErrTimesRequired
	}
	return ValidateQuantities(d.WaterS, d.WaterN, d.WaterB)
}

func New(id string, d Draft, createdAt time.Time) (Booking, error) {
	if strings.TrimSpace(id) == "" {
		return Booking{}, ErrInvalidID
	}
	d = d.Normalize()
	if err := d.Validate(); err != nil {
		return Booking{}, err
	}
	return Booking{
		ID:        id,
		RoomID:    d.RoomID,
		CheckIn:   d.CheckIn,
		CheckOut:  d.CheckOut,
		WaterS:    d.WaterS,
		WaterN:    d.WaterN,
		WaterB:    d.WaterB,
		Notes:     d.Notes,
		CreatedAt: createdAt.UTC().Format(CreatedAtLayout),
	}, nil
}

func ValidateQuantities(counts ...int) error {
	for _, c := range counts {
		if c < 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}
