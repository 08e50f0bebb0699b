package shared

import (
	"context"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/domain/settings"
)

type UnitOfWork interface {
	// Within: serialized read-modify-write; staged collections are saved when fn returns nil
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Snapshot: consistent read of all collections
	Snapshot(ctx context.Context) (State, error)
}

type Tx interface {
	State() State
	SetRooms(rooms []room.Room)
	SetBookings(bookings []booking.Booking)
	SetSettings(s settings.Settings)
}

// State is the whole application state. Rooms and bookings are ordered newest first.
type State struct {
	Rooms    []room.Room
	Bookings []booking.Booking
	Settings settings.Settings
}

func (s State) Directory() room.Directory {
	return room.NewDirectory(s.Rooms)
}

func (s State) BookingByID(id string) (booking.Booking, bool) {
	for _, b := range s.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return booking.Booking{}, false
}

// Clone copies the slices so callers can modify the result freely.
func (s State) Clone() State {
	out := State{Settings: s.Settings.Clone()}
	out.Rooms = append(make([]room.Room, 0, len(s.Rooms)), s.Rooms...)
	out.Bookings = append(make([]booking.Booking, 0, len(s.Bookings)), s.Bookings...)
	return out
}
