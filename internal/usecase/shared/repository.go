package shared

import (
	"context"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/domain/settings"
)

// Each repository persists one whole collection. Save replaces what was stored.
type RoomRepository interface {
	Load(ctx context.Context) ([]room.Room, error)
	Save(ctx context.Context, rooms []room.Room) error
}

type BookingRepository interface {
	Load(ctx context.Context) ([]booking.Booking, error)
	Save(ctx context.Context, bookings []booking.Booking) error
}

type SettingsRepository interface {
	Load(ctx context.Context) (settings.Settings, error)
	Save(ctx context.Context, s settings.Settings) error
}
