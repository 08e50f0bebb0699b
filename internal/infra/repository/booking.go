package repository

import (
	"log/slog"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/infra/kvstore"
	"hotel-fastbill/internal/usecase/shared"
)

type bookingRepository struct {
	*Collection[[]booking.Booking]
}

func NewBookingRepository(store kvstore.Store, logger *slog.Logger) shared.BookingRepository {
	return &bookingRepository{
		Collection: NewCollection(store, KeyBookings, func() []booking.Booking { return []booking.Booking{} }, logger),
	}
}
