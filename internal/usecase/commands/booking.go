package commands

import (
	"context"
	"errors"
	"log/slog"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/pkg/clock"
	"hotel-fastbill/internal/usecase/shared"
)

type CreateBookingRequest struct {
	Draft booking.Draft
}

type CreateBookingResult struct {
	Booking   booking.Booking
	Breakdown pricing.PriceBreakdown
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error)
	DeleteBooking(ctx context.Context, id string) error
}

type bookingUseCaseImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	ids        *booking.IDGenerator
	calculator pricing.Calculator
	recorder   shared.BillingRecorder
	logger     *slog.Logger
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock, calculator pricing.Calculator, recorder shared.BillingRecorder, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{
		uow:        uow,
		clock:      clk,
		ids:        booking.NewIDGenerator(clk),
		calculator: calculator,
		recorder:   recorder,
		logger:     logger,
	}
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResult, error) {
	draft := req.Draft.Normalize()
	if err := uc.validateDraft(draft); err != nil {
		uc.reject(err, draft)
		return nil, err
	}

	var result *CreateBookingResult
	err := uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		st := tx.State()
		if !st.Directory().Contains(draft.RoomID) {
			return ErrRoomNotFound
		}

		id := uc.ids.Next(func(candidate string) bool {
			_, taken := st.BookingByID(candidate)
			return taken
		})
		b, derr := booking.New(id, draft, uc.clock.Now())
		if derr != nil {
			return validationErr(derr)
		}
		breakdown, derr := uc.calculator.Price(b, st.Settings)
		if derr != nil {
			return validationErr(derr)
		}

		tx.SetBookings(append([]booking.Booking{b}, st.Bookings...))
		result = &CreateBookingResult{Booking: b, Breakdown: breakdown}
		return nil
	})
	if err != nil {
		uc.reject(err, draft)
		return nil, err
	}

	uc.recorder.BookingCreated(result.Breakdown)
	uc.logger.Info("Booking created",
		"booking_id", result.Booking.ID,
		"room_id", result.Booking.RoomID,
		"hours", result.Breakdown.Hours,
		"total", result.Breakdown.Total.Int64())
	return result, nil
}

// validateDraft runs the checks that need no state: required fields, counts and a
// check-out that bills at least one hour.
func (uc *bookingUseCaseImpl) validateDraft(d booking.Draft) error {
	if err := d.Validate(); err != nil {
		return validationErr(err)
	}
	if _, err := pricing.ConsumablesCharge(d.WaterS, d.WaterN, d.WaterB); err != nil {
		return validationErr(err)
	}
	if pricing.BillableHours(d.CheckIn, d.CheckOut) < 1 {
		return ErrInvalidDuration
	}
	return nil
}

func (uc *bookingUseCaseImpl) reject(err error, d booking.Draft) {
	reason := "validation"
	switch {
	case errors.Is(err, ErrRoomNotFound):
		reason = "room_not_found"
	case errors.Is(err, ErrInvalidDuration):
		reason = "invalid_duration"
	case errors.Is(err, booking.ErrInvalidQuantity):
		reason = "invalid_quantity"
	case !errors.Is(err, ErrDomainValidation):
		reason = "store_failure"
	}
	uc.recorder.BookingRejected(reason)
	uc.logger.Warn("Booking rejected", "room_id", d.RoomID, "reason", reason, "error", err.Error())
}

func (uc *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id string) error {
	err := uc.uow.Within(ctx, func(_ context.Context, tx shared.Tx) error {
		st := tx.State()
		kept := make([]booking.Booking, 0, len(st.Bookings))
		for _, b := range st.Bookings {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(st.Bookings) {
			return ErrBookingNotFound
		}
		tx.SetBookings(kept)
		return nil
	})
	if err != nil {
		return err
	}

	uc.logger.Info("Booking deleted", "booking_id", id)
	return nil
}
