package request

import (
	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/commands"
	"hotel-fastbill/internal/usecase/queries"
)

// CreateBookingRequest mirrors the booking form. Required fields are checked by the use
// case so that missing and malformed input share one error path.
type CreateBookingRequest struct {
	RoomID   string   `json:"roomId" example:"101"`
	CheckIn  string   `json:"checkIn" example:"2025-03-01T14:00"`
	CheckOut string   `json:"checkOut" example:"2025-03-01T17:30"`
	WaterS   Quantity `json:"waterS" swaggertype:"integer" example:"1"`
	WaterN   Quantity `json:"waterN" swaggertype:"integer" example:"0"`
	WaterB   Quantity `json:"waterB" swaggertype:"integer" example:"1"`
	Notes    string   `json:"notes"`
}

// ToCommand fails with booking.ErrInvalidQuantity when a count is not a whole number.
func (r *CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	counts := make([]int, 0, 3)
	for _, f := range []struct {
		name string
		q    Quantity
	}{{"waterS", r.WaterS}, {"waterN", r.WaterN}, {"waterB", r.WaterB}} {
		n, ok := f.q.Int()
		if !ok {
			return commands.CreateBookingRequest{}, errs.Mark(errs.Wrap(booking.ErrInvalidQuantity, f.name), errs.ErrDomainValidation)
		}
		counts = append(counts, n)
	}

	return commands.CreateBookingRequest{Draft: booking.Draft{
		RoomID:   r.RoomID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		WaterS:   counts[0],
		WaterN:   counts[1],
		WaterB:   counts[2],
		Notes:    r.Notes,
	}}, nil
}

type ListBookingsQuery struct {
	Q       string `form:"q"`
	From    string `form:"from" example:"2025-03-01"`
	To      string `form:"to" example:"2025-03-31"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"perPage" binding:"omitempty,min=1"`
}

func (q *ListBookingsQuery) Filter() queries.BookingFilter {
	return queries.BookingFilter{Q: q.Q, From: q.From, To: q.To}
}
