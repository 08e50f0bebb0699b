// Package invoice turns a priced booking into a printable document.
package invoice

import (
	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/money"
	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/pkg/errs"
)

var ErrNotInvoiceable = errs.ErrNotInvoiceable

type Document struct {
	AppName       string
	BookingID     string
	RoomName      string
	RoomType      string
	CheckIn       string
	CheckOut      string
	Hours         int
	FirstHourRate money.Amount
	RoomCharge    money.Amount
	WaterS        int
	WaterN        int
	WaterB        int
	WaterCharge   money.Amount
	Total         money.Amount
	Notes         string
}

// NewDocument refuses zero-hour bookings, whose breakdown only carries the first-hour rate.
func NewDocument(b booking.Booking, r room.Room, s settings.Settings, p pricing.PriceBreakdown) (Document, error) {
	if !p.HasBillableDuration() {
		return Document{}, ErrNotInvoiceable
	}
	return Document{
		AppName:       s.DisplayName(),
		BookingID:     b.ID,
		RoomName:      r.Name,
		RoomType:      r.Type,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Hours:         p.Hours,
		FirstHourRate: p.BaseRateFirst,
		RoomCharge:    p.RoomCharge,
		WaterS:        b.WaterS,
		WaterN:        b.WaterN,
		WaterB:        b.WaterB,
		WaterCharge:   p.WaterCharge,
		Total:         p.Total,
		Notes:         b.Notes,
	}, nil
}

type Renderer interface {
	Render(doc Document) ([]byte, error)
	ContentType() string
	Filename(doc Document) string
}
