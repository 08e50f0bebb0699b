package pricing

import (
	"fmt"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/money"
	"hotel-fastbill/internal/domain/settings"
)

// PriceBreakdown is derived on every read and never stored.
type PriceBreakdown struct {
	Hours         int          `json:"hours"`
	BaseRateFirst money.Amount `json:"baseRateFirst"`
	PerHourNext   money.Amount `json:"perHourNext"`
	RoomCharge    money.Amount `json:"roomCharge"`
	WaterCharge   money.Amount `json:"waterCharge"`
	Total         money.Amount `json:"total"`
}

// HasBillableDuration is false for zero-hour bookings, whose room charge is only the
// first-hour rate and must not be presented as a valid invoice.
func (p PriceBreakdown) HasBillableDuration() bool {
	return p.Hours >= 1
}

type Calculator interface {
	Price(b booking.Booking, s settings.Settings) (PriceBreakdown, error)
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (DefaultCalculator) Price(b booking.Booking, s settings.Settings) (PriceBreakdown, error) {
	return PriceBooking(b, s)
}

// PriceBooking is a pure function of its inputs. The only error it returns wraps
// ErrInvalidQuantity.
func PriceBooking(b booking.Booking, s settings.Settings) (PriceBreakdown, error) {
	waterCharge, err := ConsumablesCharge(b.WaterS, b.WaterN, b.WaterB)
	if err != nil {
		return PriceBreakdown{}, fmt.Errorf("booking %s: %w", b.ID, err)
	}

	hours := BillableHours(b.CheckIn, b.CheckOut)
	tariff := TariffForCheckIn(b.CheckIn, s)
	roomCharge := tariff.FirstHour.Add(tariff.NextHour.Times(max(0, hours-1)))

	return PriceBreakdown{
		Hours:         hours,
		BaseRateFirst: tariff.FirstHour,
		PerHourNext:   tariff.NextHour,
		RoomCharge:    roomCharge,
		WaterCharge:   waterCharge,
		Total:         roomCharge.Add(waterCharge),
	}, nil
}
