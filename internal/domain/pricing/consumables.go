package pricing

import (
	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/money"
)

// Unit prices of the metered items. They are fixed and do not follow Settings.DefaultWaterPrice.
const (
	UnitPriceS money.Amount = 10000
	UnitPriceN money.Amount = 20000
	UnitPriceB money.Amount = 30000
)

const maxQuantity = 1_000_000

var ErrInvalidQuantity = booking.ErrInvalidQuantity

// ConsumablesCharge prices the S, N and B counts. Negative or absurdly large counts are
// rejected rather than clamped.
func ConsumablesCharge(waterS, waterN, waterB int) (money.Amount, error) {
	for _, c := range []int{waterS, waterN, waterB} {
		if c < 0 || c > maxQuantity {
			return 0, ErrInvalidQuantity
		}
	}
	return UnitPriceS.Times(waterS).
		Add(UnitPriceN.Times(waterN)).
		Add(UnitPriceB.Times(waterB)), nil
}
