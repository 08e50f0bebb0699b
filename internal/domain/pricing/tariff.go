package pricing

import (
	"hotel-fastbill/internal/domain/money"
	"hotel-fastbill/internal/domain/settings"
)

// Tariff is the rate pair selected by the hour of check-in.
type Tariff struct {
	FirstHour money.Amount `json:"firstHour"`
	NextHour  money.Amount `json:"nextHour"`
}

var (
	dayTariff       = Tariff{FirstHour: 60000, NextHour: 20000}
	lateTariff      = Tariff{FirstHour: 70000, NextHour: 20000}
	lastHourTariff  = Tariff{FirstHour: 80000, NextHour: 20000}
	overnightTariff = Tariff{FirstHour: 100000, NextHour: 30000}
)

const fallbackNextHourPercent = 33

// TariffFor maps an hour of day to its tariff:
//
//	06-21  60000 / 20000
//	22     70000 / 20000
//	23     80000 / 20000
//	00-05 100000 / 30000
//
// Hours outside 0-23 wrap around the clock.
func TariffFor(hourOfDay int) Tariff {
	h := ((hourOfDay % 24) + 24) % 24
	switch {
	case h >= 6 && h < 22:
		return dayTariff
	case h == 22:
		return lateTariff
	case h == 23:
		return lastHourTariff
	default:
		return overnightTariff
	}
}

// FallbackTariff is used when the check-in time cannot be read.
func FallbackTariff(defaultHourlyRate money.Amount) Tariff {
	return Tariff{
		FirstHour: defaultHourlyRate,
		NextHour:  defaultHourlyRate.Percent(fallbackNextHourPercent),
	}
}

func TariffForCheckIn(checkIn string, s settings.Settings) Tariff {
	t, ok := ParseTimestamp(checkIn)
	if !ok {
		return FallbackTariff(s.DefaultHourlyRate)
	}
	return TariffFor(t.Hour())
}
