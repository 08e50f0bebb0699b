//go:build unit

package pricing_test

import (
	"testing"

	"hotel-fastbill/internal/domain/money"
	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/domain/settings"

	"github.com/stretchr/testify/assert"
)

func TestTariffForCheckIn(t *testing.T) {
	s := settings.Default()
	cases := []struct {
		checkIn string
		want    pricing.Tariff
	}{
		{checkIn: "2025-03-01T21:59", want: pricing.Tariff{FirstHour: 60000, NextHour: 20000}},
		{checkIn: "2025-03-01T22:00", want: pricing.Tariff{FirstHour: 70000, NextHour: 20000}},
		{checkIn: "2025-03-01T22:59", want: pricing.Tariff{FirstHour: 70000, NextHour: 20000}},
		{checkIn: "2025-03-01T23:00", want: pricing.Tariff{FirstHour: 80000, NextHour: 20000}},
		{checkIn: "2025-03-01T23:59", want: pricing.Tariff{FirstHour: 80000, NextHour: 20000}},
		{checkIn: "2025-03-02T00:00", want: pricing.Tariff{FirstHour: 100000, NextHour: 30000}},
		{checkIn: "2025-03-02T05:59", want: pricing.Tariff{FirstHour: 100000, NextHour: 30000}},
		{checkIn: "2025-03-02T06:00", want: pricing.Tariff{FirstHour: 60000, NextHour: 20000}},
		{checkIn: "2025-03-02T12:00", want: pricing.Tariff{FirstHour: 60000, NextHour: 20000}},
	}
	for _, c := range cases {
		t.Run(c.checkIn, func(t *testing.T) {
			assert.Equal(t, c.want, pricing.TariffForCheckIn(c.checkIn, s))
		})
	}
}

func TestTariffForEveryHour(t *testing.T) {
	for h := 0; h < 24; h++ {
		got := pricing.TariffFor(h)
		switch {
		case h < 6:
			assert.Equal(t, money.Amount(100000), got.FirstHour, "hour %d", h)
		case h < 22:
			assert.Equal(t, money.Amount(60000), got.FirstHour, "hour %d", h)
		case h == 22:
			assert.Equal(t, money.Amount(70000), got.FirstHour, "hour %d", h)
		default:
			assert.Equal(t, money.Amount(80000), got.FirstHour, "hour %d", h)
		}
	}
	assert.Equal(t, pricing.TariffFor(0), pricing.TariffFor(24))
	assert.Equal(t, pricing.TariffFor(23), pricing.TariffFor(-1))
}

func TestFallbackTariff(t *testing.T) {
	s := settings.Default()

	t.Run("unparseable check-in uses default rate", func(t *testing.T) {
		got := pricing.TariffForCheckIn("", s)
		assert.Equal(t, pricing.Tariff{FirstHour: 60000, NextHour: 19800}, got)
	})

	t.Run("follows the configured rate", func(t *testing.T) {
		s.DefaultHourlyRate = 50
		got := pricing.TariffForCheckIn("garbage", s)
		assert.Equal(t, pricing.Tariff{FirstHour: 50, NextHour: 17}, got)
	})
}
