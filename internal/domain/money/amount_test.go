//go:build unit

package money_test

import (
	"testing"

	"hotel-fastbill/internal/domain/money"

	"github.com/stretchr/testify/assert"
)

func TestAmount(t *testing.T) {
	t.Run("arithmetic", func(t *testing.T) {
		a := money.Amount(60000)
		assert.Equal(t, money.Amount(120000), a.Add(60000))
		assert.Equal(t, money.Amount(180000), a.Times(3))
		assert.Equal(t, money.Amount(0), a.Times(0))
		assert.False(t, a.IsNegative())
		assert.True(t, money.Amount(-1).IsNegative())
		assert.Equal(t, "60000", a.String())
	})

	t.Run("percent rounds half up", func(t *testing.T) {
		cases := []struct {
			in   money.Amount
			pct  int64
			want money.Amount
		}{
			{in: 60000, pct: 33, want: 19800},
			{in: 100000, pct: 33, want: 33000},
			{in: 50, pct: 33, want: 17},    // 16.5
			{in: 10, pct: 33, want: 3},     // 3.3
			{in: 0, pct: 33, want: 0},
			{in: -50, pct: 33, want: -16}, // -16.5 rounds toward +inf
		}
		for _, c := range cases {
			assert.Equal(t, c.want, c.in.Percent(c.pct), "%d * %d%%", c.in, c.pct)
		}
	})
}
