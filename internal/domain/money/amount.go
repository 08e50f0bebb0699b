package money

import "strconv"

// Amount is a monetary value in the smallest whole currency unit the deployment bills in.
type Amount int64

func (a Amount) Int64() int64 {
	return int64(a)
}

func (a Amount) Add(other Amount) Amount {
	return a + other
}

func (a Amount) Times(n int) Amount {
	return a * Amount(n)
}

func (a Amount) IsNegative() bool {
	return a < 0
}

// Percent returns pct percent of a, rounded half up to a whole unit.
func (a Amount) Percent(pct int64) Amount {
	return Amount(floorDiv(int64(a)*pct+50, 100))
}

func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}

func floorDiv(x, y int64) int64 {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}
