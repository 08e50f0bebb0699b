package request

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Quantity is a consumable count as sent by the booking form. It accepts a JSON number, a
// numeric string, an empty string or null; anything else is kept as malformed so the
// request is rejected with the quantity error rather than a decoding error.
type Quantity struct {
	n         int
	malformed bool
}

func QuantityOf(n int) Quantity {
	return Quantity{n: n}
}

// Int reports false when the value was not a whole number.
func (q Quantity) Int() (int, bool) {
	return q.n, !q.malformed
}

func (q *Quantity) UnmarshalJSON(b []byte) error {
	*q = Quantity{}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
	case json.Number:
		q.n, q.malformed = parseWhole(t.String())
	case string:
		if s := strings.TrimSpace(t); s != "" {
			q.n, q.malformed = parseWhole(s)
		}
	default:
		q.malformed = true
	}
	return nil
}

func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(q.n)), nil
}

// parseWhole accepts integers and integral decimals such as "2.0".
func parseWhole(s string) (int, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, true
	}
	return int(f), false
}
