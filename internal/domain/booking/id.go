package booking

import (
	"strconv"

	"hotel-fastbill/internal/pkg/clock"
)

const idPrefix = "bk_"

// IDGenerator issues timestamp-derived ids of the form bk_<unix millis>.
type IDGenerator struct {
	clock clock.Clock
}

func NewIDGenerator(c clock.Clock) *IDGenerator {
	return &IDGenerator{clock: c}
}

// Next returns the id for the current instant, moving forward one millisecond at a time
// until taken reports the id as free.
func (g *IDGenerator) Next(taken func(id string) bool) string {
	ms := g.clock.Now().UnixMilli()
	for {
		id := idPrefix + strconv.FormatInt(ms, 10)
		if taken == nil || !taken(id) {
			return id
		}
		ms++
	}
}
