package settings

import (
	"errors"
	"strings"

	"hotel-fastbill/internal/domain/money"
)

var (
	ErrInvalidRounding   = errors.New("invalid rounding policy")
	ErrNegativeRate      = errors.New("default rate cannot be negative")
	ErrInvalidRoomType   = errors.New("invalid room type")
	ErrDuplicateRoomType = errors.New("duplicate room type id")
)

const fallbackAppName = "HotelFastBill"

type RoundingPolicy string

const (
	RoundingCeiling RoundingPolicy = "ceil"
	RoundingNearest RoundingPolicy = "round"
	RoundingFloor   RoundingPolicy = "floor"
)

func (p RoundingPolicy) String() string {
	return string(p)
}

func (p RoundingPolicy) IsValid() bool {
	switch p {
	case RoundingCeiling, RoundingNearest, RoundingFloor:
		return true
	default:
		return false
	}
}

type RoomType struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// Settings is the process-wide configuration edited from the settings screen.
//
// Rounding and RoomTypes are kept for forward compatibility only. Billing uses a fixed
// 20-minute grace rule and never applies room type multipliers.
type Settings struct {
	AppName           string         `json:"appName"`
	Rounding          RoundingPolicy `json:"rounding"`
	DefaultHourlyRate money.Amount   `json:"pricePerHourDefault"`
	DefaultWaterPrice money.Amount   `json:"waterPriceDefault"`
	RoomTypes         []RoomType     `json:"roomTypes"`
}

func Default() Settings {
	return Settings{
		AppName:           "KS Thanh Vân",
		Rounding:          RoundingCeiling,
		DefaultHourlyRate: 60000,
		DefaultWaterPrice: 10000,
		RoomTypes: []RoomType{
			{ID: "single", Name: "Single", Multiplier: 1},
			{ID: "double", Name: "Double", Multiplier: 1.5},
			{ID: "deluxe", Name: "Deluxe", Multiplier: 2},
		},
	}
}

func (s Settings) Validate() error {
	if !s.Rounding.IsValid() {
		return ErrInvalidRounding
	}
	if s.DefaultHourlyRate.IsNegative() || s.DefaultWaterPrice.IsNegative() {
		return ErrNegativeRate
	}
	seen := make(map[string]struct{}, len(s.RoomTypes))
	for _, rt := range s.RoomTypes {
		id := strings.TrimSpace(rt.ID)
		if id == "" || rt.Multiplier <= 0 {
			return ErrInvalidRoomType
		}
		if _, dup := seen[id]; dup {
			return ErrDuplicateRoomType
		}
		seen[id] = struct{}{}
	}
	return nil
}

// DisplayName is the label printed on invoices.
func (s Settings) DisplayName() string {
	if name := strings.TrimSpace(s.AppName); name != "" {
		return name
	}
	return fallbackAppName
}

func (s Settings) Clone() Settings {
	out := s
	if s.RoomTypes != nil {
		out.RoomTypes = make([]RoomType, len(s.RoomTypes))
		copy(out.RoomTypes, s.RoomTypes)
	}
	return out
}
