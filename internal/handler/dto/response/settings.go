package response

import (
	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/usecase/commands"
)

type RoomTypeResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

type SettingsResponse struct {
	AppName             string             `json:"appName"`
	Rounding            string             `json:"rounding"`
	PricePerHourDefault int64              `json:"pricePerHourDefault"`
	WaterPriceDefault   int64              `json:"waterPriceDefault"`
	RoomTypes           []RoomTypeResponse `json:"roomTypes"`
}

func FromSettings(s settings.Settings) *SettingsResponse {
	types := make([]RoomTypeResponse, len(s.RoomTypes))
	for i, rt := range s.RoomTypes {
		types[i] = RoomTypeResponse{ID: rt.ID, Name: rt.Name, Multiplier: rt.Multiplier}
	}
	return &SettingsResponse{
		AppName:             s.AppName,
		Rounding:            s.Rounding.String(),
		PricePerHourDefault: s.DefaultHourlyRate.Int64(),
		WaterPriceDefault:   s.DefaultWaterPrice.Int64(),
		RoomTypes:           types,
	}
}

type ImportBackupResponse struct {
	Rooms    bool `json:"rooms"`
	Bookings bool `json:"bookings"`
	Settings bool `json:"settings"`
}

func FromImportResult(r *commands.ImportResult) *ImportBackupResponse {
	return &ImportBackupResponse{Rooms: r.Rooms, Bookings: r.Bookings, Settings: r.Settings}
}
