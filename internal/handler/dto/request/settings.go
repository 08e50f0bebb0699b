package request

import (
	"hotel-fastbill/internal/domain/money"
	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/usecase/commands"
)

type RoomTypeRequest struct {
	ID         string  `json:"id" binding:"required"`
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// UpdateSettingsRequest fields left out of the body keep their stored value.
type UpdateSettingsRequest struct {
	AppName             *string            `json:"appName"`
	Rounding            *string            `json:"rounding" enums:"ceil,round,floor"`
	PricePerHourDefault *int64             `json:"pricePerHourDefault"`
	WaterPriceDefault   *int64             `json:"waterPriceDefault"`
	RoomTypes           *[]RoomTypeRequest `json:"roomTypes" binding:"omitempty,dive"`
}

func (r *UpdateSettingsRequest) ToCommand() commands.UpdateSettingsRequest {
	var cmd commands.UpdateSettingsRequest
	cmd.AppName = r.AppName
	if r.Rounding != nil {
		p := settings.RoundingPolicy(*r.Rounding)
		cmd.Rounding = &p
	}
	if r.PricePerHourDefault != nil {
		a := money.Amount(*r.PricePerHourDefault)
		cmd.DefaultHourlyRate = &a
	}
	if r.WaterPriceDefault != nil {
		a := money.Amount(*r.WaterPriceDefault)
		cmd.DefaultWaterPrice = &a
	}
	if r.RoomTypes != nil {
		types := make([]settings.RoomType, len(*r.RoomTypes))
		for i, rt := range *r.RoomTypes {
			types[i] = settings.RoomType{ID: rt.ID, Name: rt.Name, Multiplier: rt.Multiplier}
		}
		cmd.RoomTypes = &types
	}
	return cmd
}
