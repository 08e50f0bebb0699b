package request

import "hotel-fastbill/internal/usecase/commands"

type CreateRoomRequest struct {
	ID   string `json:"id" binding:"required" example:"101"`
	Type string `json:"type" example:"single"`
}

func (r *CreateRoomRequest) ToCommand() commands.AddRoomRequest {
	return commands.AddRoomRequest{ID: r.ID, Type: r.Type}
}

type UpdateRoomRequest struct {
	Name *string `json:"name"`
	Type *string `json:"type"`
	Note *string `json:"note"`
}

func (r *UpdateRoomRequest) ToCommand() commands.UpdateRoomRequest {
	return commands.UpdateRoomRequest{Name: r.Name, Type: r.Type, Note: r.Note}
}
