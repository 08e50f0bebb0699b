package response

import (
	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/usecase/commands"
	"hotel-fastbill/internal/usecase/queries"
)

type PriceBreakdownResponse struct {
	Hours         int   `json:"hours"`
	BaseRateFirst int64 `json:"baseRateFirst"`
	PerHourNext   int64 `json:"perHourNext"`
	RoomCharge    int64 `json:"roomCharge"`
	WaterCharge   int64 `json:"waterCharge"`
	Total         int64 `json:"total"`
}

func FromPriceBreakdown(p *pricing.PriceBreakdown) *PriceBreakdownResponse {
	if p == nil {
		return nil
	}
	return &PriceBreakdownResponse{
		Hours:         p.Hours,
		BaseRateFirst: p.BaseRateFirst.Int64(),
		PerHourNext:   p.PerHourNext.Int64(),
		RoomCharge:    p.RoomCharge.Int64(),
		WaterCharge:   p.WaterCharge.Int64(),
		Total:         p.Total.Int64(),
	}
}

type BookingResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	WaterS    int    `json:"waterS"`
	WaterN    int    `json:"waterN"`
	WaterB    int    `json:"waterB"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

func FromBooking(b booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		CheckIn:   b.CheckIn,
		CheckOut:  b.CheckOut,
		WaterS:    b.WaterS,
		WaterN:    b.WaterN,
		WaterB:    b.WaterB,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
	}
}

type CreateBookingResponse struct {
	Booking BookingResponse        `json:"booking"`
	Price   PriceBreakdownResponse `json:"price"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *CreateBookingResponse {
	return &CreateBookingResponse{
		Booking: FromBooking(r.Booking),
		Price:   *FromPriceBreakdown(&r.Breakdown),
	}
}

// BookingListItemResponse omits hours and total when the booking could not be priced.
type BookingListItemResponse struct {
	ID       string `json:"id"`
	RoomID   string `json:"roomId"`
	RoomName string `json:"roomName"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
	Hours    *int   `json:"hours"`
	Total    *int64 `json:"total"`
	Invalid  bool   `json:"invalid"`
	Error    string `json:"error,omitempty"`
}

type BookingListResponse struct {
	Items      []BookingListItemResponse `json:"items"`
	Total      int                       `json:"total"`
	Page       int                       `json:"page"`
	PerPage    int                       `json:"perPage"`
	TotalPages int                       `json:"totalPages"`
}

func FromBookingPage(p *queries.BookingPage) *BookingListResponse {
	items := make([]BookingListItemResponse, len(p.Items))
	for i, row := range p.Items {
		item := BookingListItemResponse{
			ID:       row.Booking.ID,
			RoomID:   row.Booking.RoomID,
			RoomName: row.Room.Name,
			CheckIn:  row.Booking.CheckIn,
			CheckOut: row.Booking.CheckOut,
			Invalid:  row.Invalid,
			Error:    row.Error,
		}
		if row.Breakdown != nil {
			hours, total := row.Breakdown.Hours, row.Breakdown.Total.Int64()
			item.Hours, item.Total = &hours, &total
		}
		items[i] = item
	}
	return &BookingListResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PerPage:    p.PerPage,
		TotalPages: p.TotalPages,
	}
}

type BookingDetailResponse struct {
	Booking BookingResponse         `json:"booking"`
	Room    ResolvedRoomResponse    `json:"room"`
	Price   *PriceBreakdownResponse `json:"price"`
	Invalid bool                    `json:"invalid"`
	Error   string                  `json:"error,omitempty"`
}

func FromBookingRow(row *queries.BookingRow) *BookingDetailResponse {
	return &BookingDetailResponse{
		Booking: FromBooking(row.Booking),
		Room:    ResolvedRoomResponse{RoomResponse: FromRoom(row.Room.Room), Known: row.Room.Known},
		Price:   FromPriceBreakdown(row.Breakdown),
		Invalid: row.Invalid,
		Error:   row.Error,
	}
}
