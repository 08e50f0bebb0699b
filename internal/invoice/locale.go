package invoice

import (
	"fmt"
	"strings"

	"hotel-fastbill/internal/domain/money"

	"github.com/gosimple/slug"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Labels struct {
	Lang        string
	Title       string
	BookingID   string
	Room        string
	CheckIn     string
	CheckOut    string
	Description string
	Quantity    string
	UnitPrice   string
	Amount      string
	RoomLine    string // formatted with the hour count
	WaterLine   string
	Total       string
	Notes       string
}

var labelsByLang = map[string]Labels{
	"vi": {
		Lang:        "vi",
		Title:       "Hóa đơn",
		BookingID:   "Booking ID",
		Room:        "Phòng",
		CheckIn:     "Check-in",
		CheckOut:    "Check-out",
		Description: "Mô tả",
		Quantity:    "Số",
		UnitPrice:   "Đơn giá",
		Amount:      "Thành tiền",
		RoomLine:    "Tiền phòng (%d giờ)",
		WaterLine:   "Tiền nước",
		Total:       "TỔNG",
		Notes:       "Ghi chú",
	},
	"en": {
		Lang:        "en",
		Title:       "Invoice",
		BookingID:   "Booking ID",
		Room:        "Room",
		CheckIn:     "Check-in",
		CheckOut:    "Check-out",
		Description: "Description",
		Quantity:    "Qty",
		UnitPrice:   "Unit price",
		Amount:      "Amount",
		RoomLine:    "Room charge (%d hours)",
		WaterLine:   "Consumables",
		Total:       "TOTAL",
		Notes:       "Notes",
	},
}

// LabelsFor falls back to Vietnamese for unknown languages.
func LabelsFor(lang string) Labels {
	base := strings.ToLower(strings.TrimSpace(lang))
	if i := strings.IndexAny(base, "-_"); i > 0 {
		base = base[:i]
	}
	if l, ok := labelsByLang[base]; ok {
		return l
	}
	return labelsByLang["vi"]
}

func (l Labels) RoomLineFor(hours int) string {
	return fmt.Sprintf(l.RoomLine, hours)
}

func (l Labels) WaterCounts(s, n, b int) string {
	return fmt.Sprintf("S:%d N:%d B:%d", s, n, b)
}

// AmountFormatter groups digits the way the invoice language does.
type AmountFormatter struct {
	printer *message.Printer
}

func NewAmountFormatter(lang string) AmountFormatter {
	tag, err := language.Parse(LabelsFor(lang).Lang)
	if err != nil {
		tag = language.Vietnamese
	}
	return AmountFormatter{printer: message.NewPrinter(tag)}
}

func (f AmountFormatter) Format(a money.Amount) string {
	return f.printer.Sprintf("%d", a.Int64())
}

func filename(l Labels, doc Document, ext string) string {
	return slug.Make(l.Title+" "+doc.BookingID) + ext
}
