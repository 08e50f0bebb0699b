package export

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"time"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/pricing"
)

var csvHeader = []string{
	"ID", "Room", "CheckIn", "CheckOut", "Hours", "RoomCharge",
	"WaterS", "WaterN", "WaterB", "WaterCharge", "Total", "Notes", "CreatedAt",
}

// ErrorCell replaces the computed columns of a booking that could not be priced.
const ErrorCell = "ERROR"

type CSVRow struct {
	Booking   booking.Booking
	RoomName  string
	Breakdown *pricing.PriceBreakdown
}

// WriteBookingsCSV quotes every cell, header included, and separates rows with a bare
// newline. encoding/csv only quotes cells that need it.
func WriteBookingsCSV(w io.Writer, rows []CSVRow) error {
	bw := bufio.NewWriter(w)
	if err := writeRecord(bw, csvHeader, false); err != nil {
		return err
	}
	for _, r := range rows {
		if err := writeRecord(bw, r.record(), true); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func (r CSVRow) record() []string {
	b := r.Booking
	hours, roomCharge, waterCharge, total := ErrorCell, ErrorCell, ErrorCell, ErrorCell
	if p := r.Breakdown; p != nil {
		hours = strconv.Itoa(p.Hours)
		roomCharge = p.RoomCharge.String()
		waterCharge = p.WaterCharge.String()
		total = p.Total.String()
	}
	return []string{
		b.ID,
		r.RoomName,
		b.CheckIn,
		b.CheckOut,
		hours,
		roomCharge,
		strconv.Itoa(b.WaterS),
		strconv.Itoa(b.WaterN),
		strconv.Itoa(b.WaterB),
		waterCharge,
		total,
		b.Notes,
		b.CreatedAt,
	}
}

func writeRecord(w *bufio.Writer, cells []string, leadingNewline bool) error {
	if leadingNewline {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	for i, c := range cells {
		if i > 0 {
			if err := w.WriteByte(','); err != nil {
				return err
			}
		}
		if _, err := w.WriteString(`"` + strings.ReplaceAll(c, `"`, `""`) + `"`); err != nil {
			return err
		}
	}
	return nil
}

func CSVFilename(now time.Time) string {
	return "bookings_" + now.UTC().Format(time.DateOnly) + ".csv"
}
