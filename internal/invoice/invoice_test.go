//go:build unit

package invoice_test

import (
	"bytes"
	"strings"
	"testing"

	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/invoice"
	"hotel-fastbill/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument(t *testing.T) invoice.Document {
	t.Helper()
	b := builder.NewBookingBuilder().WithNotes("<b>late</b> checkout").BuildDomain("bk_1740812400000")
	r := room.Room{ID: "101", Name: "101", Type: "double"}
	p, err := pricing.PriceBooking(b, settings.Default())
	require.NoError(t, err)

	doc, err := invoice.NewDocument(b, r, settings.Default(), p)
	require.NoError(t, err)
	return doc
}

func TestNewDocument(t *testing.T) {
	t.Run("copies booking room and breakdown", func(t *testing.T) {
		doc := sampleDocument(t)
		assert.Equal(t, "KS Thanh Vân", doc.AppName)
		assert.Equal(t, "bk_1740812400000", doc.BookingID)
		assert.Equal(t, "double", doc.RoomType)
		assert.Equal(t, 4, doc.Hours)
		assert.EqualValues(t, 60000, doc.FirstHourRate)
		assert.EqualValues(t, 120000, doc.RoomCharge)
		assert.EqualValues(t, 40000, doc.WaterCharge)
		assert.EqualValues(t, 160000, doc.Total)
	})

	t.Run("falls back to the product name", func(t *testing.T) {
		b := builder.NewBookingBuilder().BuildDomain("bk_1")
		s := settings.Default()
		s.AppName = "  "
		p, err := pricing.PriceBooking(b, s)
		require.NoError(t, err)

		doc, err := invoice.NewDocument(b, room.Placeholder("101"), s, p)
		require.NoError(t, err)
		assert.Equal(t, "HotelFastBill", doc.AppName)
	})

	t.Run("zero-hour booking is refused", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithCheckOut("2025-03-01T13:00").BuildDomain("bk_1")
		p, err := pricing.PriceBooking(b, settings.Default())
		require.NoError(t, err)

		_, err = invoice.NewDocument(b, room.Placeholder("101"), settings.Default(), p)
		assert.ErrorIs(t, err, invoice.ErrNotInvoiceable)
	})
}

func TestAmountFormatter(t *testing.T) {
	assert.Equal(t, "160.000", invoice.NewAmountFormatter("vi").Format(160000))
	assert.Equal(t, "160,000", invoice.NewAmountFormatter("en").Format(160000))
	assert.Equal(t, "1,200,000", invoice.NewAmountFormatter("en-US").Format(1200000))
	assert.Equal(t, "900", invoice.NewAmountFormatter("fr").Format(900))
}

func TestLabelsFor(t *testing.T) {
	assert.Equal(t, "Hóa đơn", invoice.LabelsFor("vi").Title)
	assert.Equal(t, "Invoice", invoice.LabelsFor("EN_gb").Title)
	assert.Equal(t, "Hóa đơn", invoice.LabelsFor("").Title)
	assert.Equal(t, "Tiền phòng (4 giờ)", invoice.LabelsFor("vi").RoomLineFor(4))
}

func TestHTMLRenderer(t *testing.T) {
	doc := sampleDocument(t)

	t.Run("vietnamese with auto print", func(t *testing.T) {
		r := invoice.NewHTMLRenderer("vi", true)
		out, err := r.Render(doc)
		require.NoError(t, err)

		html := string(out)
		assert.Contains(t, html, "Hóa đơn - KS Thanh Vân")
		assert.Contains(t, html, "Phòng: 101 (double)")
		assert.Contains(t, html, "Tiền phòng (4 giờ)")
		assert.Contains(t, html, "S:1 N:0 B:1")
		assert.Contains(t, html, "120.000")
		assert.Contains(t, html, "160.000")
		assert.Contains(t, html, "window.print()")
		assert.NotContains(t, html, "<b>late</b>", "notes are escaped")
		assert.Equal(t, "text/html; charset=utf-8", r.ContentType())
	})

	t.Run("english without auto print", func(t *testing.T) {
		out, err := invoice.NewHTMLRenderer("en", false).Render(doc)
		require.NoError(t, err)

		html := string(out)
		assert.Contains(t, html, "Room charge (4 hours)")
		assert.Contains(t, html, "160,000")
		assert.NotContains(t, html, "window.print()")
	})
}

func TestPDFRenderer(t *testing.T) {
	doc := sampleDocument(t)
	r := invoice.NewPDFRenderer("vi")

	out, err := r.Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
	assert.Equal(t, "application/pdf", r.ContentType())

	name := r.Filename(doc)
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.True(t, strings.HasPrefix(name, "hoa-don-"), name)
}
