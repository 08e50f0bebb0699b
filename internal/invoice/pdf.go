package invoice

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

type PDFRenderer struct {
	labels  Labels
	amounts AmountFormatter
}

func NewPDFRenderer(lang string) *PDFRenderer {
	return &PDFRenderer{labels: LabelsFor(lang), amounts: NewAmountFormatter(lang)}
}

func (r *PDFRenderer) Render(doc Document) ([]byte, error) {
	l := r.labels
	m := maroto.New(config.NewBuilder().Build())

	m.AddRow(12,
		text.NewCol(12, pdfText(l.Title+" - "+doc.AppName), props.Text{
			Size:  18,
			Style: fontstyle.Bold,
			Align: align.Left,
		}),
	)

	m.AddRow(26,
		col.New(8).Add(
			text.New(pdfText(l.BookingID+": "+doc.BookingID), props.Text{Top: 0}),
			text.New(pdfText(l.Room+": "+doc.RoomName+" ("+doc.RoomType+")"), props.Text{Top: 5}),
			text.New(pdfText(l.CheckIn+": "+doc.CheckIn), props.Text{Top: 10}),
			text.New(pdfText(l.CheckOut+": "+doc.CheckOut), props.Text{Top: 15}),
		),
		col.New(4),
	)

	header := props.Text{Style: fontstyle.Bold, Size: 9}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}
	cell := props.Text{Size: 9}
	cellRight := props.Text{Size: 9, Align: align.Right}

	m.AddRow(8,
		text.NewCol(6, pdfText(l.Description), header),
		text.NewCol(2, pdfText(l.Quantity), headerRight),
		text.NewCol(2, pdfText(l.UnitPrice), headerRight),
		text.NewCol(2, pdfText(l.Amount), headerRight),
	)
	m.AddRow(1, line.NewCol(12))

	m.AddRow(10,
		text.NewCol(6, pdfText(l.RoomLineFor(doc.Hours)), cell),
		text.NewCol(2, strconv.Itoa(doc.Hours), cellRight),
		text.NewCol(2, r.amounts.Format(doc.FirstHourRate), cellRight),
		text.NewCol(2, r.amounts.Format(doc.RoomCharge), cellRight),
	)
	m.AddRow(10,
		text.NewCol(6, pdfText(l.WaterLine), cell),
		text.NewCol(2, l.WaterCounts(doc.WaterS, doc.WaterN, doc.WaterB), cellRight),
		text.NewCol(2, "-", cellRight),
		text.NewCol(2, r.amounts.Format(doc.WaterCharge), cellRight),
	)
	m.AddRow(1, line.NewCol(12))
	m.AddRow(10,
		col.New(8),
		text.NewCol(2, pdfText(l.Total), header),
		text.NewCol(2, r.amounts.Format(doc.Total), headerRight),
	)

	if strings.TrimSpace(doc.Notes) != "" {
		m.AddRow(12,
			text.NewCol(12, pdfText(l.Notes+": "+doc.Notes), props.Text{Size: 9, Top: 3}),
		)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return out.GetBytes(), nil
}

func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

func (r *PDFRenderer) Filename(doc Document) string {
	return filename(r.labels, doc, ".pdf")
}

var dStroke = strings.NewReplacer("đ", "d", "Đ", "D")

// pdfText strips diacritics. The built-in PDF fonts only cover Latin-1.
func pdfText(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return dStroke.Replace(out)
}
