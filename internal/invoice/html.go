package invoice

import (
	"bytes"
	"html/template"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="{{.Labels.Lang}}">
<head>
  <meta charset="utf-8" />
  <title>{{.Labels.Title}} {{.Doc.BookingID}}</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>
    body { font-family: Arial, Helvetica, sans-serif; padding: 20px; font-size: 16px; }
    table { width: 100%; border-collapse: collapse; }
    td, th { padding: 10px; border: 1px solid #ddd; }
    .right { text-align: right; }
  </style>
</head>
<body>
  <h2>{{.Labels.Title}} - {{.Doc.AppName}}</h2>
  <p>{{.Labels.BookingID}}: {{.Doc.BookingID}}</p>
  <p>{{.Labels.Room}}: {{.Doc.RoomName}} ({{.Doc.RoomType}})</p>
  <p>{{.Labels.CheckIn}}: {{.Doc.CheckIn}}</p>
  <p>{{.Labels.CheckOut}}: {{.Doc.CheckOut}}</p>
  <table>
    <thead>
      <tr>
        <th>{{.Labels.Description}}</th>
        <th class="right">{{.Labels.Quantity}}</th>
        <th class="right">{{.Labels.UnitPrice}}</th>
        <th class="right">{{.Labels.Amount}}</th>
      </tr>
    </thead>
    <tbody>
      <tr>
        <td>{{.RoomLine}}</td>
        <td class="right">{{.Doc.Hours}}</td>
        <td class="right">{{money .Doc.FirstHourRate}}</td>
        <td class="right">{{money .Doc.RoomCharge}}</td>
      </tr>
      <tr>
        <td>{{.Labels.WaterLine}}</td>
        <td class="right">{{.WaterCounts}}</td>
        <td class="right">-</td>
        <td class="right">{{money .Doc.WaterCharge}}</td>
      </tr>
      <tr>
        <th colspan="3" class="right">{{.Labels.Total}}</th>
        <th class="right">{{money .Doc.Total}}</th>
      </tr>
    </tbody>
  </table>
  <p>{{.Labels.Notes}}: {{.Doc.Notes}}</p>
  {{if .AutoPrint}}<script>window.print();</script>{{end}}
</body>
</html>
`

type HTMLRenderer struct {
	tpl       *template.Template
	labels    Labels
	autoPrint bool
}

// NewHTMLRenderer builds the printable page. With autoPrint the page opens the print
// dialog as soon as it loads.
func NewHTMLRenderer(lang string, autoPrint bool) *HTMLRenderer {
	amounts := NewAmountFormatter(lang)
	funcs := template.FuncMap{
		"money": amounts.Format,
	}
	return &HTMLRenderer{
		tpl:       template.Must(template.New("invoice").Funcs(funcs).Parse(invoiceHTMLTemplate)),
		labels:    LabelsFor(lang),
		autoPrint: autoPrint,
	}
}

type htmlView struct {
	Doc         Document
	Labels      Labels
	RoomLine    string
	WaterCounts string
	AutoPrint   bool
}

func (r *HTMLRenderer) Render(doc Document) ([]byte, error) {
	view := htmlView{
		Doc:         doc,
		Labels:      r.labels,
		RoomLine:    r.labels.RoomLineFor(doc.Hours),
		WaterCounts: r.labels.WaterCounts(doc.WaterS, doc.WaterN, doc.WaterB),
		AutoPrint:   r.autoPrint,
	}
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *HTMLRenderer) Filename(doc Document) string {
	return filename(r.labels, doc, ".html")
}
