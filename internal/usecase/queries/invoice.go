package queries

import (
	"context"
	"log/slog"

	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/invoice"
	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/shared"
)

type InvoiceFormat string

const (
	InvoiceHTML InvoiceFormat = "html"
	InvoicePDF  InvoiceFormat = "pdf"
)

type InvoiceQueries interface {
	Document(ctx context.Context, bookingID string) (*invoice.Document, error)
	Render(ctx context.Context, bookingID string, format InvoiceFormat) (*File, error)
}

type invoiceQueriesImpl struct {
	uow        shared.UnitOfWork
	calculator pricing.Calculator
	renderers  map[InvoiceFormat]invoice.Renderer
	recorder   shared.BillingRecorder
	logger     *slog.Logger
}

func NewInvoiceQueries(
	uow shared.UnitOfWork,
	calculator pricing.Calculator,
	html *invoice.HTMLRenderer,
	pdf *invoice.PDFRenderer,
	recorder shared.BillingRecorder,
	logger *slog.Logger,
) InvoiceQueries {
	return &invoiceQueriesImpl{
		uow:        uow,
		calculator: calculator,
		renderers: map[InvoiceFormat]invoice.Renderer{
			InvoiceHTML: html,
			InvoicePDF:  pdf,
		},
		recorder: recorder,
		logger:   logger,
	}
}

func (q *invoiceQueriesImpl) Document(ctx context.Context, bookingID string) (*invoice.Document, error) {
	st, err := q.uow.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	b, ok := st.BookingByID(bookingID)
	if !ok {
		return nil, ErrBookingNotFound
	}
	p, err := q.calculator.Price(b, st.Settings)
	if err != nil {
		q.recorder.PricingFailed()
		return nil, errs.Mark(errs.Wrap(err, "booking cannot be priced"), ErrNotInvoiceable)
	}
	doc, err := invoice.NewDocument(b, st.Directory().ByID(b.RoomID), st.Settings, p)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (q *invoiceQueriesImpl) Render(ctx context.Context, bookingID string, format InvoiceFormat) (*File, error) {
	r, ok := q.renderers[format]
	if !ok {
		return nil, errs.Wrapf(errs.ErrDomainValidation, "unsupported invoice format %q", format)
	}
	doc, err := q.Document(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	body, err := r.Render(*doc)
	if err != nil {
		q.logger.Error("Invoice rendering failed", "booking_id", bookingID, "format", string(format), "error", err.Error())
		return nil, errs.Wrap(err, "failed to render invoice")
	}

	q.recorder.InvoiceIssued(string(format))
	return &File{
		Name:        r.Filename(*doc),
		ContentType: r.ContentType(),
		Body:        body,
	}, nil
}
