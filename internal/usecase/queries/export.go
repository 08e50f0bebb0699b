package queries

import (
	"bytes"
	"context"

	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/export"
	"hotel-fastbill/internal/pkg/clock"
	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/shared"
)

// File is a rendered download.
type File struct {
	Name        string
	ContentType string
	Body        []byte
}

type ExportQueries interface {
	BookingsCSV(ctx context.Context) (*File, error)
	Backup(ctx context.Context) (*File, error)
}

type exportQueriesImpl struct {
	uow        shared.UnitOfWork
	clock      clock.Clock
	calculator pricing.Calculator
	recorder   shared.BillingRecorder
}

func NewExportQueries(uow shared.UnitOfWork, clk clock.Clock, calculator pricing.Calculator, recorder shared.BillingRecorder) ExportQueries {
	return &exportQueriesImpl{uow: uow, clock: clk, calculator: calculator, recorder: recorder}
}

// BookingsCSV exports every booking in stored order. Rows that fail to price are kept
// and marked in place of their amounts.
func (q *exportQueriesImpl) BookingsCSV(ctx context.Context) (*File, error) {
	st, err := q.uow.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	dir := st.Directory()

	rows := make([]export.CSVRow, 0, len(st.Bookings))
	for _, b := range st.Bookings {
		row := buildRow(b, dir, st, q.calculator, q.recorder)
		rows = append(rows, export.CSVRow{
			Booking:   b,
			RoomName:  row.Room.Name,
			Breakdown: row.Breakdown,
		})
	}

	var buf bytes.Buffer
	if err := export.WriteBookingsCSV(&buf, rows); err != nil {
		return nil, errs.Wrap(err, "failed to write bookings csv")
	}
	return &File{
		Name:        export.CSVFilename(q.clock.Now()),
		ContentType: "text/csv; charset=utf-8",
		Body:        buf.Bytes(),
	}, nil
}

func (q *exportQueriesImpl) Backup(ctx context.Context) (*File, error) {
	st, err := q.uow.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	body, err := export.EncodeBackup(export.NewBackup(st.Rooms, st.Bookings, st.Settings))
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode backup")
	}
	return &File{
		Name:        export.BackupFilename(q.clock.Now()),
		ContentType: "application/json",
		Body:        body,
	}, nil
}
