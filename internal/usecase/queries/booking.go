package queries

import (
	"context"
	"strings"
	"time"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/shared"
)

type BookingFilter struct {
	Q    string
	From string
	To   string
}

// BookingRow is one line of the booking list. Breakdown is nil when the booking could not
// be priced; Invalid also covers zero-hour stays.
type BookingRow struct {
	Booking   booking.Booking
	Room      room.Resolved
	Breakdown *pricing.PriceBreakdown
	Invalid   bool
	Error     string
}

type BookingPage struct {
	Items      []BookingRow
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type BookingQueries interface {
	List(ctx context.Context, filter BookingFilter, page, perPage int) (*BookingPage, error)
	Get(ctx context.Context, id string) (*BookingRow, error)
}

type bookingQueriesImpl struct {
	uow        shared.UnitOfWork
	calculator pricing.Calculator
	recorder   shared.BillingRecorder
}

func NewBookingQueries(uow shared.UnitOfWork, calculator pricing.Calculator, recorder shared.BillingRecorder) BookingQueries {
	return &bookingQueriesImpl{uow: uow, calculator: calculator, recorder: recorder}
}

func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, page, perPage int) (*BookingPage, error) {
	match, err := filter.matcher()
	if err != nil {
		return nil, err
	}

	st, err := q.uow.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	dir := st.Directory()

	filtered := make([]booking.Booking, 0, len(st.Bookings))
	for _, b := range st.Bookings {
		if match(b, dir.ByID(b.RoomID)) {
			filtered = append(filtered, b)
		}
	}

	perPage = ValidatePerPage(perPage)
	start, end, page, totalPages := Paginate(len(filtered), page, perPage)

	items := make([]BookingRow, 0, end-start)
	for _, b := range filtered[start:end] {
		items = append(items, buildRow(b, dir, st, q.calculator, q.recorder))
	}

	return &BookingPage{
		Items:      items,
		Total:      len(filtered),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

func (q *bookingQueriesImpl) Get(ctx context.Context, id string) (*BookingRow, error) {
	st, err := q.uow.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	b, ok := st.BookingByID(id)
	if !ok {
		return nil, ErrBookingNotFound
	}
	row := buildRow(b, st.Directory(), st, q.calculator, q.recorder)
	return &row, nil
}

func buildRow(b booking.Booking, dir room.Directory, st shared.State, calc pricing.Calculator, recorder shared.BillingRecorder) BookingRow {
	row := BookingRow{Booking: b, Room: dir.Resolve(b.RoomID)}
	p, err := calc.Price(b, st.Settings)
	if err != nil {
		recorder.PricingFailed()
		row.Invalid = true
		row.Error = err.Error()
		return row
	}
	row.Breakdown = &p
	row.Invalid = !p.HasBillableDuration()
	return row
}

// matcher compiles the filter. q is matched case-insensitively against the resolved room
// name and the notes, and as a plain substring of the booking id. from and to are compared
// against check-in and check-out; bookings whose timestamps do not parse never pass a
// date bound.
func (f BookingFilter) matcher() (func(b booking.Booking, r room.Room) bool, error) {
	q := strings.ToLower(strings.TrimSpace(f.Q))

	var from, to time.Time
	var hasFrom, hasTo bool
	if s := strings.TrimSpace(f.From); s != "" {
		t, ok := pricing.ParseDateBound(s)
		if !ok {
			return nil, errs.Wrap(ErrInvalidFilter, "from")
		}
		from, hasFrom = t, true
	}
	if s := strings.TrimSpace(f.To); s != "" {
		t, ok := pricing.ParseDateBound(s)
		if !ok {
			return nil, errs.Wrap(ErrInvalidFilter, "to")
		}
		to, hasTo = t, true
	}

	return func(b booking.Booking, r room.Room) bool {
		if q != "" &&
			!strings.Contains(b.ID, q) &&
			!strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(b.Notes), q) {
			return false
		}
		if hasFrom {
			in, ok := pricing.ParseTimestamp(b.CheckIn)
			if !ok || in.Before(from) {
				return false
			}
		}
		if hasTo {
			out, ok := pricing.ParseTimestamp(b.CheckOut)
			if !ok || out.After(to) {
				return false
			}
		}
		return true
	}, nil
}
