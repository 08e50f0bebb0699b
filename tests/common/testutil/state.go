//go:build unit || e2e

package testutil

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/infra/kvstore"
	"hotel-fastbill/internal/infra/repository"
	"hotel-fastbill/internal/infra/uow"
	"hotel-fastbill/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewMemoryUoW returns a unit of work over a fresh in-memory store, seeded with the
// collections of seed that are non-nil.
func NewMemoryUoW(t *testing.T, seed *shared.State) shared.UnitOfWork {
	t.Helper()
	logger := DiscardLogger()
	store := kvstore.NewMemoryStore()
	u := uow.NewStateUoW(
		repository.NewRoomRepository(store, logger),
		repository.NewBookingRepository(store, logger),
		repository.NewSettingsRepository(store, logger),
		logger,
	)
	if seed == nil {
		return u
	}
	err := u.Within(context.Background(), func(_ context.Context, tx shared.Tx) error {
		if seed.Rooms != nil {
			tx.SetRooms(seed.Rooms)
		}
		if seed.Bookings != nil {
			tx.SetBookings(seed.Bookings)
		}
		if seed.Settings.AppName != "" {
			tx.SetSettings(seed.Settings)
		}
		return nil
	})
	require.NoError(t, err)
	return u
}

// RecorderSpy counts billing events.
type RecorderSpy struct {
	mu       sync.Mutex
	Created  int
	Rejected []string
	Failed   int
	Invoices []string
}

var _ shared.BillingRecorder = (*RecorderSpy)(nil)

func (r *RecorderSpy) BookingCreated(pricing.PriceBreakdown) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Created++
}

func (r *RecorderSpy) BookingRejected(reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Rejected = append(r.Rejected, reason)
}

func (r *RecorderSpy) PricingFailed() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Failed++
}

func (r *RecorderSpy) InvoiceIssued(format string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Invoices = append(r.Invoices, format)
}
