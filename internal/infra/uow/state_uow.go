package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"sync"
	"time"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/infra"
	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/shared"
)

const rollbackTimeout = 10 * time.Second

var (
	errLoadState          = errs.New("failed to load state")
	errMaxRetriesExceeded = errs.New("save failed after max retries")
)

// StateUoW serializes every mutation of the three collections. Each Within call loads the
// whole state, lets fn stage replacements and saves only what was staged.
type StateUoW struct {
	mu       sync.RWMutex
	rooms    shared.RoomRepository
	bookings shared.BookingRepository
	settings shared.SettingsRepository
	logger   *slog.Logger
}

func NewStateUoW(rooms shared.RoomRepository, bookings shared.BookingRepository, settingsRepo shared.SettingsRepository, logger *slog.Logger) shared.UnitOfWork {
	return &StateUoW{
		rooms:    rooms,
		bookings: bookings,
		settings: settingsRepo,
		logger:   logger,
	}
}

func (u *StateUoW) Snapshot(ctx context.Context) (shared.State, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.load(ctx)
}

func (u *StateUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	st, err := u.load(ctx)
	if err != nil {
		return err
	}

	tx := &stateTx{state: st}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return u.commit(ctx, st, tx)
}

func (u *StateUoW) load(ctx context.Context) (shared.State, error) {
	rooms, err := u.rooms.Load(ctx)
	if err != nil {
		return shared.State{}, errs.Mark(errs.Wrap(err, "rooms"), errLoadState)
	}
	bookings, err := u.bookings.Load(ctx)
	if err != nil {
		return shared.State{}, errs.Mark(errs.Wrap(err, "bookings"), errLoadState)
	}
	s, err := u.settings.Load(ctx)
	if err != nil {
		return shared.State{}, errs.Mark(errs.Wrap(err, "settings"), errLoadState)
	}
	return shared.State{Rooms: rooms, Bookings: bookings, Settings: s}, nil
}

type stagedSave struct {
	name    string
	save    func() error
	restore func(ctx context.Context) error
}

// commit saves the staged collections in order. When one fails, collections already written
// in this call are restored to the values loaded at the start of Within.
func (u *StateUoW) commit(ctx context.Context, prev shared.State, tx *stateTx) error {
	var steps []stagedSave
	if tx.rooms != nil {
		steps = append(steps, stagedSave{
			name:    "rooms",
			save:    func() error { return u.rooms.Save(ctx, *tx.rooms) },
			restore: func(ctx context.Context) error { return u.rooms.Save(ctx, prev.Rooms) },
		})
	}
	if tx.bookings != nil {
		steps = append(steps, stagedSave{
			name:    "bookings",
			save:    func() error { return u.bookings.Save(ctx, *tx.bookings) },
			restore: func(ctx context.Context) error { return u.bookings.Save(ctx, prev.Bookings) },
		})
	}
	if tx.settings != nil {
		steps = append(steps, stagedSave{
			name:    "settings",
			save:    func() error { return u.settings.Save(ctx, *tx.settings) },
			restore: func(ctx context.Context) error { return u.settings.Save(ctx, prev.Settings) },
		})
	}

	for i, step := range steps {
		if err := u.saveWithRetry(ctx, step.name, step.save); err != nil {
			u.rollback(ctx, steps[:i])
			return err
		}
	}
	return nil
}

// rollback ignores cancellation of ctx.
func (u *StateUoW) rollback(ctx context.Context, written []stagedSave) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
	defer cancel()

	for i := len(written) - 1; i >= 0; i-- {
		step := written[i]
		if err := u.saveWithRetry(ctx, step.name, func() error { return step.restore(ctx) }); err != nil {
			u.logger.Error("failed to restore collection after partial commit",
				"collection", step.name,
				"error", err.Error())
			continue
		}
		u.logger.Warn("restored collection after partial commit", "collection", step.name)
	}
}

// Only store failures are retried; encoding failures are permanent.
func (u *StateUoW) saveWithRetry(ctx context.Context, name string, save func() error) error {
	const maxRetries = 3
	base := 50 * time.Millisecond

	for attempt := 0; ; attempt++ {
		err := save()
		if err == nil {
			return nil
		}
		if !infra.IsKind(err, infra.KindStoreFailure) {
			return errs.Mark(err, errs.ErrStoreOperationFailed)
		}
		if attempt == maxRetries {
			u.logger.Error("save failed after max retries",
				"collection", name,
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrStoreOperationFailed)
		}

		waitTime := calculateBackoff(attempt, base)
		u.logger.Warn("retrying save due to store failure",
			"collection", name,
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return errs.Mark(ctx.Err(), errs.ErrStoreOperationFailed)
		case <-time.After(waitTime):
		}
	}
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative value
	return int64(uval) % n
}

type stateTx struct {
	state shared.State

	// staged replacements, nil when untouched
	rooms    *[]room.Room
	bookings *[]booking.Booking
	settings *settings.Settings
}

func (t *stateTx) State() shared.State {
	st := t.state
	if t.rooms != nil {
		st.Rooms = *t.rooms
	}
	if t.bookings != nil {
		st.Bookings = *t.bookings
	}
	if t.settings != nil {
		st.Settings = *t.settings
	}
	return st.Clone()
}

func (t *stateTx) SetRooms(rooms []room.Room) {
	if rooms == nil {
		rooms = []room.Room{}
	}
	t.rooms = &rooms
}

func (t *stateTx) SetBookings(bookings []booking.Booking) {
	if bookings == nil {
		bookings = []booking.Booking{}
	}
	t.bookings = &bookings
}

func (t *stateTx) SetSettings(s settings.Settings) {
	t.settings = &s
}
