//go:build unit

package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/infra"
	"hotel-fastbill/internal/infra/kvstore"
	"hotel-fastbill/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) Put(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockStore) Close() error {
	return m.Called().Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSettingsRepository(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		stored   []byte
		getErr   error
		want     settings.Settings
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:   "missing key falls back to defaults",
			getErr: kvstore.ErrNotFound,
			want:   settings.Default(),
		},
		{
			name:   "json null falls back to defaults",
			stored: []byte("null"),
			want:   settings.Default(),
		},
		{
			name:   "stored value",
			stored: []byte(`{"appName":"Night Owl","rounding":"floor","pricePerHourDefault":50000,"waterPriceDefault":5000,"roomTypes":[]}`),
			want: settings.Settings{
				AppName:           "Night Owl",
				Rounding:          settings.RoundingFloor,
				DefaultHourlyRate: 50000,
				DefaultWaterPrice: 5000,
				RoomTypes:         []settings.RoomType{},
			},
		},
		{
			name:     "malformed value",
			stored:   []byte(`{"appName":`),
			wantKind: infra.KindDecodeFailure,
		},
		{
			name:     "backend failure",
			getErr:   errors.New("connection reset"),
			wantKind: infra.KindStoreFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			store.On("Get", ctx, KeySettings).Return(tt.stored, tt.getErr)

			repo := NewSettingsRepository(store, discardLogger())
			got, err := repo.Load(ctx)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind), "kind %s: %v", tt.wantKind, err)
				assert.ErrorIs(t, err, errs.ErrStoreOperationFailed)
				assert.Contains(t, err.Error(), KeySettings)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("settings mismatch (-want +got):\n%s", diff)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestRoomAndBookingRepositories(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	rooms := NewRoomRepository(store, discardLogger())
	bookings := NewBookingRepository(store, discardLogger())

	t.Run("empty collections", func(t *testing.T) {
		r, err := rooms.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, r)
		assert.Empty(t, r)

		b, err := bookings.Load(ctx)
		require.NoError(t, err)
		assert.NotNil(t, b)
		assert.Empty(t, b)
	})

	t.Run("save replaces the collection", func(t *testing.T) {
		want := []room.Room{{ID: "102", Name: "102", Type: "double"}, {ID: "101", Name: "101", Type: "single", Note: "sea view"}}
		require.NoError(t, rooms.Save(ctx, want))

		got, err := rooms.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		raw, err := store.Get(ctx, KeyRooms)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":"102","name":"102","type":"double","note":""},{"id":"101","name":"101","type":"single","note":"sea view"}]`, string(raw))
	})

	t.Run("bookings keep the stored field names", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, KeyBookings, []byte(`[{"id":"bk_1700000000000","roomId":"101","checkIn":"2025-03-01T14:00","checkOut":"2025-03-01T17:30","waterS":1,"waterN":0,"waterB":1,"notes":"","createdAt":"2025-03-01T07:00:00.000Z"}]`)))

		got, err := bookings.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, booking.Booking{
			ID:        "bk_1700000000000",
			RoomID:    "101",
			CheckIn:   "2025-03-01T14:00",
			CheckOut:  "2025-03-01T17:30",
			WaterS:    1,
			WaterB:    1,
			CreatedAt: "2025-03-01T07:00:00.000Z",
		}, got[0])
	})

	t.Run("put failure is a store failure", func(t *testing.T) {
		failing := new(MockStore)
		failing.On("Put", ctx, KeyRooms, mock.Anything).Return(errors.New("read-only"))

		err := NewRoomRepository(failing, discardLogger()).Save(ctx, []room.Room{})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})
}
