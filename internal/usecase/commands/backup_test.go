//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/usecase/commands"
	"hotel-fastbill/internal/usecase/shared"
	"hotel-fastbill/tests/common/builder"
	"hotel-fastbill/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportBackup(t *testing.T) {
	ctx := context.Background()
	seed := func() *shared.State {
		return &shared.State{
			Rooms:    []room.Room{builder.NewRoomBuilder().BuildDomain()},
			Bookings: []booking.Booking{builder.NewBookingBuilder().BuildDomain("bk_1")},
		}
	}

	t.Run("replaces present collections only", func(t *testing.T) {
		u := testutil.NewMemoryUoW(t, seed())
		uc := commands.NewBackupUseCase(u, testutil.DiscardLogger())

		res, err := uc.ImportBackup(ctx, []byte(`{"rooms":[{"id":"201","name":"201","type":"double","note":""}]}`))
		require.NoError(t, err)
		assert.Equal(t, commands.ImportResult{Rooms: true}, *res)

		st, err := u.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, []room.Room{{ID: "201", Name: "201", Type: "double"}}, st.Rooms)
		assert.Len(t, st.Bookings, 1)
		assert.Equal(t, settings.Default(), st.Settings)
	})

	t.Run("empty array clears and null is ignored", func(t *testing.T) {
		u := testutil.NewMemoryUoW(t, seed())
		uc := commands.NewBackupUseCase(u, testutil.DiscardLogger())

		res, err := uc.ImportBackup(ctx, []byte(`{"rooms":null,"bookings":[],"settings":{"appName":"X","rounding":"floor"}}`))
		require.NoError(t, err)
		assert.Equal(t, commands.ImportResult{Bookings: true, Settings: true}, *res)

		st, err := u.Snapshot(ctx)
		require.NoError(t, err)
		assert.Len(t, st.Rooms, 1)
		assert.Empty(t, st.Bookings)
		assert.Equal(t, "X", st.Settings.AppName)
	})

	for _, raw := range []string{``, `null`, `[]`, `{"rooms":`, `"rooms"`} {
		t.Run("rejects "+raw, func(t *testing.T) {
			u := testutil.NewMemoryUoW(t, seed())
			uc := commands.NewBackupUseCase(u, testutil.DiscardLogger())

			_, err := uc.ImportBackup(ctx, []byte(raw))
			assert.ErrorIs(t, err, commands.ErrInvalidBackup)

			st, err := u.Snapshot(ctx)
			require.NoError(t, err)
			assert.Len(t, st.Rooms, 1)
		})
	}
}
