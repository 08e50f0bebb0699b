package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/domain/settings"
	"hotel-fastbill/internal/pkg/errs"
)

var ErrInvalidBackup = errs.ErrInvalidBackup

// Backup is the JSON backup file. On import a nil field means the collection was absent
// from the file and must be left untouched.
type Backup struct {
	Rooms    []room.Room        `json:"rooms"`
	Bookings []booking.Booking  `json:"bookings"`
	Settings *settings.Settings `json:"settings"`
}

func NewBackup(rooms []room.Room, bookings []booking.Booking, s settings.Settings) Backup {
	if rooms == nil {
		rooms = []room.Room{}
	}
	if bookings == nil {
		bookings = []booking.Booking{}
	}
	return Backup{Rooms: rooms, Bookings: bookings, Settings: &s}
}

// EncodeBackup pretty-prints with a two-space indent.
func EncodeBackup(b Backup) ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}

func DecodeBackup(raw []byte) (Backup, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Backup{}, fmt.Errorf("%w: expected a JSON object", ErrInvalidBackup)
	}
	var b Backup
	if err := json.Unmarshal(trimmed, &b); err != nil {
		return Backup{}, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	return b, nil
}

func BackupFilename(now time.Time) string {
	return "hotelfastbill_backup_" + now.UTC().Format(time.DateOnly) + ".json"
}
