package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking_mock.go -package=commandsmock
//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/room_mock.go -package=commandsmock
//go:generate mockgen -source=settings.go -destination=../../../tests/mock/commands/settings_mock.go -package=commandsmock
//go:generate mockgen -source=backup.go -destination=../../../tests/mock/commands/backup_mock.go -package=commandsmock
