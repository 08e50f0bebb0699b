package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock
//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/room_mock.go -package=queriesmock
//go:generate mockgen -source=settings.go -destination=../../../tests/mock/queries/settings_mock.go -package=queriesmock
//go:generate mockgen -source=export.go -destination=../../../tests/mock/queries/export_mock.go -package=queriesmock
//go:generate mockgen -source=invoice.go -destination=../../../tests/mock/queries/invoice_mock.go -package=queriesmock
