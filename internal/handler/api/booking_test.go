//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-fastbill/internal/domain/booking"
	"hotel-fastbill/internal/domain/money"
	"hotel-fastbill/internal/domain/pricing"
	"hotel-fastbill/internal/domain/room"
	"hotel-fastbill/internal/handler/api"
	resdto "hotel-fastbill/internal/handler/dto/response"
	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/commands"
	"hotel-fastbill/internal/usecase/queries"
	"hotel-fastbill/tests/common/builder"
	"hotel-fastbill/tests/common/httptest"
	"hotel-fastbill/tests/common/testutil"
	commandsmock "hotel-fastbill/tests/mock/commands"
	queriesmock "hotel-fastbill/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/bookings", s.handler.List)
	s.router.POST("/bookings", s.handler.Create)
	s.router.GET("/bookings/:id", s.handler.Get)
	s.router.GET("/bookings/:id/price", s.handler.Price)
	s.router.DELETE("/bookings/:id", s.handler.Delete)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleBreakdown() pricing.PriceBreakdown {
	return pricing.PriceBreakdown{
		Hours:         4,
		BaseRateFirst: money.Amount(60000),
		PerHourNext:   money.Amount(20000),
		RoomCharge:    money.Amount(120000),
		WaterCharge:   money.Amount(40000),
		Total:         money.Amount(160000),
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	created := builder.NewBookingBuilder().BuildDomain("bk_1740812400000")

	s.Run("success: returns 201 with booking and price", func() {
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), builder.NewBookingBuilder().BuildCommand()).
			Return(&commands.CreateBookingResult{Booking: created, Breakdown: sampleBreakdown()}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/bk_1740812400000"})

		want := resdto.CreateBookingResponse{
			Booking: resdto.FromBooking(created),
			Price: resdto.PriceBreakdownResponse{
				Hours: 4, BaseRateFirst: 60000, PerHourNext: 20000,
				RoomCharge: 120000, WaterCharge: 40000, Total: 160000,
			},
		}
		if diff := cmp.Diff(want, body); diff != "" {
			s.T().Errorf("response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 400 when the body is not JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "application/json", []byte("{"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	malformedCounts := []struct {
		name  string
		field string
		value any
	}{
		{"non-numeric string", "waterS", "abc"},
		{"fraction", "waterS", 1.5},
		{"fractional string", "waterN", "0.5"},
		{"boolean", "waterB", true},
		{"object", "waterN", map[string]int{"n": 1}},
	}
	for _, tc := range malformedCounts {
		s.Run("error: 422 invalid quantity for "+tc.name, func() {
			s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Times(0)

			body := testutil.DtoMap(s.T(), reqBody, testutil.Field(tc.field, tc.value))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "whole numbers")
		})
	}

	s.Run("success: form-style counts are coerced", func() {
		want := builder.NewBookingBuilder().WithWater(2, 0, 0).BuildCommand()
		s.mockCommands.EXPECT().
			CreateBooking(gomock.Any(), want).
			Return(&commands.CreateBookingResult{Booking: created, Breakdown: sampleBreakdown()}, nil).
			Times(1)

		body := testutil.DtoMap(s.T(), reqBody,
			testutil.Field("waterS", "2"),
			testutil.Field("waterN", ""),
			testutil.Field("waterB", nil),
		)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)
		s.Equal(http.StatusCreated, rec.Code)
	})

	cases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{"unknown room", errs.Wrap(commands.ErrRoomNotFound, "room 999"), http.StatusNotFound, "Room not found"},
		{"negative quantity", errs.Mark(booking.ErrInvalidQuantity, errs.ErrDomainValidation), http.StatusUnprocessableEntity, "whole numbers"},
		{"zero hours", errs.Mark(commands.ErrInvalidDuration, errs.ErrDomainValidation), http.StatusUnprocessableEntity, "at least one hour"},
		{"missing field", errs.Mark(errors.New("roomId is required"), errs.ErrDomainValidation), http.StatusUnprocessableEntity, "Domain validation failed"},
		{"store failure", errs.ErrStoreOperationFailed, http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	priced := sampleBreakdown()
	page := &queries.BookingPage{
		Items: []queries.BookingRow{
			{
				Booking:   builder.NewBookingBuilder().BuildDomain("bk_2"),
				Room:      room.Resolved{Room: room.Room{ID: "101", Name: "Garden"}, Known: true},
				Breakdown: &priced,
			},
			{
				Booking: builder.NewBookingBuilder().WithCheckIn("bad").BuildDomain("bk_1"),
				Room:    room.Resolved{Room: room.Placeholder("101")},
				Invalid: true,
				Error:   "invalid check-in",
			},
		},
		Total: 2, Page: 1, PerPage: 12, TotalPages: 1,
	}

	s.Run("success: binds filter and paging from the query string", func() {
		s.mockQueries.EXPECT().
			List(gomock.Any(), queries.BookingFilter{Q: "garden", From: "2025-03-01", To: "2025-03-31"}, 2, 5).
			Return(page, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/bookings?q=garden&from=2025-03-01&to=2025-03-31&page=2&perPage=5", nil)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 2)
		s.Equal("Garden", body.Items[0].RoomName)
		s.Require().NotNil(body.Items[0].Total)
		s.EqualValues(160000, *body.Items[0].Total)
		s.True(body.Items[1].Invalid)
		s.Nil(body.Items[1].Total)
		s.Nil(body.Items[1].Hours)
		s.Equal("invalid check-in", body.Items[1].Error)
	})

	s.Run("success: paging defaults are left to the query layer", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.BookingFilter{}, 0, 0).Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on page below 1", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?page=0", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 on non-numeric perPage", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?perPage=all", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query")
	})

	s.Run("error: 400 on unparseable date bound", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Wrap(queries.ErrInvalidFilter, "from")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=yesterday", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid filter")
	})
}

// ================================================================================
// TestGet / TestPrice
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	priced := sampleBreakdown()

	s.Run("success: returns booking with resolved room", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "bk_1").Return(&queries.BookingRow{
			Booking:   builder.NewBookingBuilder().BuildDomain("bk_1"),
			Room:      room.Resolved{Room: room.Room{ID: "101", Name: "101", Type: "double"}, Known: true},
			Breakdown: &priced,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_1", nil)

		var body resdto.BookingDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("bk_1", body.Booking.ID)
		s.True(body.Room.Known)
		s.Equal("double", body.Room.Type)
		s.Require().NotNil(body.Price)
		s.EqualValues(160000, body.Price.Total)
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "bk_404").Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_404", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestPrice() {
	s.Run("success: returns only the breakdown", func() {
		priced := sampleBreakdown()
		s.mockQueries.EXPECT().Get(gomock.Any(), "bk_1").
			Return(&queries.BookingRow{Breakdown: &priced}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_1/price", nil)

		var body resdto.PriceBreakdownResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(4, body.Hours)
		s.EqualValues(120000, body.RoomCharge)
	})

	s.Run("error: 422 when the booking cannot be priced", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), "bk_bad").
			Return(&queries.BookingRow{Invalid: true, Error: "invalid check-out"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_bad/price", nil)
		httptest.AssertErrorReason(s.T(), rec, http.StatusUnprocessableEntity, "invalid check-out")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *BookingHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), "bk_1").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/bk_1", nil)
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), "bk_404").Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/bk_404", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
