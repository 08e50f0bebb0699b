//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hotel-fastbill/internal/handler/api"
	resdto "hotel-fastbill/internal/handler/dto/response"
	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/commands"
	"hotel-fastbill/internal/usecase/queries"
	"hotel-fastbill/tests/common/httptest"
	commandsmock "hotel-fastbill/tests/mock/commands"
	queriesmock "hotel-fastbill/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ExportHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockBackup   *commandsmock.MockBackupCommands
	mockExports  *queriesmock.MockExportQueries
	mockInvoices *queriesmock.MockInvoiceQueries
}

func (s *ExportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBackup = commandsmock.NewMockBackupCommands(s.mockCtrl)
	s.mockExports = queriesmock.NewMockExportQueries(s.mockCtrl)
	s.mockInvoices = queriesmock.NewMockInvoiceQueries(s.mockCtrl)

	exports := api.NewExportHandler(s.mockBackup, s.mockExports)
	invoices := api.NewInvoiceHandler(s.mockInvoices)

	s.router.GET("/export/bookings.csv", exports.BookingsCSV)
	s.router.GET("/backup", exports.Backup)
	s.router.POST("/backup", exports.Restore)
	s.router.GET("/bookings/:id/invoice", invoices.HTML)
	s.router.GET("/bookings/:id/invoice/pdf", invoices.PDF)
}

func (s *ExportHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestExportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}

func (s *ExportHandlerTestSuite) TestBookingsCSV() {
	s.mockExports.EXPECT().BookingsCSV(gomock.Any()).Return(&queries.File{
		Name:        "bookings-2025-03-05.csv",
		ContentType: "text/csv; charset=utf-8",
		Body:        []byte("\"ID\",\"Room\"\n"),
	}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/export/bookings.csv", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	httptest.AssertDownload(s.T(), rec, "attachment", "bookings-2025-03-05.csv")
	s.Equal("\"ID\",\"Room\"\n", rec.Body.String())
}

func (s *ExportHandlerTestSuite) TestBackup() {
	s.Run("success: downloads the snapshot", func() {
		s.mockExports.EXPECT().Backup(gomock.Any()).Return(&queries.File{
			Name:        "hotelfastbill-backup-2025-03-05.json",
			ContentType: "application/json",
			Body:        []byte(`{"rooms":[],"bookings":[],"settings":{}}`),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/backup", nil)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertDownload(s.T(), rec, "attachment", "hotelfastbill-backup-2025-03-05.json")
		s.JSONEq(`{"rooms":[],"bookings":[],"settings":{}}`, rec.Body.String())
	})

	s.Run("error: 500 when the store fails", func() {
		s.mockExports.EXPECT().Backup(gomock.Any()).Return(nil, errs.ErrStoreOperationFailed).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/backup", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *ExportHandlerTestSuite) TestRestore() {
	payload := []byte(`{"rooms":[{"id":"101","name":"101","type":"single","note":""}]}`)

	s.Run("success: raw JSON body", func() {
		s.mockBackup.EXPECT().ImportBackup(gomock.Any(), payload).
			Return(&commands.ImportResult{Rooms: true}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/backup", "application/json", payload)

		var body resdto.ImportBackupResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.ImportBackupResponse{Rooms: true}, body)
	})

	s.Run("success: multipart upload", func() {
		s.mockBackup.EXPECT().ImportBackup(gomock.Any(), payload).
			Return(&commands.ImportResult{Rooms: true}, nil).Times(1)

		rec := httptest.PerformUpload(s.T(), s.router, "/backup", "file", "backup.json", payload)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when the upload field is missing", func() {
		rec := httptest.PerformUpload(s.T(), s.router, "/backup", "attachment", "backup.json", payload)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid backup file")
	})

	s.Run("error: 400 for malformed backup", func() {
		s.mockBackup.EXPECT().ImportBackup(gomock.Any(), []byte("null")).
			Return(nil, errs.Mark(errs.New("backup must be a JSON object"), commands.ErrInvalidBackup)).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/backup", "application/json", []byte("null"))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid backup file")
	})
}

func (s *ExportHandlerTestSuite) TestInvoice() {
	s.Run("html is served inline", func() {
		s.mockInvoices.EXPECT().Render(gomock.Any(), "bk_1", queries.InvoiceHTML).Return(&queries.File{
			Name:        "hoa-don-bk-1.html",
			ContentType: "text/html; charset=utf-8",
			Body:        []byte("<html></html>"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_1/invoice", nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Equal("text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		httptest.AssertDownload(s.T(), rec, "inline", "hoa-don-bk-1.html")
	})

	s.Run("pdf is an attachment", func() {
		s.mockInvoices.EXPECT().Render(gomock.Any(), "bk_1", queries.InvoicePDF).Return(&queries.File{
			Name:        "hoa-don-bk-1.pdf",
			ContentType: "application/pdf",
			Body:        []byte("%PDF-1.3"),
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_1/invoice/pdf", nil)

		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertDownload(s.T(), rec, "attachment", "hoa-don-bk-1.pdf")
	})

	s.Run("error: 404 for unknown booking", func() {
		s.mockInvoices.EXPECT().Render(gomock.Any(), "bk_404", queries.InvoiceHTML).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_404/invoice", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 422 for a booking that cannot be invoiced", func() {
		s.mockInvoices.EXPECT().Render(gomock.Any(), "bk_zero", queries.InvoicePDF).
			Return(nil, queries.ErrNotInvoiceable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/bk_zero/invoice/pdf", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot be invoiced")
	})
}
