package api

import (
	"io"
	"mime"
	"net/http"

	resdto "hotel-fastbill/internal/handler/dto/response"
	"hotel-fastbill/internal/handler/httperr"
	"hotel-fastbill/internal/pkg/errs"
	"hotel-fastbill/internal/usecase/commands"
	"hotel-fastbill/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const maxBackupBytes = 32 << 20

type ExportHandler struct {
	backup commands.BackupCommands
	q      queries.ExportQueries
}

func NewExportHandler(backup commands.BackupCommands, q queries.ExportQueries) *ExportHandler {
	return &ExportHandler{backup: backup, q: q}
}

// @Summary Export bookings as CSV
// @Description Every booking in stored order. Rows that cannot be priced carry ERROR in the computed columns.
// @Tags export
// @Produce text/csv
// @Success 200 {file} file
// @Router /api/export/bookings.csv [get]
func (h *ExportHandler) BookingsCSV(c *gin.Context) {
	f, err := h.q.BookingsCSV(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	sendFile(c, f, "attachment")
}

// @Summary Download backup
// @Description Rooms, bookings and settings as one JSON document
// @Tags backup
// @Produce json
// @Success 200 {file} file
// @Router /api/backup [get]
func (h *ExportHandler) Backup(c *gin.Context) {
	f, err := h.q.Backup(c.Request.Context())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	sendFile(c, f, "attachment")
}

// @Summary Restore backup
// @Description Replace each collection present in the uploaded JSON. Accepts a raw JSON body or a multipart "file" field.
// @Tags backup
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Backup file"
// @Success 200 {object} resdto.ImportBackupResponse
// @Failure 400 {object} map[string]string
// @Router /api/backup [post]
func (h *ExportHandler) Restore(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBackupBytes)

	raw, err := readBackupBody(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid backup file", nil)
		return
	}
	result, err := h.backup.ImportBackup(c.Request.Context(), raw)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromImportResult(result))
}

func readBackupBody(c *gin.Context) ([]byte, error) {
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return io.ReadAll(c.Request.Body)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, errs.Wrap(err, "missing file field")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errs.Wrap(err, "failed to open upload")
	}
	defer f.Close()
	return io.ReadAll(f)
}

func sendFile(c *gin.Context, f *queries.File, disposition string) {
	c.Header("Content-Disposition", mime.FormatMediaType(disposition, map[string]string{"filename": f.Name}))
	c.Data(http.StatusOK, f.ContentType, f.Body)
}
