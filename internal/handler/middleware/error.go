package middleware

import (
	"log/slog"
	"net/http"

	"hotel-fastbill/internal/handler/httperr"
	"hotel-fastbill/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the public error recorded by httperr when a handler aborted
// without a body of its own.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors {
			if ginErr.IsType(gin.ErrorTypePublic) {
				if resp, ok := ginErr.Meta.(httperr.Response); ok && resp.Status >= http.StatusInternalServerError {
					slog.Error("Request failed",
						"request_id", GetRequestID(c),
						"path", c.Request.URL.Path,
						"error", ginErr.Err.Error(),
						"stack", errs.ExtractStackLines(ginErr.Err, 12))
				}
			}
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if ginErr.IsType(gin.ErrorTypePublic) {
				if resp, ok := ginErr.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("Recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
