package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last public error envelope when a handler recorded
// one with c.Error but wrote nothing itself.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
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

		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, internalError())
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.New(fmt.Sprint(rec))
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err.Error(),
					"path", c.Request.URL.Path,
					"stack", errs.ExtractStackLines(err, 8))
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
