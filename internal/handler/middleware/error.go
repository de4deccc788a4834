package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/httperr"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const panicStackLines = 12

// ErrorHandler writes the envelope of the most recent public error when a
// handler recorded one without writing a body. A handler that wrote nothing
// at all gets the generic 500 envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if resp, ok := lastPublicResponse(c.Errors); ok {
			c.JSON(resp.Status, resp)
			return
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.Response{Success: false, Error: httperr.MsgInternal})
	}
}

func lastPublicResponse(errList []*gin.Error) (httperr.Response, bool) {
	for i := len(errList) - 1; i >= 0; i-- {
		if !errList[i].IsType(gin.ErrorTypePublic) {
			continue
		}
		if resp, ok := errList[i].Meta.(httperr.Response); ok {
			return resp, true
		}
	}
	return httperr.Response{}, false
}

// CustomRecovery turns a panic into the generic 500 envelope and logs where it happened.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			err := errs.New(fmt.Sprint(rec))
			slog.Error("recovered from panic",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"request_id", GetRequestID(c),
				"stack", errs.ExtractStackLines(err, panicStackLines))

			c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.Response{
				Status:  http.StatusInternalServerError,
				Success: false,
				Error:   httperr.MsgInternal,
			})
		}()
		c.Next()
	}
}
