package httperr

import (
	"net/http"

	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/errs"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

const (
	MsgValidation     = "Validatiefout"
	MsgNoValidOptions = "Geen geldige opties geselecteerd"
	MsgNotFound       = "Reservering niet gevonden"
	MsgInternal       = "Interne serverfout"
)

type Response struct {
	Status  int    `json:"-"`
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, details any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Success: false, Error: msg, Details: details}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithUseCaseError maps the error taxonomy onto a status and message.
// Anything unrecognized becomes a 500 carrying fallbackMsg; internal detail is never exposed.
func AbortWithUseCaseError(c *gin.Context, err error, fallbackMsg string) {
	var verr *validator.ValidationError
	switch {
	case errs.As(err, &verr):
		AbortWithError(c, http.StatusBadRequest, err, MsgValidation, verr.Issues)
	case errs.IsNotFound(err):
		AbortWithError(c, http.StatusNotFound, err, MsgNotFound, nil)
	case errs.Is(err, errs.ErrNoValidOptions):
		AbortWithError(c, http.StatusBadRequest, err, MsgNoValidOptions, nil)
	default:
		AbortWithError(c, http.StatusInternalServerError, err, fallbackMsg, nil)
	}
}
