package api

import (
	"net/http"

	resdto "github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/dto/response"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/httperr"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const msgOptionsFailed = "Er is een fout opgetreden bij het ophalen van opties"

type OptionHandler struct {
	q queries.OptionQueries
}

func NewOptionHandler(q queries.OptionQueries) *OptionHandler {
	return &OptionHandler{q: q}
}

// @Summary List options
// @Description List active options ordered by sort order
// @Tags options
// @Produce json
// @Success 200 {object} resdto.Envelope{data=[]resdto.OptionResponse}
// @Failure 500 {object} httperr.Response
// @Router /api/options [get]
func (h *OptionHandler) List(c *gin.Context) {
	views, err := h.q.ListActive(c.Request.Context())
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, msgOptionsFailed)
		return
	}

	items, err := resdto.FromOptionList(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgOptionsFailed, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(items))
}
