package api

import (
	"net/http"

	reqdto "github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/dto/request"
	resdto "github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/dto/response"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/httperr"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/validator"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	q queries.CalendarQueries
}

func NewCalendarHandler(q queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{q: q}
}

// @Summary List calendar events
// @Description Bookings projected as calendar events, filtered like the booking listing
// @Tags calendar
// @Produce json
// @Param startDate query string false "Earliest reservation date (YYYY-MM-DD)"
// @Param endDate query string false "Latest reservation date (YYYY-MM-DD)"
// @Param reservationType query []string false "Option ids" collectionFormat(multi)
// @Success 200 {object} resdto.Envelope{data=[]resdto.CalendarEventResponse}
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/calendar/events [get]
func (h *CalendarHandler) Events(c *gin.Context) {
	var query reqdto.BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithUseCaseError(c, validator.FromDecodeError(err), msgListFailed)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, msgListFailed)
		return
	}

	events, err := h.q.Events(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, msgListFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromCalendarEvents(events)))
}
