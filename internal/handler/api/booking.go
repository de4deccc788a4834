package api

import (
	"net/http"

	reqdto "github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/dto/request"
	resdto "github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/dto/response"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/handler/httperr"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/errs"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/pkg/validator"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/commands"
	"github.com/PandaPandaBE/oud-zwembad-booking-tool/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	msgCreated = "Reservering succesvol aangemaakt"
	msgUpdated = "Reservering succesvol bijgewerkt"
	msgDeleted = "Reservering succesvol verwijderd"

	msgListFailed   = "Er is een fout opgetreden bij het ophalen van reserveringen"
	msgGetFailed    = "Er is een fout opgetreden bij het ophalen van de reservering"
	msgCreateFailed = "Er is een fout opgetreden bij het aanmaken van de reservering"
	msgUpdateFailed = "Er is een fout opgetreden bij het bijwerken van de reservering"
	msgDeleteFailed = "Er is een fout opgetreden bij het verwijderen van de reservering"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary List bookings
// @Description List bookings ordered by date, optionally filtered by an inclusive date range and option ids
// @Tags bookings
// @Produce json
// @Param startDate query string false "Earliest reservation date (YYYY-MM-DD)"
// @Param endDate query string false "Latest reservation date (YYYY-MM-DD)"
// @Param reservationType query []string false "Option ids; a booking matches when it has any of them" collectionFormat(multi)
// @Success 200 {object} resdto.Envelope{data=[]resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
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

	views, err := h.q.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, msgListFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromBookingList(views)))
}

// @Summary Create booking
// @Description Create a pending booking priced from the selected active options
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithUseCaseError(c, validator.FromDecodeError(err), msgCreateFailed)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.AbortWithUseCaseError(c, err, msgCreateFailed)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, msgCreateFailed)
		return
	}

	view, err := h.cmds.CreateBooking(c.Request.Context(), cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, msgCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, resdto.OKWithMessage(msgCreated, resdto.FromBookingView(view, req.Schedule())))
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := bookingID(c, msgGetFailed)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, msgGetFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.OK(resdto.FromBookingView(view, queries.Schedule{})))
}

// @Summary Update booking
// @Description Partially update a booking; a reservationType list replaces all options and reprices the booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Update booking request"
// @Success 200 {object} resdto.Envelope{data=resdto.BookingResponse}
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := bookingID(c, msgUpdateFailed)
	if !ok {
		return
	}

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithUseCaseError(c, validator.FromDecodeError(err), msgUpdateFailed)
		return
	}
	if err := req.Validate(); err != nil {
		httperr.AbortWithUseCaseError(c, err, msgUpdateFailed)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, msgUpdateFailed)
		return
	}

	view, err := h.cmds.UpdateBooking(c.Request.Context(), id, cmd)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, msgUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage(msgUpdated, resdto.FromBookingView(view, req.Schedule())))
}

// @Summary Delete booking
// @Description Delete a booking together with its option associations
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.Envelope
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := bookingID(c, msgDeleteFailed)
	if !ok {
		return
	}

	if err := h.cmds.DeleteBooking(c.Request.Context(), id); err != nil {
		httperr.AbortWithUseCaseError(c, err, msgDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.OKWithMessage(msgDeleted, nil))
}

// A malformed id cannot name a stored booking, so it is reported as not found.
func bookingID(c *gin.Context, fallbackMsg string) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.AbortWithUseCaseError(c, errs.NewNotFound(queries.EntityBooking, raw), fallbackMsg)
		return uuid.Nil, false
	}
	return id, true
}
