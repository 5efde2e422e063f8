package api

import (
	"net/http"
	"time"

	reqdto "grooming-salon/internal/handler/dto/request"
	resdto "grooming-salon/internal/handler/dto/response"
	"grooming-salon/internal/handler/httperr"
	"grooming-salon/internal/handler/middleware"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
	loc  *time.Location
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, loc *time.Location) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, loc: loc}
}

// @Summary List bookings in a range
// @Description Bookings with start_time in [start, end], ordered by start_time
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param start query string true "RFC 3339 start"
// @Param end query string true "RFC 3339 end"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListRange(c *gin.Context) {
	var query reqdto.RangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	bookings, err := h.q.ListRange(c.Request.Context(), query.Start, query.End)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(bookings))
}

// @Summary List bookings of a month
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/month [get]
func (h *BookingHandler) ListMonth(c *gin.Context) {
	var query reqdto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	bookings, err := h.q.ListMonth(c.Request.Context(), query.Year, time.Month(query.Month))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(bookings))
}

// @Summary Calendar day view
// @Description The day's bookings and the 09:00-20:00 hourly slots
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param date query string true "Salon-local date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DayResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/day [get]
func (h *BookingHandler) Day(c *gin.Context) {
	var query reqdto.DayQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, err := time.ParseInLocation(dateLayout, query.Date, h.loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}
	day, err := h.q.Day(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayView(day))
}

// @Summary Calendar month grid
// @Description Weeks starting on Sunday; every cell carries its bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.MonthGridResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/grid [get]
func (h *BookingHandler) MonthGrid(c *gin.Context) {
	var query reqdto.MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	grid, err := h.q.MonthGrid(c.Request.Context(), query.Year, time.Month(query.Month))
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMonthGridView(grid))
}

// @Summary Quote duration and price
// @Description Runs the calculator over the current catalog without saving anything
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.QuoteRequest true "Selection"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quote, err := h.q.Quote(c.Request.Context(), req.ServiceIDs, req.StartTime)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(quote))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(b))
}

// @Summary Create booking
// @Description End time and total price are computed from the catalog
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking"
// @Success 201 {object} createdResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req, actorID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	respondCreated(c, "/api/bookings", id)
}

// @Summary Update booking
// @Description Partial update; changing services or start recomputes end time and price
// @Tags bookings
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingRequest true "Changes"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
