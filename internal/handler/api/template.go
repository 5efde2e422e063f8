package api

import (
	"net/http"

	reqdto "grooming-salon/internal/handler/dto/request"
	resdto "grooming-salon/internal/handler/dto/response"
	"grooming-salon/internal/handler/httperr"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TemplateHandler struct {
	cmds      commands.TemplateCommands
	reminders commands.ReminderCommands
	q         queries.TemplateQueries
}

func NewTemplateHandler(cmds commands.TemplateCommands, reminders commands.ReminderCommands, q queries.TemplateQueries) *TemplateHandler {
	return &TemplateHandler{cmds: cmds, reminders: reminders, q: q}
}

// @Summary List notification templates
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TemplateResponse
// @Router /templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateViews(templates))
}

// @Summary Get notification template
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 200 {object} resdto.TemplateResponse
// @Failure 404 {object} httperr.Response
// @Router /templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	t, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTemplateView(t))
}

// @Summary Create notification template
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.TemplateRequest true "Template"
// @Success 201 {object} createdResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req reqdto.TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	respondCreated(c, "/api/templates", id)
}

// @Summary Update notification template
// @Tags templates
// @Accept json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body reqdto.TemplateRequest true "Template"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /templates/{id} [put]
func (h *TemplateHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.TemplateRequest
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

// @Summary Delete notification template
// @Tags templates
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
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

// @Summary Preview a template against a booking
// @Tags templates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Param request body reqdto.PreviewRequest true "Booking to render with"
// @Success 200 {object} queries.PreviewView
// @Failure 404 {object} httperr.Response
// @Router /templates/{id}/preview [post]
func (h *TemplateHandler) Preview(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	preview, err := h.q.Preview(c.Request.Context(), id, req.BookingID)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// @Summary Send tomorrow's reminders now
// @Tags templates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} commands.ReminderResult
// @Failure 404 {object} httperr.Response
// @Router /reminders/send [post]
func (h *TemplateHandler) SendReminders(c *gin.Context) {
	result, err := h.reminders.SendReminders(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
