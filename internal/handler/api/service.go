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

type ServiceHandler struct {
	cmds commands.ServiceCommands
	q    queries.ServiceQueries
}

func NewServiceHandler(cmds commands.ServiceCommands, q queries.ServiceQueries) *ServiceHandler {
	return &ServiceHandler{cmds: cmds, q: q}
}

// @Summary List services
// @Description Catalog ordered by name
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceResponse
// @Router /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(services))
}

// @Summary Get service
// @Tags services
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [get]
func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceView(s))
}

// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} createdResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	respondCreated(c, "/api/services", id)
}

// @Summary Update service
// @Tags services
// @Accept json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /services/{id} [put]
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.ServiceRequest
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

// @Summary Delete service
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /services/{id} [delete]
func (h *ServiceHandler) Delete(c *gin.Context) {
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
