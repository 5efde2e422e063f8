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

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary List customers
// @Description Newest first, keyset paginated
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param after query string false "Cursor from the previous page"
// @Param limit query int false "Page size (max 200)"
// @Success 200 {object} resdto.CustomerListResponse
// @Failure 400 {object} httperr.Response
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var query reqdto.CustomerListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	customers, next, err := h.q.List(c.Request.Context(), query.Cursor(), query.Limit)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewCustomerListResponse(customers, next))
}

// @Summary Search customers
// @Description Case-insensitive match on guardian or pet name, at most 10 rows
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param q query string true "Search term"
// @Success 200 {array} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Router /customers/search [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	var query reqdto.CustomerSearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	customers, err := h.q.Search(c.Request.Context(), query.Q)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerViews(customers))
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cust, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(cust))
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Customer"
// @Success 201 {object} createdResponse
// @Failure 400 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	respondCreated(c, "/api/customers", id)
}

// @Summary Update customer
// @Description Partial update; omitted fields are kept
// @Tags customers
// @Accept json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Changes"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.UpdateCustomerRequest
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

// @Summary Delete customer
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
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
