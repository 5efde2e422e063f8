package api

import (
	"log/slog"
	"net/http"
	"net/url"

	reqdto "grooming-salon/internal/handler/dto/request"
	"grooming-salon/internal/handler/httperr"
	"grooming-salon/internal/usecase/commands"
	"grooming-salon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const exportKeyHeader = "X-Export-Key"

type RevenueHandler struct {
	q      queries.RevenueQueries
	export commands.ExportCommands
}

func NewRevenueHandler(q queries.RevenueQueries, export commands.ExportCommands) *RevenueHandler {
	return &RevenueHandler{q: q, export: export}
}

// @Summary Revenue report
// @Description Completed bookings only. A preset wins over start/end; no parameters means this month.
// @Tags revenue
// @Produce json
// @Security BearerAuth
// @Param period query string false "today, yesterday, last7days, last30days, thisMonth, lastMonth"
// @Param start query string false "Custom start date (YYYY-MM-DD)"
// @Param end query string false "Custom end date (YYYY-MM-DD)"
// @Success 200 {object} queries.RevenueReport
// @Failure 400 {object} httperr.Response
// @Router /revenue [get]
func (h *RevenueHandler) Report(c *gin.Context) {
	var query reqdto.RevenueQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	period, err := h.q.Period(query.Period, query.Start, query.End)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	report, err := h.q.Report(c.Request.Context(), period)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Export daily revenue as CSV
// @Description When archiving is configured the file is also stored and its key returned in X-Export-Key
// @Tags revenue
// @Produce text/csv
// @Security BearerAuth
// @Param period query string false "Preset name"
// @Param start query string false "Custom start date (YYYY-MM-DD)"
// @Param end query string false "Custom end date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Router /revenue/export [get]
func (h *RevenueHandler) Export(c *gin.Context) {
	var query reqdto.RevenueQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	period, err := h.q.Period(query.Period, query.Start, query.End)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}
	file, err := h.q.Export(c.Request.Context(), period)
	if err != nil {
		httperr.AbortWithUsecaseError(c, err)
		return
	}

	// the download still succeeds when archiving fails
	key, err := h.export.ArchiveRevenue(c.Request.Context(), file.FileName, file.Content)
	if err != nil {
		slog.Error("revenue export archive failed", "error", err, "file", file.FileName)
	} else if key != "" {
		c.Header(exportKeyHeader, key)
	}

	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.PathEscape(file.FileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", file.Content)
}
