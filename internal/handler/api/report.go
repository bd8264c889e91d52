package api

import (
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/handler/httperr"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	q queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{q: q}
}

// @Summary Revenue report
// @Description Received payments for all time, the year, the month and today
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int false "Defaults to the current year"
// @Param month query int false "Defaults to the current month"
// @Success 200 {object} resdto.RevenueResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reports/revenue [get]
func (h *ReportHandler) Revenue(c *gin.Context) {
	var q reqdto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	report, err := h.q.Revenue(c.Request.Context(), q.Year, q.Month)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRevenueReport(report))
}

// @Summary Minibar sales report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param year query int false "Defaults to the current year"
// @Param month query int false "Defaults to the current month"
// @Param search query string false "Matches guest, reservation or item"
// @Success 200 {object} resdto.MinibarSalesResponse
// @Failure 400 {object} httperr.Response
// @Router /api/reports/minibar-sales [get]
func (h *ReportHandler) MinibarSales(c *gin.Context) {
	var q reqdto.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	report, err := h.q.MinibarSales(c.Request.Context(), q.Year, q.Month, q.Search)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMinibarSalesReport(report))
}
