package api

import (
	"net/http"

	"hotel-frontdesk/internal/domain/minibar"
	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/handler/httperr"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	ledger commands.StockLedger
}

func NewStockHandler(ledger commands.StockLedger) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// @Summary Stock shortfalls
// @Description Minibar consumption that could not be taken out of stock at checkout
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending or resolved"
// @Success 200 {array} resdto.ShortfallResponse
// @Router /api/stock/shortfalls [get]
func (h *StockHandler) ListShortfalls(c *gin.Context) {
	var q reqdto.ListShortfallsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	views, err := h.ledger.ListShortfalls(c.Request.Context(), minibar.ShortfallStatus(q.Status))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if views == nil {
		views = []*queries.ShortfallView{}
	}
	c.JSON(http.StatusOK, resdto.FromShortfallViews(views))
}

// @Summary Reconcile stock
// @Description Retry pending shortfalls now instead of waiting for the schedule
// @Tags stock
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReconcileResponse
// @Router /api/stock/reconcile [post]
func (h *StockHandler) Reconcile(c *gin.Context) {
	report, err := h.ledger.Reconcile(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileReport(report))
}
