package api

import (
	"net/http"

	reqdto "hotel-frontdesk/internal/handler/dto/request"
	resdto "hotel-frontdesk/internal/handler/dto/response"
	"hotel-frontdesk/internal/handler/httperr"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves rooms, extras, minibar items and hotel settings.
type CatalogHandler struct {
	cmds   commands.CatalogCommands
	q      queries.CatalogQueries
	ledger commands.StockLedger
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries, ledger commands.StockLedger) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q, ledger: ledger}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RoomResponse
// @Router /api/rooms [get]
func (h *CatalogHandler) ListRooms(c *gin.Context) {
	rooms, err := h.q.Rooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(rooms))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room code"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *CatalogHandler) GetRoom(c *gin.Context) {
	view, err := h.q.Room(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/rooms [post]
func (h *CatalogHandler) CreateRoom(c *gin.Context) {
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	view, err := h.cmds.CreateRoom(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room code"
// @Param request body reqdto.RoomRequest true "Room"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [put]
func (h *CatalogHandler) UpdateRoom(c *gin.Context) {
	var req reqdto.RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	view, err := h.cmds.UpdateRoom(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Delete room
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room code"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/rooms/{id} [delete]
func (h *CatalogHandler) DeleteRoom(c *gin.Context) {
	if err := h.cmds.DeleteRoom(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List extras
// @Tags extras
// @Produce json
// @Security BearerAuth
// @Param kind query string false "extra or service"
// @Success 200 {array} resdto.ExtraResponse
// @Router /api/extras [get]
func (h *CatalogHandler) ListExtras(c *gin.Context) {
	var q reqdto.ListExtrasQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	kind, err := q.ToKind()
	if err != nil {
		httperr.BadRequest(c, err)
		return
	}
	extras, err := h.q.Extras(c.Request.Context(), kind)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtraViews(extras))
}

// @Summary Get extra
// @Tags extras
// @Produce json
// @Security BearerAuth
// @Param id path string true "Extra ID"
// @Success 200 {object} resdto.ExtraResponse
// @Failure 404 {object} httperr.Response
// @Router /api/extras/{id} [get]
func (h *CatalogHandler) GetExtra(c *gin.Context) {
	view, err := h.q.Extra(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtraView(view))
}

// @Summary Create extra
// @Tags extras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ExtraRequest true "Extra"
// @Success 201 {object} resdto.ExtraResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/extras [post]
func (h *CatalogHandler) CreateExtra(c *gin.Context) {
	var req reqdto.ExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.CreateExtra(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromExtraView(view))
}

// @Summary Update extra
// @Tags extras
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Extra ID"
// @Param request body reqdto.ExtraRequest true "Extra"
// @Success 200 {object} resdto.ExtraResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/extras/{id} [put]
func (h *CatalogHandler) UpdateExtra(c *gin.Context) {
	var req reqdto.ExtraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.UpdateExtra(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromExtraView(view))
}

// @Summary Delete extra
// @Tags extras
// @Security BearerAuth
// @Param id path string true "Extra ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/extras/{id} [delete]
func (h *CatalogHandler) DeleteExtra(c *gin.Context) {
	if err := h.cmds.DeleteExtra(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List minibar items
// @Tags minibar
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.MinibarItemResponse
// @Router /api/minibar-items [get]
func (h *CatalogHandler) ListMinibarItems(c *gin.Context) {
	items, err := h.q.MinibarItems(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMinibarItemViews(items))
}

// @Summary Get minibar item
// @Tags minibar
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} resdto.MinibarItemResponse
// @Failure 404 {object} httperr.Response
// @Router /api/minibar-items/{id} [get]
func (h *CatalogHandler) GetMinibarItem(c *gin.Context) {
	view, err := h.q.MinibarItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMinibarItemView(view))
}

// @Summary Create minibar item
// @Tags minibar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MinibarItemRequest true "Item"
// @Success 201 {object} resdto.MinibarItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/minibar-items [post]
func (h *CatalogHandler) CreateMinibarItem(c *gin.Context) {
	var req reqdto.MinibarItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.CreateMinibarItem(c.Request.Context(), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMinibarItemView(view))
}

// @Summary Update minibar item
// @Description Stock is only overwritten when sent
// @Tags minibar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.MinibarItemRequest true "Item"
// @Success 200 {object} resdto.MinibarItemResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/minibar-items/{id} [put]
func (h *CatalogHandler) UpdateMinibarItem(c *gin.Context) {
	var req reqdto.MinibarItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	view, err := h.cmds.UpdateMinibarItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMinibarItemView(view))
}

// @Summary Delete minibar item
// @Tags minibar
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/minibar-items/{id} [delete]
func (h *CatalogHandler) DeleteMinibarItem(c *gin.Context) {
	if err := h.cmds.DeleteMinibarItem(c.Request.Context(), c.Param("id")); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Restock minibar item
// @Tags minibar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.RestockRequest true "Quantity"
// @Success 200 {object} resdto.StockLevelResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/minibar-items/{id}/restock [post]
func (h *CatalogHandler) Restock(c *gin.Context) {
	var req reqdto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	itemID := c.Param("id")
	stock, err := h.ledger.Restock(c.Request.Context(), itemID, req.Quantity)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StockLevelResponse{ItemID: itemID, Stock: stock})
}

// @Summary Hotel settings
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SettingsResponse
// @Router /api/settings [get]
func (h *CatalogHandler) GetSettings(c *gin.Context) {
	view, err := h.q.Settings(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}

// @Summary Save hotel settings
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SettingsRequest true "Settings"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} httperr.Response
// @Router /api/settings [put]
func (h *CatalogHandler) SaveSettings(c *gin.Context) {
	var req reqdto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err)
		return
	}
	view, err := h.cmds.SaveSettings(c.Request.Context(), req.ToDomain())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSettingsView(view))
}
