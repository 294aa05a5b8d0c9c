package handler

import (
	"github.com/gin-gonic/gin"

	appinventory "github.com/retail/backend/internal/application/inventory"
)

// InventoryHandler exposes the stock movement ledger over HTTP.
type InventoryHandler struct {
	BaseHandler
	service *appinventory.LedgerService
}

func NewInventoryHandler(service *appinventory.LedgerService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

// RegisterRoutes mounts inventory routes on the given group.
func (h *InventoryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory")
	{
		inventory.GET("/movements", h.History)
		inventory.GET("/movements/order/:number", h.HistoryForOrder)
	}
}

// History returns the paginated stock movement ledger.
func (h *InventoryHandler) History(c *gin.Context) {
	var filter appinventory.MovementListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	movements, total, err := h.service.History(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, movements, total, filter.Page, filter.PageSize)
}

// HistoryForOrder returns all movements booked by a single order.
func (h *InventoryHandler) HistoryForOrder(c *gin.Context) {
	movements, err := h.service.HistoryForOrder(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, movements)
}
