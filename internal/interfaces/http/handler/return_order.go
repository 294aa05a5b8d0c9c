package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apptrade "github.com/retail/backend/internal/application/trade"
)

// ReturnOrderHandler exposes return order operations over HTTP.
type ReturnOrderHandler struct {
	BaseHandler
	service *apptrade.ReturnOrderService
}

func NewReturnOrderHandler(service *apptrade.ReturnOrderService) *ReturnOrderHandler {
	return &ReturnOrderHandler{service: service}
}

// RegisterRoutes mounts return order routes on the given group.
func (h *ReturnOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/return-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/number/:number", h.GetByReturnNumber)
		orders.GET("/:id", h.GetByID)
		orders.PUT("/:id/items/:itemId", h.UpdateItemQuantity)
		orders.DELETE("/:id/items/:itemId", h.RemoveItem)
		orders.POST("/:id/approve", h.Approve)
		orders.POST("/:id/complete", h.Complete)
		orders.POST("/:id/cancel", h.Cancel)
	}
}

func (h *ReturnOrderHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create opens a return order against a completed sale.
func (h *ReturnOrderHandler) Create(c *gin.Context) {
	var req apptrade.CreateReturnOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// List returns a paginated return order listing.
func (h *ReturnOrderHandler) List(c *gin.Context) {
	var filter apptrade.OrderListFilter
	if !h.BindQuery(c, &filter) {
		return
	}

	orders, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// GetByID returns a return order by its identifier.
func (h *ReturnOrderHandler) GetByID(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	order, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// GetByReturnNumber returns a return order by its return number.
func (h *ReturnOrderHandler) GetByReturnNumber(c *gin.Context) {
	order, err := h.service.GetByReturnNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateItemQuantity changes the quantity of a pending return line.
func (h *ReturnOrderHandler) UpdateItemQuantity(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req apptrade.UpdateOrderItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.UpdateItemQuantity(c.Request.Context(), id, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// RemoveItem deletes a line from a pending return order.
func (h *ReturnOrderHandler) RemoveItem(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}
	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	order, err := h.service.RemoveItem(c.Request.Context(), id, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Approve moves a requested return to APPROVED.
func (h *ReturnOrderHandler) Approve(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req apptrade.OrderActionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.Approve(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Complete finalizes an approved return and books the stock back in.
func (h *ReturnOrderHandler) Complete(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req apptrade.CompleteOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.Complete(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Cancel aborts a return order before completion.
func (h *ReturnOrderHandler) Cancel(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req apptrade.CancelOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.Cancel(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
