package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apptrade "github.com/retail/backend/internal/application/trade"
)

// PurchaseOrderHandler exposes purchase order operations over HTTP.
type PurchaseOrderHandler struct {
	BaseHandler
	service *apptrade.PurchaseOrderService
}

func NewPurchaseOrderHandler(service *apptrade.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: service}
}

// RegisterRoutes mounts purchase order routes on the given group.
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/number/:number", h.GetByOrderNumber)
		orders.GET("/:id", h.GetByID)
		orders.POST("/:id/items", h.AddItem)
		orders.PUT("/:id/items/:itemId", h.UpdateItemQuantity)
		orders.DELETE("/:id/items/:itemId", h.RemoveItem)
		orders.POST("/:id/approve", h.Approve)
		orders.POST("/:id/deliver", h.MarkDelivered)
		orders.POST("/:id/complete", h.Complete)
		orders.POST("/:id/cancel", h.Cancel)
		orders.POST("/:id/transition", h.Transition)
	}
}

func (h *PurchaseOrderHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create drafts a new purchase order.
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	var req apptrade.CreatePurchaseOrderRequest
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

// List returns a paginated purchase order listing.
func (h *PurchaseOrderHandler) List(c *gin.Context) {
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

// GetByID returns a purchase order by its identifier.
func (h *PurchaseOrderHandler) GetByID(c *gin.Context) {
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

// GetByOrderNumber returns a purchase order by its order number.
func (h *PurchaseOrderHandler) GetByOrderNumber(c *gin.Context) {
	order, err := h.service.GetByOrderNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// AddItem appends a line to a draft purchase order.
func (h *PurchaseOrderHandler) AddItem(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req apptrade.AddPurchaseOrderItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.AddItem(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// UpdateItemQuantity changes the quantity of a draft order line.
func (h *PurchaseOrderHandler) UpdateItemQuantity(c *gin.Context) {
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

// RemoveItem deletes a line from a draft purchase order.
func (h *PurchaseOrderHandler) RemoveItem(c *gin.Context) {
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

// Approve moves a draft order to APPROVED.
func (h *PurchaseOrderHandler) Approve(c *gin.Context) {
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

// MarkDelivered moves an approved order to DELIVERED.
func (h *PurchaseOrderHandler) MarkDelivered(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req apptrade.OrderActionRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.MarkDelivered(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Complete finalizes a delivered order and books the stock intake.
func (h *PurchaseOrderHandler) Complete(c *gin.Context) {
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

// Cancel aborts an order that has not been completed.
func (h *PurchaseOrderHandler) Cancel(c *gin.Context) {
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

// Transition applies a named status transition to the order.
func (h *PurchaseOrderHandler) Transition(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req apptrade.TransitionOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.Transition(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
