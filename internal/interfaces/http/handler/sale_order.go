package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apptrade "github.com/retail/backend/internal/application/trade"
)

// SaleOrderHandler exposes sale order operations over HTTP.
type SaleOrderHandler struct {
	BaseHandler
	service *apptrade.SaleOrderService
}

func NewSaleOrderHandler(service *apptrade.SaleOrderService) *SaleOrderHandler {
	return &SaleOrderHandler{service: service}
}

// RegisterRoutes mounts sale order routes on the given group.
func (h *SaleOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/sale-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/number/:number", h.GetByOrderNumber)
		orders.GET("/:id", h.GetByID)
		orders.POST("/:id/pay", h.Pay)
		orders.POST("/:id/complete", h.Complete)
		orders.POST("/:id/cancel", h.Cancel)
	}
}

func (h *SaleOrderHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return uuid.Nil, false
	}
	return id, true
}

// Create opens a sale order and reserves stock for its lines.
func (h *SaleOrderHandler) Create(c *gin.Context) {
	var req apptrade.CreateSaleOrderRequest
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

// List returns a paginated sale order listing.
func (h *SaleOrderHandler) List(c *gin.Context) {
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

// GetByID returns a sale order by its identifier.
func (h *SaleOrderHandler) GetByID(c *gin.Context) {
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

// GetByOrderNumber returns a sale order by its order number.
func (h *SaleOrderHandler) GetByOrderNumber(c *gin.Context) {
	order, err := h.service.GetByOrderNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Pay records a payment against a pending sale order.
func (h *SaleOrderHandler) Pay(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req apptrade.PaySaleOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}

	order, err := h.service.Pay(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}

// Complete finalizes a paid sale order.
func (h *SaleOrderHandler) Complete(c *gin.Context) {
	id, ok := h.orderID(c)
	if !ok {
		return
	}

	var req apptrade.OrderActionRequest
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

// Cancel aborts a sale order and releases its reserved stock.
func (h *SaleOrderHandler) Cancel(c *gin.Context) {
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
