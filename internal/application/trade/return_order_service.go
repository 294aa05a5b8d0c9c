package trade

import (
	"context"

	appinventory "github.com/retail/backend/internal/application/inventory"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/retail/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// ReturnOrderService handles return order business operations. Returns
// are the only path that puts sold goods back into stock; restocking
// happens on completion, atomically with the status change and the
// ledger movements.
type ReturnOrderService struct {
	orderRepo      trade.ReturnOrderRepository
	saleOrderRepo  trade.SaleOrderRepository
	txScope        appinventory.TransactionScope
	ledger         *inventory.Ledger
	eventPublisher shared.EventPublisher
}

// NewReturnOrderService creates a new ReturnOrderService
func NewReturnOrderService(
	orderRepo trade.ReturnOrderRepository,
	saleOrderRepo trade.SaleOrderRepository,
	txScope appinventory.TransactionScope,
) *ReturnOrderService {
	return &ReturnOrderService{
		orderRepo:     orderRepo,
		saleOrderRepo: saleOrderRepo,
		txScope:       txScope,
		ledger:        inventory.NewLedger(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *ReturnOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a return order against a completed sale order. Each
// returned item must appear on the original sale and may not exceed
// the sold quantity; the refund per unit is the effective sale price
// the customer paid.
func (s *ReturnOrderService) Create(ctx context.Context, req CreateReturnOrderRequest) (*ReturnOrderResponse, error) {
	saleOrder, err := s.saleOrderRepo.FindByOrderNumber(ctx, req.SaleOrderNumber)
	if err != nil {
		return nil, err
	}
	if saleOrder.Status != trade.SaleOrderStatusCompleted {
		return nil, shared.NewDomainError("INVALID_SALE_ORDER", "Returns are only accepted against completed sale orders")
	}

	returnNumber, err := s.orderRepo.GenerateReturnNumber(ctx)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewReturnOrder(returnNumber, saleOrder.OrderNumber, req.OperatorID, req.Reason)
	if err != nil {
		return nil, err
	}

	alreadyReturned, err := s.returnedQuantities(ctx, saleOrder.OrderNumber, uuid.Nil)
	if err != nil {
		return nil, err
	}

	for _, input := range req.Items {
		soldItem := saleOrder.GetItemByProductCode(input.ProductCode)
		if soldItem == nil {
			return nil, shared.NewDomainError("INVALID_RETURN_ITEM", "Product was not part of the original sale")
		}
		if input.Quantity+alreadyReturned[input.ProductCode] > soldItem.Quantity {
			return nil, shared.NewDomainError("INVALID_RETURN_ITEM", "Return quantity exceeds sold quantity")
		}

		returnPrice := valueobject.NewMoneyUSD(soldItem.SalePrice)
		if _, err := order.AddItem(
			soldItem.ProductID,
			soldItem.ProductCode,
			soldItem.ProductName,
			input.Quantity,
			returnPrice,
			input.Reason,
		); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	response := ToReturnOrderResponse(order)
	return &response, nil
}

// returnedQuantities sums, per product code, the quantities already
// claimed by other returns against the same sale order. Cancelled
// returns do not count; excludeID skips the return being edited.
func (s *ReturnOrderService) returnedQuantities(ctx context.Context, saleOrderNumber string, excludeID uuid.UUID) (map[string]int64, error) {
	orders, err := s.orderRepo.FindAll(ctx, shared.Filter{
		Page:     1,
		PageSize: 1000,
		Filters:  map[string]interface{}{"sale_order_number": saleOrderNumber},
	})
	if err != nil {
		return nil, err
	}

	claimed := make(map[string]int64)
	for i := range orders {
		order := &orders[i]
		if order.ID == excludeID || order.Status == trade.ReturnOrderStatusCancelled {
			continue
		}
		for _, item := range order.Items {
			claimed[item.ProductCode] += item.Quantity
		}
	}
	return claimed, nil
}

// GetByID retrieves a return order by ID
func (s *ReturnOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*ReturnOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToReturnOrderResponse(order)
	return &response, nil
}

// GetByReturnNumber retrieves a return order by return number
func (s *ReturnOrderService) GetByReturnNumber(ctx context.Context, returnNumber string) (*ReturnOrderResponse, error) {
	order, err := s.orderRepo.FindByReturnNumber(ctx, returnNumber)
	if err != nil {
		return nil, err
	}
	response := ToReturnOrderResponse(order)
	return &response, nil
}

// List retrieves return orders with filtering and pagination
func (s *ReturnOrderService) List(ctx context.Context, filter OrderListFilter) ([]ReturnOrderResponse, int64, error) {
	domainFilter := buildOrderFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToReturnOrderResponses(orders), total, nil
}

// UpdateItemQuantity changes the quantity of a pending return line. The
// new quantity is re-checked against the quantity sold on the original
// sale order.
func (s *ReturnOrderService) UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, req UpdateOrderItemRequest) (*ReturnOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var productCode string
	for i := range order.Items {
		if order.Items[i].ID == itemID {
			productCode = order.Items[i].ProductCode
			break
		}
	}
	if productCode == "" {
		return nil, shared.NewDomainError("ITEM_NOT_FOUND", "Order item not found")
	}

	saleOrder, err := s.saleOrderRepo.FindByOrderNumber(ctx, order.SaleOrderNumber)
	if err != nil {
		return nil, err
	}
	soldItem := saleOrder.GetItemByProductCode(productCode)
	if soldItem == nil {
		return nil, shared.NewDomainError("INVALID_RETURN_ITEM", "Return quantity exceeds sold quantity")
	}

	alreadyReturned, err := s.returnedQuantities(ctx, saleOrder.OrderNumber, order.ID)
	if err != nil {
		return nil, err
	}
	if req.Quantity+alreadyReturned[productCode] > soldItem.Quantity {
		return nil, shared.NewDomainError("INVALID_RETURN_ITEM", "Return quantity exceeds sold quantity")
	}

	if err := order.UpdateItemQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToReturnOrderResponse(order)
	return &response, nil
}

// RemoveItem deletes a line from a pending return order
func (s *ReturnOrderService) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*ReturnOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.RemoveItem(itemID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToReturnOrderResponse(order)
	return &response, nil
}

// Approve approves a pending return order
func (s *ReturnOrderService) Approve(ctx context.Context, orderID uuid.UUID, req OrderActionRequest) (*ReturnOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Approve(req.OperatorID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToReturnOrderResponse(order)
	return &response, nil
}

// Complete completes a return order and restocks the returned goods.
// The status change, product quantity increases and ledger movements
// are committed atomically; a repeated completion fails before any
// stock is touched.
func (s *ReturnOrderService) Complete(ctx context.Context, orderID uuid.UUID, req CompleteOrderRequest) (*ReturnOrderResponse, error) {
	var response ReturnOrderResponse
	var events []shared.DomainEvent

	err := s.txScope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		order, err := repos.ReturnOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := order.Complete(req.OperatorID); err != nil {
			return err
		}

		for i := range order.Items {
			item := &order.Items[i]

			product, err := repos.ProductRepo().FindByCodeForUpdate(ctx, item.ProductCode)
			if err != nil {
				return err
			}

			movement, err := s.ledger.Adjust(
				product,
				item.Quantity,
				inventory.MovementKindReturn,
				req.OperatorID,
				order.ReturnNumber,
				nil,
			)
			if err != nil {
				return err
			}

			if err := repos.MovementRepo().Append(ctx, movement); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}

			events = append(events, product.GetDomainEvents()...)
			product.ClearDomainEvents()
		}

		if err := repos.ReturnOrderRepo().Save(ctx, order); err != nil {
			return err
		}

		events = append(events, order.GetDomainEvents()...)
		order.ClearDomainEvents()

		response = ToReturnOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Events are published only after the transaction has committed
	s.publishEvents(ctx, events)

	return &response, nil
}

// Cancel cancels a return order
func (s *ReturnOrderService) Cancel(ctx context.Context, orderID uuid.UUID, req CancelOrderRequest) (*ReturnOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Cancel(req.OperatorID, req.Reason); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToReturnOrderResponse(order)
	return &response, nil
}

func (s *ReturnOrderService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	// Errors are logged by the event bus, not propagated
	_ = s.eventPublisher.Publish(ctx, events...)
}
