package trade

import (
	"context"

	appinventory "github.com/retail/backend/internal/application/inventory"
	"github.com/retail/backend/internal/domain/catalog"
	"github.com/retail/backend/internal/domain/inventory"
	"github.com/retail/backend/internal/domain/shared"
	"github.com/retail/backend/internal/domain/shared/valueobject"
	"github.com/retail/backend/internal/domain/trade"
	"github.com/google/uuid"
)

// PurchaseOrderService handles purchase order business operations.
// Completing an order is the only operation that touches stock: it
// increases product quantities and appends the matching ledger
// movements inside one transaction.
type PurchaseOrderService struct {
	orderRepo      trade.PurchaseOrderRepository
	productRepo    catalog.ProductRepository
	txScope        appinventory.TransactionScope
	ledger         *inventory.Ledger
	eventPublisher shared.EventPublisher
}

// NewPurchaseOrderService creates a new PurchaseOrderService
func NewPurchaseOrderService(
	orderRepo trade.PurchaseOrderRepository,
	productRepo catalog.ProductRepository,
	txScope appinventory.TransactionScope,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txScope:     txScope,
		ledger:      inventory.NewLedger(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *PurchaseOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new purchase order in PENDING status. Stock is not
// affected until the order is completed.
func (s *PurchaseOrderService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	orderNumber, err := s.orderRepo.GenerateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order, err := trade.NewPurchaseOrder(orderNumber, req.SupplierID, req.OperatorID, req.TaxRate)
	if err != nil {
		return nil, err
	}

	for _, input := range req.Items {
		product, err := s.productRepo.FindByCode(ctx, input.ProductCode)
		if err != nil {
			return nil, err
		}

		price := product.GetPurchasePriceMoney()
		if input.PurchasePrice != nil {
			price = valueobject.NewMoneyUSD(*input.PurchasePrice)
		}

		item, err := order.AddItem(product.ID, product.Code, product.Name, input.Quantity, price)
		if err != nil {
			return nil, err
		}
		if input.BatchNumber != "" || input.ExpiryDate != nil {
			item.SetBatch(input.BatchNumber, input.ExpiryDate)
		}
	}

	if req.Remark != "" {
		order.SetRemark(req.Remark)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves a purchase order by order number
func (s *PurchaseOrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseOrderService) List(ctx context.Context, filter OrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	domainFilter := buildOrderFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaseOrderResponses(orders), total, nil
}

// AddItem adds an item to a pending purchase order
func (s *PurchaseOrderService) AddItem(ctx context.Context, orderID uuid.UUID, req AddPurchaseOrderItemRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByCode(ctx, req.ProductCode)
	if err != nil {
		return nil, err
	}

	price := product.GetPurchasePriceMoney()
	if req.PurchasePrice != nil {
		price = valueobject.NewMoneyUSD(*req.PurchasePrice)
	}

	item, err := order.AddItem(product.ID, product.Code, product.Name, req.Quantity, price)
	if err != nil {
		return nil, err
	}
	if req.BatchNumber != "" || req.ExpiryDate != nil {
		item.SetBatch(req.BatchNumber, req.ExpiryDate)
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// UpdateItemQuantity changes an item quantity on a pending purchase order
func (s *PurchaseOrderService) UpdateItemQuantity(ctx context.Context, orderID, itemID uuid.UUID, req UpdateOrderItemRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.UpdateItemQuantity(itemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// RemoveItem removes an item from a pending purchase order
func (s *PurchaseOrderService) RemoveItem(ctx context.Context, orderID, itemID uuid.UUID) (*PurchaseOrderResponse, error) {
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

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Approve approves a pending purchase order
func (s *PurchaseOrderService) Approve(ctx context.Context, orderID uuid.UUID, req OrderActionRequest) (*PurchaseOrderResponse, error) {
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

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// MarkDelivered marks goods as delivered for an approved purchase order
func (s *PurchaseOrderService) MarkDelivered(ctx context.Context, orderID uuid.UUID, req OrderActionRequest) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.MarkDelivered(req.OperatorID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Complete completes a purchase order and receives its stock. The
// status change, product quantity increases and ledger movements are
// committed atomically; a repeated completion fails before any stock
// is touched.
func (s *PurchaseOrderService) Complete(ctx context.Context, orderID uuid.UUID, req CompleteOrderRequest) (*PurchaseOrderResponse, error) {
	var response PurchaseOrderResponse
	var events []shared.DomainEvent

	err := s.txScope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		order, err := repos.PurchaseOrderRepo().FindByID(ctx, orderID)
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
				inventory.MovementKindPurchase,
				req.OperatorID,
				order.OrderNumber,
				&item.PurchasePrice,
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

		if err := repos.PurchaseOrderRepo().Save(ctx, order); err != nil {
			return err
		}

		events = append(events, order.GetDomainEvents()...)
		order.ClearDomainEvents()

		response = ToPurchaseOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Events are published only after the transaction has committed
	s.publishEvents(ctx, events)

	return &response, nil
}

// Cancel cancels a purchase order. Cancellation never touches stock
// because purchase stock is received only on completion.
func (s *PurchaseOrderService) Cancel(ctx context.Context, orderID uuid.UUID, req CancelOrderRequest) (*PurchaseOrderResponse, error) {
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

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Transition moves a purchase order to the target status through the
// generic transition path. Completion is rejected here; it must go
// through Complete so stock is received.
func (s *PurchaseOrderService) Transition(ctx context.Context, orderID uuid.UUID, req TransitionOrderRequest) (*PurchaseOrderResponse, error) {
	target := trade.PurchaseOrderStatus(req.Status)
	if !target.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Unknown purchase order status")
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.TransitionTo(target, req.OperatorID, req.Reason); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

func (s *PurchaseOrderService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	// Errors are logged by the event bus, not propagated
	_ = s.eventPublisher.Publish(ctx, events...)
}
