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

// SaleOrderService handles sale order business operations. Creating an
// order is the committing transition: product quantities are
// decremented and ledger movements appended in the same transaction
// that persists the order. A sale that would drive any product
// negative fails atomically and nothing is persisted.
type SaleOrderService struct {
	orderRepo      trade.SaleOrderRepository
	txScope        appinventory.TransactionScope
	ledger         *inventory.Ledger
	eventPublisher shared.EventPublisher
}

// NewSaleOrderService creates a new SaleOrderService
func NewSaleOrderService(
	orderRepo trade.SaleOrderRepository,
	txScope appinventory.TransactionScope,
) *SaleOrderService {
	return &SaleOrderService{
		orderRepo: orderRepo,
		txScope:   txScope,
		ledger:    inventory.NewLedger(),
	}
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *SaleOrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a sale order and reserves its stock. When the request
// carries a received amount, payment is taken in the same call.
func (s *SaleOrderService) Create(ctx context.Context, req CreateSaleOrderRequest) (*SaleOrderResponse, error) {
	paymentMethod := trade.PaymentMethod(req.PaymentMethod)
	if !paymentMethod.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}

	var response SaleOrderResponse
	var events []shared.DomainEvent

	err := s.txScope.Execute(ctx, func(repos appinventory.TransactionalRepositories) error {
		orderNumber, err := repos.SaleOrderRepo().GenerateOrderNumber(ctx)
		if err != nil {
			return err
		}

		order, err := trade.NewSaleOrder(orderNumber, req.Customer, req.OperatorID, paymentMethod)
		if err != nil {
			return err
		}

		for _, input := range req.Items {
			product, err := repos.ProductRepo().FindByCodeForUpdate(ctx, input.ProductCode)
			if err != nil {
				return err
			}

			if _, err := order.AddItem(
				product.ID,
				product.Code,
				product.Name,
				input.Quantity,
				product.GetSalePriceMoney(),
				input.DiscountRate,
			); err != nil {
				return err
			}

			movement, err := s.ledger.Adjust(
				product,
				-input.Quantity,
				inventory.MovementKindSale,
				req.OperatorID,
				orderNumber,
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

		if req.OrderDiscount != nil {
			if err := order.ApplyDiscount(valueobject.NewMoneyUSD(*req.OrderDiscount)); err != nil {
				return err
			}
		}

		if req.ReceivedAmount != nil {
			if err := order.Pay(valueobject.NewMoneyUSD(*req.ReceivedAmount), req.OperatorID); err != nil {
				return err
			}
		}

		if err := repos.SaleOrderRepo().Save(ctx, order); err != nil {
			return err
		}

		events = append(events, order.GetDomainEvents()...)
		order.ClearDomainEvents()

		response = ToSaleOrderResponse(order)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Events are published only after the transaction has committed
	s.publishEvents(ctx, events)

	return &response, nil
}

// GetByID retrieves a sale order by ID
func (s *SaleOrderService) GetByID(ctx context.Context, orderID uuid.UUID) (*SaleOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToSaleOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves a sale order by order number
func (s *SaleOrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*SaleOrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToSaleOrderResponse(order)
	return &response, nil
}

// List retrieves sale orders with filtering and pagination
func (s *SaleOrderService) List(ctx context.Context, filter OrderListFilter) ([]SaleOrderResponse, int64, error) {
	domainFilter := buildOrderFilter(filter)

	orders, err := s.orderRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSaleOrderResponses(orders), total, nil
}

// Pay records payment against a pending sale order. Non-cash methods
// require exact tender; cash may overpay and yields change.
func (s *SaleOrderService) Pay(ctx context.Context, orderID uuid.UUID, req PaySaleOrderRequest) (*SaleOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Pay(valueobject.NewMoneyUSD(req.ReceivedAmount), req.OperatorID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order.GetDomainEvents())
	order.ClearDomainEvents()

	response := ToSaleOrderResponse(order)
	return &response, nil
}

// Complete completes a paid sale order. Stock was already decremented
// at creation, so completion only finalizes the status.
func (s *SaleOrderService) Complete(ctx context.Context, orderID uuid.UUID, req OrderActionRequest) (*SaleOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Complete(req.OperatorID); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	response := ToSaleOrderResponse(order)
	return &response, nil
}

// Cancel cancels a sale order. Cancellation does not restock; returned
// goods re-enter stock only through a completed return order.
func (s *SaleOrderService) Cancel(ctx context.Context, orderID uuid.UUID, req CancelOrderRequest) (*SaleOrderResponse, error) {
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

	response := ToSaleOrderResponse(order)
	return &response, nil
}

func (s *SaleOrderService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if s.eventPublisher == nil || len(events) == 0 {
		return
	}
	// Errors are logged by the event bus, not propagated
	_ = s.eventPublisher.Publish(ctx, events...)
}
