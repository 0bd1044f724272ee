package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/config"
	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/internal/messaging"
	customersvc "github.com/tia-rosa/pos/internal/service/customer"
	"github.com/tia-rosa/pos/pkg/fault"
)

var tracer = otel.Tracer("github.com/tia-rosa/pos/service/order")

// Store is the persistence port for orders. Create must write the order
// header and all of its lines atomically.
type Store interface {
	Create(ctx context.Context, order *entity.Order) error
	History(ctx context.Context) ([]entity.Order, error)
	SalesByCustomer(ctx context.Context) ([]CustomerSales, error)
}

// CustomerDirectory resolves customers during order placement.
type CustomerDirectory interface {
	ByID(ctx context.Context, id string) (*entity.Customer, error)
}

// CustomerSales is one row of the sales report: per-customer order count and
// spend, inner-joined with the customer name.
type CustomerSales struct {
	CustomerID   string  `bun:"customer_id"`
	CustomerName string  `bun:"customer_name"`
	OrderCount   int     `bun:"order_count"`
	TotalSpent   float64 `bun:"total_spent"`
}

// Service turns captured carts into persisted orders and serves the
// read-only reporting queries.
type Service struct {
	store     Store
	customers CustomerDirectory
	logger    *zap.Logger
	publisher messaging.Client
	publish   bool
}

// Params collects Service dependencies from Fx.
type Params struct {
	fx.In

	Store     Store
	Customers CustomerDirectory
	Config    config.Config
	Logger    *zap.Logger
	Publisher messaging.Client
}

// NewService wires an order Service.
func NewService(p Params) *Service {
	return &Service{
		store:     p.Store,
		customers: p.Customers,
		logger:    p.Logger,
		publisher: p.Publisher,
		publish:   p.Config.Messaging.Enabled,
	}
}

// PlaceOrder persists a non-empty cart for an existing customer. The total
// is the sum of the cart subtotals; the header and every line commit in one
// transaction, so a failed write leaves no partial order behind.
func (s *Service) PlaceOrder(ctx context.Context, customerID string, cart Cart) (*entity.Order, error) {
	customerID = strings.TrimSpace(customerID)
	if len(cart) == 0 {
		return nil, fault.InvalidInput("cart is empty")
	}
	for _, item := range cart {
		if item.Quantity <= 0 {
			return nil, fault.InvalidInput(fmt.Sprintf("quantity for %q must be positive", item.Name))
		}
		if item.UnitPrice < 0 {
			return nil, fault.InvalidInput(fmt.Sprintf("unit price for %q must be non-negative", item.Name))
		}
	}

	ctx, span := tracer.Start(ctx, "OrderService.PlaceOrder", trace.WithAttributes(
		attribute.String("customer.id", customerID),
		attribute.Int("cart.items", len(cart)),
	))
	defer span.End()

	if _, err := s.customers.ByID(ctx, customerID); err != nil {
		if errors.Is(err, customersvc.ErrNotFound) {
			span.SetStatus(codes.Error, "customer not found")
			return nil, fault.NotFound("customer not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to load customer", fault.WithCause(err))
	}

	placed := &entity.Order{
		CustomerID: customerID,
		Total:      cart.Total(),
		CreatedAt:  time.Now().UTC(),
	}
	for _, item := range cart {
		placed.Lines = append(placed.Lines, &entity.OrderLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if err := s.store.Create(ctx, placed); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to save order", fault.WithCause(err))
	}

	s.logger.Info("order placed",
		zap.Int64("id", placed.ID),
		zap.String("customer_id", placed.CustomerID),
		zap.Float64("total", placed.Total),
		zap.Int("lines", len(placed.Lines)),
	)

	s.publishOrderPlaced(ctx, placed)
	return placed, nil
}

// History returns all orders, most recent first, with resolved line items.
func (s *Service) History(ctx context.Context) ([]entity.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.History")
	defer span.End()

	orders, err := s.store.History(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to list orders", fault.WithCause(err))
	}
	return orders, nil
}

// SalesReport aggregates orders per customer, highest spend first.
// Customers with no orders are excluded.
func (s *Service) SalesReport(ctx context.Context) ([]CustomerSales, error) {
	ctx, span := tracer.Start(ctx, "OrderService.SalesReport")
	defer span.End()

	rows, err := s.store.SalesByCustomer(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to build sales report", fault.WithCause(err))
	}
	return rows, nil
}

func (s *Service) publishOrderPlaced(ctx context.Context, placed *entity.Order) {
	if !s.publish || s.publisher == nil {
		return
	}

	event := OrderPlacedEvent{
		ID:         placed.ID,
		CustomerID: placed.CustomerID,
		Total:      placed.Total,
		Lines:      len(placed.Lines),
		CreatedAt:  placed.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal order placed", zap.Error(err))
		return
	}
	key := []byte(fmt.Sprintf("order-%d", placed.ID))
	if err := s.publisher.Publish(ctx, key, payload); err != nil {
		s.logger.Error("publish order placed", zap.Error(err))
	}
}

// OrderPlacedEvent is emitted after an order commits.
type OrderPlacedEvent struct {
	ID         int64     `json:"id"`
	CustomerID string    `json:"customer_id"`
	Total      float64   `json:"total"`
	Lines      int       `json:"lines"`
	CreatedAt  time.Time `json:"created_at"`
}
