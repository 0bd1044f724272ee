package customer

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/pkg/fault"
)

var tracer = otel.Tracer("github.com/tia-rosa/pos/service/customer")

// ErrNotFound is returned by Store implementations on a lookup miss.
var ErrNotFound = errors.New("customer not found")

// Store is the persistence port for customers.
type Store interface {
	ByID(ctx context.Context, id string) (*entity.Customer, error)
	Create(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context) ([]entity.Customer, error)
}

// Service exposes customer operations. Customers are created on first
// registration and immutable afterwards.
type Service struct {
	store  Store
	logger *zap.Logger
}

// Params collects Service dependencies from Fx.
type Params struct {
	fx.In

	Store  Store
	Logger *zap.Logger
}

// NewService wires a customer Service.
func NewService(p Params) *Service {
	return &Service{store: p.Store, logger: p.Logger}
}

// Find looks up a customer by identifier, trimming surrounding whitespace.
// No further identifier validation is applied.
func (s *Service) Find(ctx context.Context, id string) (*entity.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fault.InvalidInput("customer identifier is required")
	}

	ctx, span := tracer.Start(ctx, "CustomerService.Find", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	found, err := s.store.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fault.NotFound("customer not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to load customer", fault.WithCause(err))
	}
	return found, nil
}

// Register creates a customer if the identifier is unknown; when it already
// exists the stored record is returned untouched, so registering twice never
// produces a duplicate.
func (s *Service) Register(ctx context.Context, id, name, phone string) (*entity.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fault.InvalidInput("customer identifier is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fault.InvalidInput("customer name is required")
	}

	ctx, span := tracer.Start(ctx, "CustomerService.Register", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	existing, err := s.store.ByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to load customer", fault.WithCause(err))
	}

	created := &entity.Customer{
		ID:    id,
		Name:  name,
		Phone: strings.TrimSpace(phone),
	}
	if err := s.store.Create(ctx, created); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to register customer", fault.WithCause(err))
	}

	s.logger.Info("customer registered", zap.String("id", created.ID), zap.String("name", created.Name))
	return created, nil
}

// List returns all customers ordered by name.
func (s *Service) List(ctx context.Context) ([]entity.Customer, error) {
	ctx, span := tracer.Start(ctx, "CustomerService.List")
	defer span.End()

	customers, err := s.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to list customers", fault.WithCause(err))
	}
	return customers, nil
}
