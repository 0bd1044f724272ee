package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tia-rosa/pos/internal/database"
	"github.com/tia-rosa/pos/internal/entity"
	customersvc "github.com/tia-rosa/pos/internal/service/customer"
)

var repoTracer = otel.Tracer("github.com/tia-rosa/pos/repository/customer")

// Repository stores customers in the relational store.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
}

// NewRepository wires a repository backed by the configured connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
	}
}

// ByID fetches a customer by their document number.
func (r *Repository) ByID(ctx context.Context, id string) (*entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.ByID", trace.WithAttributes(attribute.String("customer.id", id)))
	defer span.End()

	found := new(entity.Customer)
	err := r.reader.NewSelect().Model(found).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "not found")
		return nil, customersvc.ErrNotFound
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return found, nil
}

// Create persists a new customer record.
func (r *Repository) Create(ctx context.Context, record *entity.Customer) error {
	if record == nil {
		return errors.New("nil customer")
	}
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.Create", trace.WithAttributes(attribute.String("customer.id", record.ID)))
	defer span.End()

	_, err := r.writer.NewInsert().Model(record).Exec(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// List returns every customer ordered by name.
func (r *Repository) List(ctx context.Context) ([]entity.Customer, error) {
	ctx, span := repoTracer.Start(ctx, "CustomerRepository.List")
	defer span.End()

	var customers []entity.Customer
	err := r.reader.NewSelect().Model(&customers).
		OrderExpr("name ASC").
		Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return customers, nil
}
