package order

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
	ordersvc "github.com/tia-rosa/pos/internal/service/order"
)

var repoTracer = otel.Tracer("github.com/tia-rosa/pos/repository/order")

// Repository stores orders and their lines in the relational store.
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

// Create inserts the order header and all of its lines in one transaction.
// A failure at any point rolls everything back; there is no partial order.
func (r *Repository) Create(ctx context.Context, placed *entity.Order) error {
	if placed == nil {
		return errors.New("nil order")
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Create", trace.WithAttributes(
		attribute.String("customer.id", placed.CustomerID),
		attribute.Int("lines", len(placed.Lines)),
	))
	defer span.End()

	err := r.writer.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(placed).Exec(ctx); err != nil {
			return err
		}
		for _, line := range placed.Lines {
			line.OrderID = placed.ID
		}
		if len(placed.Lines) > 0 {
			if _, err := tx.NewInsert().Model(&placed.Lines).Exec(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "insert failed")
	}
	return err
}

// History returns every order, most recent first, with lines and their
// products resolved.
func (r *Repository) History(ctx context.Context) ([]entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.History")
	defer span.End()

	var orders []entity.Order
	err := r.reader.NewSelect().Model(&orders).
		Relation("Lines").
		Relation("Lines.Product").
		OrderExpr("created_at DESC, id DESC").
		Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return orders, nil
}

// SalesByCustomer aggregates order count and spend per customer, joined
// with the customer name, highest total first.
func (r *Repository) SalesByCustomer(ctx context.Context) ([]ordersvc.CustomerSales, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.SalesByCustomer")
	defer span.End()

	var rows []ordersvc.CustomerSales
	err := r.reader.NewSelect().
		TableExpr("orders AS o").
		ColumnExpr("o.customer_id AS customer_id").
		ColumnExpr("c.name AS customer_name").
		ColumnExpr("COUNT(o.id) AS order_count").
		ColumnExpr("SUM(o.total) AS total_spent").
		Join("JOIN customers AS c ON c.id = o.customer_id").
		GroupExpr("o.customer_id, c.name").
		OrderExpr("total_spent DESC").
		Scan(ctx, &rows)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, err
	}
	return rows, nil
}
