package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// Order is a persisted sale. Total always equals the sum of its lines'
// quantity times unit price as computed at creation; it is never recomputed.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID         int64     `bun:"id,pk,autoincrement"`
	CustomerID string    `bun:"customer_id,notnull"`
	Total      float64   `bun:"total,notnull"`
	CreatedAt  time.Time `bun:"created_at,nullzero,notnull,default:CURRENT_TIMESTAMP"`

	Lines []*OrderLine `bun:"rel:has-many,join:id=order_id"`
}

// OrderLine records one product's quantity within an order. UnitPrice is the
// catalog price captured at selection time, deliberately decoupled from the
// current catalog so historical orders survive price changes.
type OrderLine struct {
	bun.BaseModel `bun:"table:order_lines"`

	ID        int64   `bun:"id,pk,autoincrement"`
	OrderID   int64   `bun:"order_id,notnull"`
	ProductID int64   `bun:"product_id,notnull"`
	Quantity  int     `bun:"quantity,notnull"`
	UnitPrice float64 `bun:"unit_price,notnull"`

	Product *Product `bun:"rel:belongs-to,join:product_id=id"`
}
