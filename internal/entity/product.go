package entity

import "github.com/uptrace/bun"

// Product is a catalog entry. Duplicate names are allowed and yield
// distinct identifiers.
type Product struct {
	bun.BaseModel `bun:"table:products"`

	ID       int64   `bun:"id,pk,autoincrement"`
	Name     string  `bun:"name,notnull"`
	Category string  `bun:"category"`
	Price    float64 `bun:"price,notnull"`
}
