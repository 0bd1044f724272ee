package entity

import "github.com/uptrace/bun"

// Customer is a registered patron, keyed by their document number. Records
// are immutable once created; there is no update or delete path.
type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	ID    string `bun:"id,pk"`
	Name  string `bun:"name,notnull"`
	Phone string `bun:"phone"`
}
