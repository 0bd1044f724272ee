package customer

import (
	"go.uber.org/fx"

	customersvc "github.com/tia-rosa/pos/internal/service/customer"
	ordersvc "github.com/tia-rosa/pos/internal/service/order"
)

// Module provides the customer repository and binds the ports it serves.
var Module = fx.Provide(
	NewRepository,
	func(r *Repository) customersvc.Store { return r },
	func(r *Repository) ordersvc.CustomerDirectory { return r },
)
