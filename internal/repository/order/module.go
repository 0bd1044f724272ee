package order

import (
	"go.uber.org/fx"

	ordersvc "github.com/tia-rosa/pos/internal/service/order"
)

// Module provides the order repository and binds its service port.
var Module = fx.Provide(
	NewRepository,
	func(r *Repository) ordersvc.Store { return r },
)
