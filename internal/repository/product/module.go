package product

import (
	"go.uber.org/fx"

	"github.com/tia-rosa/pos/internal/service/catalog"
)

// Module provides the product repository and binds its catalog port.
var Module = fx.Provide(
	NewRepository,
	func(r *Repository) catalog.ProductStore { return r },
)
