package terminal

import (
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	catalogsvc "github.com/tia-rosa/pos/internal/service/catalog"
	customersvc "github.com/tia-rosa/pos/internal/service/customer"
	ordersvc "github.com/tia-rosa/pos/internal/service/order"
)

// Module binds the services to the menu ports and provides a Menu over the
// process streams.
var Module = fx.Provide(
	func(s *catalogsvc.Service) Catalog { return s },
	func(s *customersvc.Service) Customers { return s },
	func(s *ordersvc.Service) Orders { return s },
	func(catalog Catalog, customers Customers, orders Orders, logger *zap.Logger) *Menu {
		return New(os.Stdin, os.Stdout, catalog, customers, orders, logger)
	},
)
