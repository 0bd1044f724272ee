package http

import (
	"go.uber.org/fx"

	catalogtransport "github.com/tia-rosa/pos/internal/transport/http/catalog"
	customertransport "github.com/tia-rosa/pos/internal/transport/http/customer"
	ordertransport "github.com/tia-rosa/pos/internal/transport/http/order"
)

// Module aggregates all HTTP transport handlers.
var Module = fx.Options(
	catalogtransport.Module,
	customertransport.Module,
	ordertransport.Module,
)
