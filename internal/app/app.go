package app

import (
	"go.uber.org/fx"

	"github.com/tia-rosa/pos/internal/cache"
	"github.com/tia-rosa/pos/internal/config"
	"github.com/tia-rosa/pos/internal/database"
	"github.com/tia-rosa/pos/internal/logger"
	"github.com/tia-rosa/pos/internal/messaging"
	"github.com/tia-rosa/pos/internal/observability"
	repositorycustomer "github.com/tia-rosa/pos/internal/repository/customer"
	repositoryorder "github.com/tia-rosa/pos/internal/repository/order"
	repositoryproduct "github.com/tia-rosa/pos/internal/repository/product"
	httpserver "github.com/tia-rosa/pos/internal/server/http"
	servicecatalog "github.com/tia-rosa/pos/internal/service/catalog"
	servicecustomer "github.com/tia-rosa/pos/internal/service/customer"
	serviceorder "github.com/tia-rosa/pos/internal/service/order"
	"github.com/tia-rosa/pos/internal/terminal"
	transporthttp "github.com/tia-rosa/pos/internal/transport/http"
	"github.com/tia-rosa/pos/internal/worker"
	workerorder "github.com/tia-rosa/pos/internal/worker/order"
)

// Core provides the foundational modules shared across executables.
var Core = fx.Options(
	config.Module,
	cache.Module,
	database.Module,
	logger.Module,
	messaging.Module,
	observability.Module,
	repositoryproduct.Module,
	repositorycustomer.Module,
	repositoryorder.Module,
	servicecatalog.Module,
	servicecustomer.Module,
	serviceorder.Module,
)

// Terminal wires the interactive register menu on top of the core modules.
var Terminal = fx.Options(
	Core,
	terminal.Module,
)

// HTTP wires the HTTP transport on top of the core modules.
var HTTP = fx.Options(
	Core,
	httpserver.Module,
	transporthttp.Module,
)

// Worker exposes background worker processing.
var Worker = fx.Options(
	Core,
	worker.Module,
	workerorder.Module,
)

// Module is the default application wiring (the terminal register).
var Module = Terminal
