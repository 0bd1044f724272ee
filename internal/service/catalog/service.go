package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/cache"
	"github.com/tia-rosa/pos/internal/config"
	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/pkg/fault"
)

var tracer = otel.Tracer("github.com/tia-rosa/pos/service/catalog")

// ErrNotFound is returned by ProductStore implementations on a lookup miss.
var ErrNotFound = errors.New("product not found")

const listCacheKey = "catalog:products"

// ProductStore is the persistence port for catalog products.
type ProductStore interface {
	List(ctx context.Context) ([]entity.Product, error)
	ByID(ctx context.Context, id int64) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Count(ctx context.Context) (int, error)
	CreateBatch(ctx context.Context, products []entity.Product) error
}

// Service exposes catalog operations. Products are append-only: there is no
// update or delete, and duplicate names are allowed.
type Service struct {
	store    ProductStore
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
}

// Params collects Service dependencies from Fx.
type Params struct {
	fx.In

	Store  ProductStore
	Cache  cache.Store
	Config config.Config
	Logger *zap.Logger
}

// NewService wires a catalog Service.
func NewService(p Params) *Service {
	return &Service{
		store:    p.Store,
		cache:    p.Cache,
		cacheTTL: p.Config.Cache.DefaultTTL,
		logger:   p.Logger,
	}
}

// List returns all products ordered by category. An empty catalog is a
// valid, empty result.
func (s *Service) List(ctx context.Context) ([]entity.Product, error) {
	ctx, span := tracer.Start(ctx, "CatalogService.List")
	defer span.End()

	if products, err := s.listFromCache(ctx); err == nil {
		return products, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("catalog cache read failed", zap.Error(err))
	}

	products, err := s.store.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to list products", fault.WithCause(err))
	}

	if err := s.storeInCache(ctx, products); err != nil {
		s.logger.Warn("catalog cache write failed", zap.Error(err))
	}

	return products, nil
}

// ByID resolves one product for order capture.
func (s *Service) ByID(ctx context.Context, id int64) (*entity.Product, error) {
	ctx, span := tracer.Start(ctx, "CatalogService.ByID", trace.WithAttributes(attribute.Int64("product.id", id)))
	defer span.End()

	product, err := s.store.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fault.NotFound("product not found")
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to load product", fault.WithCause(err))
	}
	return product, nil
}

// Register appends a new product. The price must be non-negative; no
// duplicate-name check is performed.
func (s *Service) Register(ctx context.Context, name, category string, price float64) (*entity.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fault.InvalidInput("product name is required")
	}
	if price < 0 {
		return nil, fault.InvalidInput("price must be non-negative")
	}

	ctx, span := tracer.Start(ctx, "CatalogService.Register", trace.WithAttributes(attribute.String("product.name", name)))
	defer span.End()

	product := &entity.Product{
		Name:     name,
		Category: strings.TrimSpace(category),
		Price:    price,
	}
	if err := s.store.Create(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store error")
		return nil, fault.Internal("failed to register product", fault.WithCause(err))
	}

	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.logger.Warn("catalog cache invalidation failed", zap.Error(err))
	}

	s.logger.Info("product registered",
		zap.Int64("id", product.ID),
		zap.String("name", product.Name),
		zap.String("category", product.Category),
	)
	return product, nil
}

func (s *Service) listFromCache(ctx context.Context) ([]entity.Product, error) {
	raw, err := s.cache.Get(ctx, listCacheKey)
	if err != nil {
		return nil, err
	}
	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Service) storeInCache(ctx context.Context, products []entity.Product) error {
	raw, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, listCacheKey, raw, s.cacheTTL)
}
