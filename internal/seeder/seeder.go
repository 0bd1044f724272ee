package seeder

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/internal/service/catalog"
)

// Module provides the seeder to Fx.
var Module = fx.Provide(New)

// Seeder loads the house catalog into an empty store.
type Seeder struct {
	store  catalog.ProductStore
	logger *zap.Logger
}

// New constructs a Seeder over the catalog store.
func New(store catalog.ProductStore, logger *zap.Logger) *Seeder {
	return &Seeder{store: store, logger: logger}
}

// Products inserts the fixed product list when the catalog is empty. A
// non-empty catalog makes this a no-op; running it twice never duplicates
// a product. This is an idempotence guard, not a migration mechanism.
func (s *Seeder) Products(ctx context.Context) error {
	count, err := s.store.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("catalog already populated; skipping seed", zap.Int("products", count))
		return nil
	}

	if err := s.store.CreateBatch(ctx, defaultCatalog()); err != nil {
		return err
	}

	s.logger.Info("catalog seeded", zap.Int("products", len(defaultCatalog())))
	return nil
}

func defaultCatalog() []entity.Product {
	return []entity.Product{
		{Name: "Espresso Duplo", Category: "Bebidas Quentes", Price: 7.00},
		{Name: "Latte com Baunilha", Category: "Bebidas Quentes", Price: 10.00},
		{Name: "Mocha com Chocolate Meio Amargo", Category: "Bebidas Quentes", Price: 11.50},
		{Name: "Chá Preto com Especiarias", Category: "Bebidas Quentes", Price: 8.00},
		{Name: "Chocolate Quente Cremoso", Category: "Bebidas Quentes", Price: 9.50},
		{Name: "Frappuccino de Caramelo", Category: "Bebidas Geladas", Price: 12.00},
		{Name: "Cold Brew com Laranja", Category: "Bebidas Geladas", Price: 10.50},
		{Name: "Café Gelado com Leite de Coco", Category: "Bebidas Geladas", Price: 11.00},
		{Name: "Smoothie de Frutas Vermelhas", Category: "Bebidas Geladas", Price: 13.00},
		{Name: "Chá Gelado de Hibisco", Category: "Bebidas Geladas", Price: 9.00},
		{Name: "Coca-Cola (350ml)", Category: "Bebidas Geladas", Price: 6.00},
		{Name: "Chá Berlim Gelado", Category: "Bebidas Geladas", Price: 13.00},
		{Name: "Bolo de Banana com Nozes", Category: "Comidas", Price: 8.50},
		{Name: "Croissant com Queijo e Presunto", Category: "Comidas", Price: 9.50},
		{Name: "Pão de Queijo Artesanal", Category: "Comidas", Price: 6.00},
		{Name: "Torta de Limão", Category: "Comidas", Price: 10.00},
		{Name: "Cookies com Flor de Sal", Category: "Comidas", Price: 7.50},
		{Name: "Quiche Individual", Category: "Comidas", Price: 9.50},
		{Name: "Café Arábica ou Robusta", Category: "Ingredientes Extras", Price: 0.00},
		{Name: "Leite (Integral/Vegetal)", Category: "Ingredientes Extras", Price: 2.00},
		{Name: "Canela, Cardamomo, Baunilha", Category: "Ingredientes Extras", Price: 1.50},
		{Name: "Chocolate Meio Amargo, Caramelo", Category: "Ingredientes Extras", Price: 2.00},
		{Name: "Chantilly, Marshmallows", Category: "Ingredientes Extras", Price: 2.00},
		{Name: "Raspas de Limão ou Laranja", Category: "Ingredientes Extras", Price: 1.00},
		{Name: "Mel ou Açúcar Mascavo", Category: "Ingredientes Extras", Price: 1.00},
		{Name: "Gelo ou Pedras de Café Congelado", Category: "Ingredientes Extras", Price: 1.00},
	}
}
