package catalog

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tia-rosa/pos/internal/dto"
	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/internal/presentation/http/response"
	service "github.com/tia-rosa/pos/internal/service/catalog"
	"github.com/tia-rosa/pos/pkg/fault"
)

var httpTracer = otel.Tracer("github.com/tia-rosa/pos/transport/http/catalog")

// Handler exposes catalog endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a catalog Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/products")
	g.GET("", h.list)
	g.POST("", h.create)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "products.list")
	defer span.End()

	products, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toDTO(&products[i]))
	}
	return b.WithData(out).WithMeta("count", len(out)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload struct {
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
	}
	if err := c.Bind(&payload); err != nil {
		return b.WithError(fault.InvalidInput("invalid payload", fault.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "products.create", trace.WithAttributes(
		attribute.String("product.name", payload.Name),
	))
	defer span.End()

	product, err := h.svc.Register(ctx, payload.Name, payload.Category, payload.Price)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(toDTO(product)).Build()
}

func toDTO(product *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price,
	}
}
