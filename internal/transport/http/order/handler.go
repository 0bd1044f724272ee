package order

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tia-rosa/pos/internal/dto"
	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/internal/presentation/http/response"
	catalogsvc "github.com/tia-rosa/pos/internal/service/catalog"
	service "github.com/tia-rosa/pos/internal/service/order"
	"github.com/tia-rosa/pos/pkg/fault"
)

var httpTracer = otel.Tracer("github.com/tia-rosa/pos/transport/http/order")

// Handler exposes order and reporting endpoints over HTTP.
type Handler struct {
	orders  *service.Service
	catalog *catalogsvc.Service
}

// NewHandler constructs an order Handler.
func NewHandler(orders *service.Service, catalog *catalogsvc.Service) *Handler {
	return &Handler{orders: orders, catalog: catalog}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/orders")
	g.GET("", h.history)
	g.POST("", h.create)
	e.GET("/reports/sales", h.salesReport)
}

func (h *Handler) history(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.history")
	defer span.End()

	orders, err := h.orders.History(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toDTO(&orders[i]))
	}
	return b.WithData(out).WithMeta("count", len(out)).Build()
}

// create places an order from product references. Unit prices always come
// from the catalog, never from the request.
func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload struct {
		CustomerID string `json:"customer_id"`
		Items      []struct {
			ProductID int64 `json:"product_id"`
			Quantity  int   `json:"quantity"`
		} `json:"items"`
	}
	if err := c.Bind(&payload); err != nil {
		return b.WithError(fault.InvalidInput("invalid payload", fault.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.create", trace.WithAttributes(
		attribute.String("customer.id", payload.CustomerID),
		attribute.Int("cart.items", len(payload.Items)),
	))
	defer span.End()

	var cart service.Cart
	for _, item := range payload.Items {
		product, err := h.catalog.ByID(ctx, item.ProductID)
		if err != nil {
			return b.WithError(err).Build()
		}
		cart = append(cart, service.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	placed, err := h.orders.PlaceOrder(ctx, payload.CustomerID, cart)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(toDTO(placed)).Build()
}

func (h *Handler) salesReport(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "orders.salesReport")
	defer span.End()

	rows, err := h.orders.SalesReport(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.CustomerSalesResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.CustomerSalesResponse{
			CustomerID:   row.CustomerID,
			CustomerName: row.CustomerName,
			OrderCount:   row.OrderCount,
			TotalSpent:   row.TotalSpent,
		})
	}
	return b.WithData(out).WithMeta("count", len(out)).Build()
}

func toDTO(order *entity.Order) dto.OrderResponse {
	out := dto.OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total,
		CreatedAt:  order.CreatedAt,
		Lines:      make([]dto.OrderLineResponse, 0, len(order.Lines)),
	}
	for _, line := range order.Lines {
		lr := dto.OrderLineResponse{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  float64(line.Quantity) * line.UnitPrice,
		}
		if line.Product != nil {
			lr.Name = line.Product.Name
		}
		out.Lines = append(out.Lines, lr)
	}
	return out
}
