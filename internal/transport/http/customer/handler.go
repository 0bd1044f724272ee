package customer

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tia-rosa/pos/internal/dto"
	"github.com/tia-rosa/pos/internal/entity"
	"github.com/tia-rosa/pos/internal/presentation/http/response"
	service "github.com/tia-rosa/pos/internal/service/customer"
	"github.com/tia-rosa/pos/pkg/fault"
)

var httpTracer = otel.Tracer("github.com/tia-rosa/pos/transport/http/customer")

// Handler exposes customer endpoints over HTTP.
type Handler struct {
	svc *service.Service
}

// NewHandler constructs a customer Handler.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Register routes with the provided Echo instance.
func Register(e *echo.Echo, h *Handler) {
	g := e.Group("/customers")
	g.GET("", h.list)
	g.GET("/:id", h.getByID)
	g.POST("", h.create)
}

func (h *Handler) list(c echo.Context) error {
	b := response.New(c)

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.list")
	defer span.End()

	customers, err := h.svc.List(ctx)
	if err != nil {
		return b.WithError(err).Build()
	}

	out := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		out = append(out, toDTO(&customers[i]))
	}
	return b.WithData(out).WithMeta("count", len(out)).Build()
}

func (h *Handler) getByID(c echo.Context) error {
	b := response.New(c)

	id := c.Param("id")
	ctx, span := httpTracer.Start(c.Request().Context(), "customers.getByID", trace.WithAttributes(
		attribute.String("customer.id", id),
	))
	defer span.End()

	found, err := h.svc.Find(ctx, id)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithData(toDTO(found)).Build()
}

func (h *Handler) create(c echo.Context) error {
	b := response.New(c)

	var payload struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}
	if err := c.Bind(&payload); err != nil {
		return b.WithError(fault.InvalidInput("invalid payload", fault.WithCause(err))).Build()
	}

	ctx, span := httpTracer.Start(c.Request().Context(), "customers.create", trace.WithAttributes(
		attribute.String("customer.id", payload.ID),
	))
	defer span.End()

	registered, err := h.svc.Register(ctx, payload.ID, payload.Name, payload.Phone)
	if err != nil {
		return b.WithError(err).Build()
	}

	return b.WithStatus(http.StatusCreated).WithData(toDTO(registered)).Build()
}

func toDTO(customer *entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:    customer.ID,
		Name:  customer.Name,
		Phone: customer.Phone,
	}
}
