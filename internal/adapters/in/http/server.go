package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	UpdateOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderStatusCommand) (*order.Order, error)
	}

	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]*order.Order, error)
	}

	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
)

var _ ServerInterface = (*Server)(nil)

// Server implements ServerInterface on top of the application use cases.
// It translates wire DTOs into commands and queries and domain errors into
// HTTP statuses.
type Server struct {
	createOrderHandler       CreateOrderHandler
	updateOrderStatusHandler UpdateOrderStatusHandler
	listOrdersHandler        ListOrdersHandler
	getOrderHandler          GetOrderHandler

	validate *validator.Validate
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewServer(
	createOrderHandler CreateOrderHandler,
	updateOrderStatusHandler UpdateOrderStatusHandler,
	listOrdersHandler ListOrdersHandler,
	getOrderHandler GetOrderHandler,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		listOrdersHandler:        listOrdersHandler,
		getOrderHandler:          getOrderHandler,
		validate:                 validator.New(validator.WithRequiredStructEnabled()),
		metrics:                  m,
		logger:                   logger.With("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body NewOrder
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := newCreateOrderCommand(actor, body)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	s.metrics.OrdersCreated.Inc()
	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var status *order.Status
	if params.Status != nil {
		parsed, err := order.ParseStatus(*params.Status)
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListOrdersQuery(actor, status, params.From, params.To)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrders(orders))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, kernel.UUIDFromGoogle(id))
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderView(view))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{id}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var body StatusUpdate
	if err := s.bind(ctx, &body); err != nil {
		return s.fail(ctx, err)
	}

	target, err := order.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, kernel.UUIDFromGoogle(id), target)
	if err != nil {
		return s.fail(ctx, err)
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrConcurrencyConflict) {
			s.metrics.Conflicts.Inc()
		}
		return s.fail(ctx, err)
	}

	s.metrics.StatusTransitions.WithLabelValues(updated.Status().String()).Inc()
	return ctx.JSON(http.StatusOK, toOrder(updated))
}

func (s *Server) bind(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	if err := s.validate.Struct(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}
	return nil
}

func (s *Server) fail(ctx echo.Context, err error) error {
	return writeError(ctx, s.logger, err)
}

func newCreateOrderCommand(actor kernel.Actor, body NewOrder) (commands.CreateOrderCommand, error) {
	lines := make([]services.LineRequest, 0, len(body.Items))
	for _, item := range body.Items {
		lines = append(lines, services.LineRequest{
			MenuItemID: kernel.UUIDFromGoogle(item.MenuItemID),
			Quantity:   item.Quantity,
		})
	}

	address, addressErr := kernel.NewAddress(
		body.DeliveryAddress.Street,
		body.DeliveryAddress.City,
		body.DeliveryAddress.State,
		body.DeliveryAddress.PostalCode,
		body.DeliveryAddress.Instructions,
	)
	method, methodErr := order.ParsePaymentMethod(body.PaymentMethod)
	if err := errors.Join(addressErr, methodErr); err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(actor, kernel.UUIDFromGoogle(body.RestaurantID), lines, address, method)
}
