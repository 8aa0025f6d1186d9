package http

import (
	"net/http"

	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface lists the operations of the OpenAPI document, one method
// per operationId.
type ServerInterface interface {
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (GET /api/v1/orders/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// (PUT /api/v1/orders/{id}/status)
	UpdateOrderStatus(ctx echo.Context, id openapi_types.UUID) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the
// typed operation.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("status", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "from", ctx.QueryParams(), &params.From); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("from", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "to", ctx.QueryParams(), &params.To); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("to", err)
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetOrder(ctx, id)
}

func (w *ServerInterfaceWrapper) UpdateOrderStatus(ctx echo.Context) error {
	id, err := bindOrderID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.UpdateOrderStatus(ctx, id)
}

func bindOrderID(ctx echo.Context) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return id, nil
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used to mount the
// operations.
type EchoRouter interface {
	Add(method string, path string, handler echo.HandlerFunc, middleware ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers mounts every operation of si on router. Paths are
// relative to the group the router represents.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.Add(http.MethodPost, "/orders", wrapper.CreateOrder)
	router.Add(http.MethodGet, "/orders", wrapper.ListOrders)
	router.Add(http.MethodGet, "/orders/:id", wrapper.GetOrder)
	router.Add(http.MethodPut, "/orders/:id/status", wrapper.UpdateOrderStatus)
}
