// Package http exposes the pickup ordering core over a JSON API served by echo.
package http

import (
	"fmt"
	"net/http"

	"pickup/internal/core/application/usecases/commands"
	"pickup/internal/core/application/usecases/queries"
	"pickup/internal/core/domain/model/cart"
	"pickup/internal/core/domain/model/kernel"
	"pickup/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/shopspring/decimal"
)

// maxUnitPrice keeps order totals within the store's numeric(10,2) columns.
var maxUnitPrice = decimal.New(1_000_000, -2)

// Server holds the request handlers and the use cases they call.
type Server struct {
	sessions *SessionStore
	auth     Authenticator
	log      *logger.Logger

	cancelOrderHandler commands.CancelOrderCommandHandler

	listUserOrdersHandler queries.ListUserOrdersQueryHandler
	getPickupSlotsHandler queries.GetPickupSlotsQueryHandler
}

func NewServer(
	sessions *SessionStore,
	auth Authenticator,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	listUserOrdersHandler queries.ListUserOrdersQueryHandler,
	getPickupSlotsHandler queries.GetPickupSlotsQueryHandler,
	log *logger.Logger,
) *Server {
	if log == nil {
		log = logger.Nop()
	}

	return &Server{
		sessions:              sessions,
		auth:                  auth,
		log:                   log,
		cancelOrderHandler:    cancelOrderHandler,
		listUserOrdersHandler: listUserOrdersHandler,
		getPickupSlotsHandler: getPickupSlotsHandler,
	}
}

// Register installs middleware and routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.Validator = newRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(s.requestContext)
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			event := s.log.Zerolog().Info()
			if v.Status >= http.StatusInternalServerError {
				event = s.log.Zerolog().Error().Err(v.Error)
			}
			event.
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	e.GET("/health", s.Health)

	api := e.Group("/api", s.auth.Middleware(), s.sessions.Middleware())
	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:itemId", s.UpdateCartItem)
	api.DELETE("/cart/items/:itemId", s.RemoveCartItem)
	api.DELETE("/cart", s.ClearCart)
	api.GET("/pickup-slots", s.GetPickupSlots)
	api.POST("/orders", s.SubmitOrder)
	api.GET("/orders", s.ListOrders)
	api.POST("/orders/:id/cancel", s.CancelOrder)
}

func (s *Server) requestContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		ctx := s.log.WithRequestID(c.Request().Context(), requestID)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// GetCart handles GET /api/cart.
func (s *Server) GetCart(c echo.Context) error {
	return c.JSON(http.StatusOK, toCartResponse(s.sessions.current(c).Snapshot()))
}

// AddCartItem handles POST /api/cart/items. An item of another vendor
// replaces the cart.
func (s *Server) AddCartItem(c echo.Context) error {
	var req AddCartItemRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.fail(c, err)
	}

	vendorID, err := kernel.UUIDFromString(req.VendorID)
	if err != nil {
		return s.fail(c, errMalformed(err))
	}
	itemID, err := kernel.UUIDFromString(req.ItemID)
	if err != nil {
		return s.fail(c, errMalformed(err))
	}

	item := cart.Item{
		ID:        itemID,
		Name:      req.Name,
		UnitPrice: req.Price,
		ImageRef:  req.ImageRef,
	}
	if req.Price.GreaterThan(maxUnitPrice) {
		return s.fail(c, &RequestValidationError{Fields: map[string]string{
			"price": "must be at most " + maxUnitPrice.StringFixed(2),
		}})
	}
	if !item.IsValid() {
		return s.fail(c, &RequestValidationError{Fields: map[string]string{
			"price": "must not be negative and may have at most 2 decimal places",
		}})
	}

	snapshot := s.sessions.ensure(c).AddItem(vendorID, req.VendorName, item)
	return c.JSON(http.StatusOK, toCartResponse(snapshot))
}

// UpdateCartItem handles PATCH /api/cart/items/:itemId.
func (s *Server) UpdateCartItem(c echo.Context) error {
	itemID, err := kernel.UUIDFromString(c.Param("itemId"))
	if err != nil {
		return s.fail(c, errMalformed(err))
	}

	var req UpdateCartItemRequest
	if err = s.bindAndValidate(c, &req); err != nil {
		return s.fail(c, err)
	}

	snapshot := s.sessions.current(c).UpdateQuantity(itemID, req.Quantity)
	return c.JSON(http.StatusOK, toCartResponse(snapshot))
}

// RemoveCartItem handles DELETE /api/cart/items/:itemId.
func (s *Server) RemoveCartItem(c echo.Context) error {
	itemID, err := kernel.UUIDFromString(c.Param("itemId"))
	if err != nil {
		return s.fail(c, errMalformed(err))
	}

	return c.JSON(http.StatusOK, toCartResponse(s.sessions.current(c).RemoveItem(itemID)))
}

// ClearCart handles DELETE /api/cart.
func (s *Server) ClearCart(c echo.Context) error {
	s.sessions.current(c).Clear()
	return c.NoContent(http.StatusNoContent)
}

// GetPickupSlots handles GET /api/pickup-slots.
func (s *Server) GetPickupSlots(c echo.Context) error {
	slots, err := s.getPickupSlotsHandler.Handle(c.Request().Context(), queries.NewGetPickupSlotsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	resp := PickupSlotsResponse{
		Slots:     make([]PickupSlotResponse, 0, len(slots)),
		Available: len(slots) > 0,
	}
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, PickupSlotResponse{Value: slot.Value, Label: slot.Label})
	}
	return c.JSON(http.StatusOK, resp)
}

// SubmitOrder handles POST /api/orders.
func (s *Server) SubmitOrder(c echo.Context) error {
	var req SubmitOrderRequest
	if err := s.bindAndValidate(c, &req); err != nil {
		return s.fail(c, err)
	}

	orderID, err := s.sessions.current(c).Submit(c.Request().Context(), req.PickupTime, req.Notes)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, SubmitOrderResponse{OrderID: orderID.String()})
}

// ListOrders handles GET /api/orders.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.listUserOrdersHandler.Handle(c.Request().Context(), queries.NewListUserOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	return c.JSON(http.StatusOK, resp)
}

// CancelOrder handles POST /api/orders/:id/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, errMalformed(err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return s.fail(c, err)
	}

	if err = s.cancelOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errMalformed(err)
	}
	return c.Validate(req)
}

func (s *Server) fail(c echo.Context, err error) error {
	if status, _ := statusAndMessage(err); status >= http.StatusInternalServerError {
		s.log.Error(c.Request().Context(), "request failed", err)
	}
	return writeError(c, err)
}

func errMalformed(err error) error {
	return fmt.Errorf("%w: %w", errMalformedRequest, err)
}
