package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for order placement and tracking handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Checkout places an order from the requested lines.
func (h *OrderHandler) Checkout(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de pedido inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	order, err := h.uc.Checkout(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, order, "Pedido registrado")
}

// ListOrders returns the customer's placed orders, newest first.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListOrders(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Pedidos obtenidos")
}

// GetOrder returns one order with its lines and tracking state.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	order, err := h.uc.GetOrder(c.Request().Context(), id, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Pedido obtenido")
}

// ConfirmReceived marks the order as delivered. The operation is idempotent.
func (h *OrderHandler) ConfirmReceived(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	order, err := h.uc.ConfirmReceived(c.Request().Context(), id, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Entrega confirmada")
}

// GetOrderQR streams the QR code PNG identifying the order.
func (h *OrderHandler) GetOrderQR(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	png, err := h.uc.GetOrderQR(c.Request().Context(), id, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
