package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for shopping cart handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{uc: uc, logger: logger}
}

// GetCart returns the open cart, creating it when absent.
func (h *CartHandler) GetCart(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	cart, err := h.uc.GetCart(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Carrito obtenido")
}

// AddItem adds a dish to the cart, accumulating the quantity when the dish
// is already there.
func (h *CartHandler) AddItem(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var input usecase.AddCartItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de producto inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	cart, err := h.uc.AddItem(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Producto agregado al carrito")
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// UpdateItem replaces the quantity of one cart line. Quantity zero removes
// the line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return err
	}

	var input updateCartItemRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Cantidad inválida")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	cart, err := h.uc.UpdateItem(c.Request().Context(), id, itemID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Carrito actualizado")
}

// RemoveItem removes one line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	itemID, err := pathUUID(c, "itemID")
	if err != nil {
		return err
	}

	cart, err := h.uc.RemoveItem(c.Request().Context(), id, itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Producto eliminado del carrito")
}

// ClearCart removes every line from the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	if err := h.uc.ClearCart(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Carrito vaciado")
}
