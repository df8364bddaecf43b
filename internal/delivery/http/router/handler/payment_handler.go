package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{uc: uc, logger: logger}
}

// RegisterPayment records the payment of an order. The request is a
// multipart form with an optional proof image.
func (h *PaymentHandler) RegisterPayment(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var input usecase.RegisterPaymentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de pago inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	proof, cleanup, err := formFile(c, "proof")
	if err != nil {
		return err
	}
	defer cleanup()
	input.Proof = proof

	payment, err := h.uc.RegisterPayment(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, payment, "Pago registrado")
}

// GetPayment returns the payment of an order with its gateway name.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	orderID, err := pathUUID(c, "orderID")
	if err != nil {
		return err
	}

	payment, err := h.uc.GetPayment(c.Request().Context(), id, orderID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payment, "Pago obtenido")
}

// ListPayments returns the customer's payments, newest first.
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	payments, err := h.uc.ListPayments(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payments, "Pagos obtenidos")
}

// ListGateways returns the active payment gateways.
func (h *PaymentHandler) ListGateways(c echo.Context) error {
	gateways, err := h.uc.ListGateways(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, gateways, "Métodos de pago obtenidos")
}
