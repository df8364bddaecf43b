package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SubscriptionHandler holds dependencies for membership plan handlers.
type SubscriptionHandler struct {
	uc     usecase.SubscriptionUsecase
	logger *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler,
// injected by Fx.
func NewSubscriptionHandler(uc usecase.SubscriptionUsecase, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{uc: uc, logger: logger}
}

// ListPlans returns the active plans, cheapest first.
func (h *SubscriptionHandler) ListPlans(c echo.Context) error {
	plans, err := h.uc.ListPlans(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plans, "Planes obtenidos")
}

// GetPlan returns one active plan.
func (h *SubscriptionHandler) GetPlan(c echo.Context) error {
	planID, err := pathUUID(c, "planID")
	if err != nil {
		return err
	}

	plan, err := h.uc.GetPlan(c.Request().Context(), planID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Plan obtenido")
}

// GetCurrentPlan returns the customer's current plan.
func (h *SubscriptionHandler) GetCurrentPlan(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	plan, err := h.uc.GetCurrentPlan(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Plan actual obtenido")
}

type subscribeRequest struct {
	PlanID uuid.UUID `json:"plan_id" validate:"required"`
}

// Subscribe switches the customer to the given plan.
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var input subscribeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de suscripción inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	plan, err := h.uc.Subscribe(c.Request().Context(), id, input.PlanID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Suscripción activada")
}

// Cancel resets the customer to the free plan.
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	plan, err := h.uc.Cancel(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, plan, "Suscripción cancelada")
}
