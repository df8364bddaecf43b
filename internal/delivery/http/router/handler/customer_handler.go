package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CustomerHandler holds dependencies for profile and address handlers.
type CustomerHandler struct {
	uc     usecase.CustomerUsecase
	logger *slog.Logger
}

// NewCustomerHandler is the constructor for CustomerHandler, injected by Fx.
func NewCustomerHandler(uc usecase.CustomerUsecase, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, logger: logger}
}

// GetProfile returns the authenticated customer's profile with its plan.
func (h *CustomerHandler) GetProfile(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	output, err := h.uc.GetProfile(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Perfil obtenido")
}

// UpdateProfile updates name, phone or photo. The request is a multipart
// form so the photo can travel with the fields.
func (h *CustomerHandler) UpdateProfile(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de perfil inválidos")
	}

	photo, cleanup, err := formFile(c, "photo")
	if err != nil {
		return err
	}
	defer cleanup()
	input.Photo = photo

	customer, err := h.uc.UpdateProfile(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, customer, "Perfil actualizado")
}

// CreateAddress registers a delivery address.
func (h *CustomerHandler) CreateAddress(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de dirección inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	address, err := h.uc.CreateAddress(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Dirección registrada")
}

// ListAddresses returns the customer's active addresses, primary first.
func (h *CustomerHandler) ListAddresses(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	addresses, err := h.uc.ListAddresses(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Direcciones obtenidas")
}

// UpdateAddress updates one of the customer's addresses.
func (h *CustomerHandler) UpdateAddress(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	addressID, err := pathUUID(c, "addressID")
	if err != nil {
		return err
	}

	var input usecase.UpdateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de dirección inválidos")
	}

	address, err := h.uc.UpdateAddress(c.Request().Context(), id, addressID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Dirección actualizada")
}

// DeleteAddress soft-deletes an address.
func (h *CustomerHandler) DeleteAddress(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	addressID, err := pathUUID(c, "addressID")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAddress(c.Request().Context(), id, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Dirección eliminada")
}

// ListNotifications returns the customer's notifications, newest first.
func (h *CustomerHandler) ListNotifications(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	notifications, err := h.uc.ListNotifications(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notificaciones obtenidas")
}
