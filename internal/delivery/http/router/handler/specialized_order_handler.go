package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SpecializedOrderHandler holds dependencies for diet request handlers.
type SpecializedOrderHandler struct {
	uc     usecase.SpecializedOrderUsecase
	logger *slog.Logger
}

// NewSpecializedOrderHandler is the constructor for SpecializedOrderHandler,
// injected by Fx.
func NewSpecializedOrderHandler(uc usecase.SpecializedOrderUsecase, logger *slog.Logger) *SpecializedOrderHandler {
	return &SpecializedOrderHandler{uc: uc, logger: logger}
}

// Create registers a personalized diet request. The request is a multipart
// form: the clinical lists travel as JSON strings next to the optional
// prescription and extra files.
func (h *SpecializedOrderHandler) Create(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateSpecializedOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de solicitud inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	prescription, closePrescription, err := formFile(c, "prescription")
	if err != nil {
		return err
	}
	defer closePrescription()
	input.Prescription = prescription

	extraFile, closeExtra, err := formFile(c, "extra_file")
	if err != nil {
		return err
	}
	defer closeExtra()
	input.ExtraFile = extraFile

	output, err := h.uc.CreateSpecializedOrder(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Solicitud de dieta registrada")
}

// List returns the customer's diet requests, newest first.
func (h *SpecializedOrderHandler) List(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	orders, err := h.uc.ListSpecializedOrders(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Solicitudes obtenidas")
}

// GetDetail returns one of the customer's diet requests.
func (h *SpecializedOrderHandler) GetDetail(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	specID, err := pathUUID(c, "specID")
	if err != nil {
		return err
	}

	order, err := h.uc.GetSpecializedOrder(c.Request().Context(), id, specID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Solicitud obtenida")
}
