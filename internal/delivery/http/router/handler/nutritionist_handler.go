package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NutritionistHandler holds dependencies for the nutritionist workflow.
type NutritionistHandler struct {
	uc     usecase.NutritionistUsecase
	logger *slog.Logger
}

// NewNutritionistHandler is the constructor for NutritionistHandler,
// injected by Fx.
func NewNutritionistHandler(uc usecase.NutritionistUsecase, logger *slog.Logger) *NutritionistHandler {
	return &NutritionistHandler{uc: uc, logger: logger}
}

// ListPendingOrders returns the diet requests awaiting review, oldest first.
func (h *NutritionistHandler) ListPendingOrders(c echo.Context) error {
	orders, err := h.uc.ListPendingOrders(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Solicitudes pendientes obtenidas")
}

// GetOrderDetail returns a diet request with the pet's clinical record.
func (h *NutritionistHandler) GetOrderDetail(c echo.Context) error {
	specID, err := pathUUID(c, "specID")
	if err != nil {
		return err
	}

	detail, err := h.uc.GetOrderDetail(c.Request().Context(), specID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Solicitud obtenida")
}

// ReviewOrder records the review of a diet request.
func (h *NutritionistHandler) ReviewOrder(c echo.Context) error {
	specID, err := pathUUID(c, "specID")
	if err != nil {
		return err
	}

	var input usecase.ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de revisión inválidos")
	}

	consultation, err := h.uc.ReviewOrder(c.Request().Context(), specID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, consultation, "Revisión registrada")
}

// CreateMixDish blends base dishes into an unpublished personalized dish
// and notifies the pet owner.
func (h *NutritionistHandler) CreateMixDish(c echo.Context) error {
	specID, err := pathUUID(c, "specID")
	if err != nil {
		return err
	}

	var input usecase.MixDishInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de plato inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	input.SpecializedOrderID = specID

	dish, err := h.uc.CreateMixDish(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, dish, "Plato personalizado creado")
}

// CreatePersonalizedDish creates an unpublished dish for the pet of a diet
// request. The request is a multipart form with an optional image.
func (h *NutritionistHandler) CreatePersonalizedDish(c echo.Context) error {
	specID, err := pathUUID(c, "specID")
	if err != nil {
		return err
	}

	var input usecase.CreateDishInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de plato inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	image, cleanup, err := formFile(c, "image")
	if err != nil {
		return err
	}
	defer cleanup()
	input.Image = image

	dish, err := h.uc.CreatePersonalizedDish(c.Request().Context(), specID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, dish, "Plato personalizado creado")
}

// ListPersonalizedDishes returns the custom dishes assigned to a pet.
func (h *NutritionistHandler) ListPersonalizedDishes(c echo.Context) error {
	petID, err := pathUUID(c, "petID")
	if err != nil {
		return err
	}

	dishes, err := h.uc.ListPersonalizedDishes(c.Request().Context(), petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes, "Platos personalizados obtenidos")
}

// ListPatients returns the pets with at least one consultation.
func (h *NutritionistHandler) ListPatients(c echo.Context) error {
	patients, err := h.uc.ListPatients(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patients, "Pacientes obtenidos")
}

// GetHistory returns all consultations, newest first.
func (h *NutritionistHandler) GetHistory(c echo.Context) error {
	history, err := h.uc.GetHistory(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, history, "Historial obtenido")
}

// SearchDishes returns active dishes matching the q query parameter.
func (h *NutritionistHandler) SearchDishes(c echo.Context) error {
	query := c.QueryParam("q")

	dishes, err := h.uc.SearchDishes(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes, "Platos encontrados")
}

// UploadPrescription stores a prescription file for a diet request.
func (h *NutritionistHandler) UploadPrescription(c echo.Context) error {
	specID, err := pathUUID(c, "specID")
	if err != nil {
		return err
	}

	file, cleanup, err := formFile(c, "file")
	if err != nil {
		return err
	}
	defer cleanup()
	if file == nil {
		return domainerrors.ErrValidationFailed.WithDetails("falta el archivo 'file'")
	}

	prescription, err := h.uc.UploadPrescription(c.Request().Context(), specID, *file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, prescription, "Receta registrada")
}
