package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PetHandler holds dependencies for pet management handlers.
type PetHandler struct {
	uc     usecase.PetUsecase
	logger *slog.Logger
}

// NewPetHandler is the constructor for PetHandler, injected by Fx.
func NewPetHandler(uc usecase.PetUsecase, logger *slog.Logger) *PetHandler {
	return &PetHandler{uc: uc, logger: logger}
}

// CreatePet registers a pet. The request is a multipart form with an
// optional photo.
func (h *PetHandler) CreatePet(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	var input usecase.CreatePetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de mascota inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	photo, cleanup, err := formFile(c, "photo")
	if err != nil {
		return err
	}
	defer cleanup()
	input.Photo = photo

	pet, err := h.uc.CreatePet(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pet, "Mascota registrada")
}

// ListPets returns the customer's active pets.
func (h *PetHandler) ListPets(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	pets, err := h.uc.ListPets(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pets, "Mascotas obtenidas")
}

// GetPet returns one pet with its full clinical record.
func (h *PetHandler) GetPet(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	petID, err := pathUUID(c, "petID")
	if err != nil {
		return err
	}

	detail, err := h.uc.GetPet(c.Request().Context(), id, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail, "Mascota obtenida")
}

// UpdatePet updates the pet's editable fields, including its photo.
func (h *PetHandler) UpdatePet(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	petID, err := pathUUID(c, "petID")
	if err != nil {
		return err
	}

	var input usecase.UpdatePetInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de mascota inválidos")
	}

	photo, cleanup, err := formFile(c, "photo")
	if err != nil {
		return err
	}
	defer cleanup()
	input.Photo = photo

	pet, err := h.uc.UpdatePet(c.Request().Context(), id, petID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pet, "Mascota actualizada")
}

// DeletePet removes a pet, deactivating it when it still has active diet
// requests.
func (h *PetHandler) DeletePet(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	petID, err := pathUUID(c, "petID")
	if err != nil {
		return err
	}

	if err := h.uc.DeletePet(c.Request().Context(), id, petID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Mascota eliminada")
}

// ListAllergies returns the pet's allergies with their catalog names.
func (h *PetHandler) ListAllergies(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	petID, err := pathUUID(c, "petID")
	if err != nil {
		return err
	}

	allergies, err := h.uc.ListAllergies(c.Request().Context(), id, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, allergies, "Alergias obtenidas")
}

// AddAllergy links a catalog allergy to the pet.
func (h *PetHandler) AddAllergy(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	petID, err := pathUUID(c, "petID")
	if err != nil {
		return err
	}

	var input usecase.AddAllergyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de alergia inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	allergy, err := h.uc.AddAllergy(c.Request().Context(), id, petID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, allergy, "Alergia registrada")
}

// ListConditions returns the pet's diagnosed conditions.
func (h *PetHandler) ListConditions(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	petID, err := pathUUID(c, "petID")
	if err != nil {
		return err
	}

	conditions, err := h.uc.ListConditions(c.Request().Context(), id, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, conditions, "Condiciones obtenidas")
}

// AddCondition records a diagnosed condition for the pet.
func (h *PetHandler) AddCondition(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	petID, err := pathUUID(c, "petID")
	if err != nil {
		return err
	}

	var input usecase.AddConditionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de condición inválidos")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	condition, err := h.uc.AddCondition(c.Request().Context(), id, petID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, condition, "Condición registrada")
}

// ListPrescriptions returns the pet's prescriptions, newest first.
func (h *PetHandler) ListPrescriptions(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	petID, err := pathUUID(c, "petID")
	if err != nil {
		return err
	}

	prescriptions, err := h.uc.ListPrescriptions(c.Request().Context(), id, petID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, prescriptions, "Recetas obtenidas")
}
