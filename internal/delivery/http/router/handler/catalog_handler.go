package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for the public dish catalog.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

// ListDishes returns the published dishes, optionally filtered by the
// category_id and species_id query parameters.
func (h *CatalogHandler) ListDishes(c echo.Context) error {
	categoryID, err := queryUUID(c, "category_id")
	if err != nil {
		return err
	}

	speciesID, err := queryUUID(c, "species_id")
	if err != nil {
		return err
	}

	dishes, err := h.uc.ListDishes(c.Request().Context(), categoryID, speciesID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dishes, "Catálogo obtenido")
}

// GetDish returns one dish with its category and species names.
func (h *CatalogHandler) GetDish(c echo.Context) error {
	dishID, err := pathUUID(c, "dishID")
	if err != nil {
		return err
	}

	dish, err := h.uc.GetDish(c.Request().Context(), dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dish, "Plato obtenido")
}

// queryUUID parses an optional UUID query parameter.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("el parámetro '" + name + "' debe ser un UUID")
	}

	return &id, nil
}
