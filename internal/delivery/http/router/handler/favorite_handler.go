package handler

import (
	"log/slog"
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for favorite dish handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, logger: logger}
}

// AddFavorite marks a dish as favorite. Adding it twice is a no-op.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	dishID, err := pathUUID(c, "dishID")
	if err != nil {
		return err
	}

	if err := h.uc.AddFavorite(c.Request().Context(), id, dishID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Plato agregado a favoritos")
}

// RemoveFavorite removes a dish from the favorites.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	dishID, err := pathUUID(c, "dishID")
	if err != nil {
		return err
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), id, dishID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Plato eliminado de favoritos")
}

// ListFavorites returns the customer's favorite dishes, newest first.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "Favoritos obtenidos")
}

// IsFavorite reports whether the dish is in the customer's favorites.
func (h *FavoriteHandler) IsFavorite(c echo.Context) error {
	id, err := accountID(c)
	if err != nil {
		return err
	}

	dishID, err := pathUUID(c, "dishID")
	if err != nil {
		return err
	}

	favorite, err := h.uc.IsFavorite(c.Request().Context(), id, dishID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_favorite": favorite}, "Estado de favorito obtenido")
}
