// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"github.com/PaulCari/PawPals/internal/delivery/http/response"
	domainerrors "github.com/PaulCari/PawPals/internal/domain/errors"
	"github.com/PaulCari/PawPals/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Servicio disponible")
}

// accountID extracts the authenticated account id stored by the auth
// middleware.
func accountID(c echo.Context) (uuid.UUID, error) {
	id, ok := c.Get("accountID").(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrTokenInvalid
	}

	return id, nil
}

// pathUUID parses a path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("el parámetro '" + name + "' debe ser un UUID")
	}

	return id, nil
}

// formFile opens an optional multipart file field. The cleanup func is
// always safe to call; a missing field yields a nil upload.
func formFile(c echo.Context, field string) (*usecase.FileUpload, func(), error) {
	noop := func() {}

	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, noop, nil
		}

		return nil, noop, domainerrors.ErrValidationFailed.WithDetails("archivo inválido en el campo '" + field + "'")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, noop, errors.Wrap(err, "failed to open uploaded file")
	}

	return &usecase.FileUpload{Filename: fileHeader.Filename, Content: src}, func() { src.Close() }, nil
}
