package errors

import (
	"net/http"

	"github.com/PaulCari/PawPals/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"Correo no registrado",
		"",
	)

	ErrAccountInactive = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"La cuenta no está activa",
		"",
	)

	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_REGISTERED",
		"El correo ya está registrado",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Contraseña incorrecta",
		"",
	)

	ErrRoleNotAssigned = NewBaseError(
		http.StatusBadRequest,
		"ROLE_NOT_ASSIGNED",
		"No se ha asignado un rol al usuario",
		"",
	)

	ErrRoleNotConfigured = NewBaseError(
		http.StatusInternalServerError,
		"ROLE_NOT_CONFIGURED",
		"Rol de cliente no configurado en el sistema",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Error al procesar la contraseña",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Token inválido o expirado",
		"",
	)

	// Customer-related errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Cliente no encontrado",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Dirección no encontrada o inactiva",
		"",
	)

	ErrAddressNotOwned = NewBaseError(
		http.StatusBadRequest,
		"ADDRESS_NOT_OWNED",
		"La dirección no es válida para este cliente",
		"",
	)

	// Pet-related errors
	ErrPetNotFound = NewBaseError(
		http.StatusNotFound,
		"PET_NOT_FOUND",
		"Mascota no encontrada o no pertenece al cliente",
		"",
	)

	ErrSpeciesNotFound = NewBaseError(
		http.StatusNotFound,
		"SPECIES_NOT_FOUND",
		"Especie no encontrada",
		"",
	)

	ErrInvalidPetSex = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PET_SEX",
		"El sexo debe ser 'M' (macho) o 'H' (hembra)",
		"",
	)

	ErrInvalidImageFormat = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMAGE_FORMAT",
		"Formato de imagen no permitido",
		"",
	)

	ErrAllergyNotFound = NewBaseError(
		http.StatusNotFound,
		"ALLERGY_NOT_FOUND",
		"Alergia no encontrada en catálogo de especies",
		"",
	)

	ErrAllergyAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"ALLERGY_ALREADY_REGISTERED",
		"La mascota ya tiene registrada esta alergia",
		"",
	)

	// Catalog-related errors
	ErrDishNotFound = NewBaseError(
		http.StatusNotFound,
		"DISH_NOT_FOUND",
		"Plato no encontrado",
		"",
	)

	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Pedido no encontrado",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"El carrito no puede estar vacío",
		"",
	)

	ErrSpecializedOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"SPECIALIZED_ORDER_NOT_FOUND",
		"Solicitud no encontrada",
		"",
	)

	ErrMalformedListPayload = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_LIST_PAYLOAD",
		"Formato JSON inválido",
		"",
	)

	// Payment-related errors
	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"Pago no encontrado",
		"",
	)

	ErrPaymentAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PAYMENT_ALREADY_EXISTS",
		"Este pedido ya tiene un pago registrado",
		"",
	)

	ErrGatewayNotFound = NewBaseError(
		http.StatusNotFound,
		"GATEWAY_NOT_FOUND",
		"Método de pago no encontrado",
		"",
	)

	// Subscription-related errors
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"El plan seleccionado no existe o no está activo",
		"",
	)

	ErrNoActiveSubscription = NewBaseError(
		http.StatusBadRequest,
		"NO_ACTIVE_SUBSCRIPTION",
		"El cliente no tiene ninguna suscripción activa para cancelar",
		"",
	)

	// Favorite-related errors
	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"Este plato no está en tus favoritos",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Los datos enviados no son válidos",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acceso denegado",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Conflicto de recursos",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Error al ejecutar la operación en base de datos"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
