package apperrors

import "net/http"

// Factories for wrapping repository sentinels into wire errors.

// ErrNotFound converts a missing-row condition (including rows the caller
// does not own) into a 404. Ownership mismatches must be indistinguishable
// from absence.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists reports a uniqueness violation as a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the generic 409 factory for invariant violations.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrNoOpUpdate reports a partial update whose payload contained no
// recognized fields. Distinct from NotFound: the record may well exist.
func ErrNoOpUpdate(err error, domain string) *AppError {
	return Wrap(err, CodeNoOpUpdate, domain, "Update payload contains no recognized fields", http.StatusBadRequest)
}

// ErrInvalidOrExpired reports a failed reset-code verify/consume.
func ErrInvalidOrExpired(err error) *AppError {
	return Wrap(err, CodeInvalidOrExpired, "password_reset", "Invalid or expired code", http.StatusBadRequest)
}

// Static errors reused across services.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials",
	http.StatusUnauthorized,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"auth",
	"Password must be at least 8 characters long",
	http.StatusBadRequest,
)

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrUnsupportedFileType = New(
	CodeValidationFailed,
	"validation",
	"File type is not allowed",
	http.StatusBadRequest,
)
