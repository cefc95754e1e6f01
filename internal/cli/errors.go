// Package cli implements the command-line interface.
package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by agents.
const (
	// Config errors
	ErrConfigInvalid = "CONFIG_INVALID"

	// File errors
	ErrFileNotFound   = "FILE_NOT_FOUND"
	ErrFileExists     = "FILE_EXISTS"
	ErrFileReadError  = "FILE_READ_ERROR"
	ErrFileWriteError = "FILE_WRITE_ERROR"

	// Pool and project errors
	ErrPoolInvalid    = "POOL_INVALID"
	ErrProjectInvalid = "PROJECT_INVALID"

	// Object errors
	ErrObjectNotFound = "OBJECT_NOT_FOUND"
	ErrIDInUse        = "ID_IN_USE"
	ErrIDReserved     = "ID_RESERVED"
	ErrTypeNotFound   = "TYPE_NOT_FOUND"

	// Naming errors
	ErrNameInvalid = "NAME_INVALID"

	// Validation errors
	ErrValidationFailed = "VALIDATION_FAILED"

	// Input errors
	ErrInvalidInput    = "INVALID_INPUT"
	ErrMissingArgument = "MISSING_ARGUMENT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Warning codes for validation findings live in internal/check; the CLI
// surfaces them verbatim.
