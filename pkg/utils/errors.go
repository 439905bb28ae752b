package utils

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the category of an error
type ErrorCategory int

const (
	CategorySystem ErrorCategory = iota
	CategoryNetwork
	CategoryFileSystem
	CategoryConfiguration
	CategoryWorkspace
	CategoryUser
)

// StructuredError represents a standardized error with a stable code and
// category so the command boundary can pick the right user-facing message.
type StructuredError struct {
	Code      string
	Message   string
	Category  ErrorCategory
	RootCause error
}

// Error implements the error interface
func (e *StructuredError) Error() string {
	if e.RootCause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.RootCause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for compatibility with errors.Is and errors.As
func (e *StructuredError) Unwrap() error {
	return e.RootCause
}

// NewStructuredError creates a new structured error
func NewStructuredError(code, message string, category ErrorCategory, rootCause error) *StructuredError {
	return &StructuredError{
		Code:      code,
		Message:   message,
		Category:  category,
		RootCause: rootCause,
	}
}

// NewConfigurationError reports a missing or invalid configuration value.
func NewConfigurationError(message string, rootCause error) *StructuredError {
	return NewStructuredError("CONFIG_ERROR", message, CategoryConfiguration, rootCause)
}

// NewUserInputError reports absent or cancelled user input. Callers treat
// it as a notice rather than a fault.
func NewUserInputError(message string) *StructuredError {
	return NewStructuredError("USER_INPUT", message, CategoryUser, nil)
}

// NewWorkspaceError reports a missing or unusable workspace root.
func NewWorkspaceError(message string, rootCause error) *StructuredError {
	return NewStructuredError("WORKSPACE_ERROR", message, CategoryWorkspace, rootCause)
}

// NewFileSystemError reports an I/O failure while walking or reading the
// workspace tree.
func NewFileSystemError(operation string, rootCause error) *StructuredError {
	return NewStructuredError(
		"FS_ERROR",
		fmt.Sprintf("filesystem error during %s", operation),
		CategoryFileSystem,
		rootCause,
	)
}

// NewNetworkError reports a transport or service failure from the remote
// completion endpoint.
func NewNetworkError(message string, rootCause error) *StructuredError {
	return NewStructuredError("NETWORK_ERROR", message, CategoryNetwork, rootCause)
}

// CategoryOf classifies an arbitrary error, defaulting to CategorySystem
// for anything that is not a StructuredError.
func CategoryOf(err error) ErrorCategory {
	var se *StructuredError
	if errors.As(err, &se) {
		return se.Category
	}
	return CategorySystem
}

// UserMessage returns the human-readable message of a structured error,
// falling back to the raw error text.
func UserMessage(err error) string {
	var se *StructuredError
	if errors.As(err, &se) {
		if se.RootCause != nil {
			return fmt.Sprintf("%s: %v", se.Message, se.RootCause)
		}
		return se.Message
	}
	return err.Error()
}
