package errors

import (
	"fmt"
)

// ErrorType represents different types of errors that can occur
type ErrorType int

const (
	ErrorTypeConfig ErrorType = iota
	ErrorTypeFileSystem
	ErrorTypeTrash
	ErrorTypeInstall
	ErrorTypeUI
)

// String returns a string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeConfig:
		return "config"
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypeTrash:
		return "trash"
	case ErrorTypeInstall:
		return "install"
	case ErrorTypeUI:
		return "ui"
	default:
		return "unknown"
	}
}

// AppError represents a structured application error
type AppError struct {
	Type      ErrorType
	Operation string
	Path      string
	Message   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s error in %s [%s]: %s", e.Type, e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("%s error in %s: %s", e.Type, e.Operation, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new configuration error
func NewConfigError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeConfig,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewFileSystemError creates a new filesystem error
func NewFileSystemError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeFileSystem,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewTrashError creates a new trash backend error
func NewTrashError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeTrash,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// NewInstallError creates a new service menu installation error
func NewInstallError(operation, path, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeInstall,
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// NewUIError creates a new UI error
func NewUIError(operation, message string, err error) *AppError {
	return &AppError{
		Type:      ErrorTypeUI,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
