package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrHomeNotFound indicates the user's home directory could not be determined
	ErrHomeNotFound = errors.New("could not determine HOME directory")

	// ErrKeyNotFound indicates the named SSH key does not exist
	ErrKeyNotFound = errors.New("SSH key not found")

	// ErrLaunchFailed indicates the git executable could not be started
	ErrLaunchFailed = errors.New("failed to execute git command")

	// ErrCloneFailed indicates git ran but did not exit successfully
	ErrCloneFailed = errors.New("git clone failed")
)

// EnvironmentError is returned when the home directory is unavailable.
type EnvironmentError struct {
	Err error
}

func (e *EnvironmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", ErrHomeNotFound, e.Err)
	}
	return ErrHomeNotFound.Error()
}

func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

func (e *EnvironmentError) Is(target error) bool {
	return target == ErrHomeNotFound
}

// NewEnvironmentError creates a new EnvironmentError
func NewEnvironmentError(err error) *EnvironmentError {
	return &EnvironmentError{Err: err}
}

// KeyNotFoundError names both the requested key and the path that was checked.
type KeyNotFoundError struct {
	KeyName string
	Path    string
	Err     error
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("SSH key '%s' not found at path: %s", e.KeyName, e.Path)
}

func (e *KeyNotFoundError) Unwrap() error {
	return e.Err
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// NewKeyNotFoundError creates a new KeyNotFoundError
func NewKeyNotFoundError(keyName, path string, err error) *KeyNotFoundError {
	return &KeyNotFoundError{
		KeyName: keyName,
		Path:    path,
		Err:     err,
	}
}

// ChildLaunchError is returned when the clone process could not be started
type ChildLaunchError struct {
	Program string
	Err     error
}

func (e *ChildLaunchError) Error() string {
	return fmt.Sprintf("%s: %v", ErrLaunchFailed, e.Err)
}

func (e *ChildLaunchError) Unwrap() error {
	return e.Err
}

func (e *ChildLaunchError) Is(target error) bool {
	return target == ErrLaunchFailed
}

// NewChildLaunchError creates a new ChildLaunchError
func NewChildLaunchError(program string, err error) *ChildLaunchError {
	return &ChildLaunchError{
		Program: program,
		Err:     err,
	}
}

// ChildFailureError is returned when the clone process ran but failed.
// HasCode is false when the process was terminated without an exit code.
type ChildFailureError struct {
	ExitCode int
	HasCode  bool
}

func (e *ChildFailureError) Error() string {
	if !e.HasCode {
		return fmt.Sprintf("%s with no exit code", ErrCloneFailed)
	}
	return fmt.Sprintf("%s with exit code: %d", ErrCloneFailed, e.ExitCode)
}

func (e *ChildFailureError) Is(target error) bool {
	return target == ErrCloneFailed
}

// NewChildFailureError creates a new ChildFailureError
func NewChildFailureError(exitCode int, hasCode bool) *ChildFailureError {
	return &ChildFailureError{
		ExitCode: exitCode,
		HasCode:  hasCode,
	}
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
