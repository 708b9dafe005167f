/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when a referenced handle, ID or file does not exist
	ErrNotFound = errors.New("object not found")

	// ErrAlreadyExists is returned when registering a handle that is already taken
	ErrAlreadyExists = errors.New("object already exists")

	// ErrProtected is returned when a delete is attempted on a protected handle
	ErrProtected = errors.New("object is protected")

	// ErrParse is returned when a document cannot be parsed
	ErrParse = errors.New("document parse failed")

	// ErrDirectoryMissing is returned when a save target directory is absent
	ErrDirectoryMissing = errors.New("directory does not exist")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents an error when an object, handle or file is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// AlreadyExistsError represents an error when a handle is already registered
type AlreadyExistsError struct {
	Type string
	Key  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with handle %q already registered", e.Type, e.Key)
}

func (e *AlreadyExistsError) Is(target error) bool {
	return target == ErrAlreadyExists
}

// ProtectedError represents a failed removal of a protected/default object
type ProtectedError struct {
	Type   string
	Handle string
}

func (e *ProtectedError) Error() string {
	return fmt.Sprintf("%s with handle %q is protected and cannot be removed", e.Type, e.Handle)
}

func (e *ProtectedError) Is(target error) bool {
	return target == ErrProtected
}

// ParseError represents a failure to parse a document file
type ParseError struct {
	File  string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse %q: %v", e.File, e.Cause)
	}
	return fmt.Sprintf("failed to parse %q", e.File)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// DirectoryMissingError represents a save aborted because the target directory is absent
type DirectoryMissingError struct {
	Directory string
}

func (e *DirectoryMissingError) Error() string {
	return fmt.Sprintf("destination directory %q does not exist", e.Directory)
}

func (e *DirectoryMissingError) Is(target error) bool {
	return target == ErrDirectoryMissing
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(objectType, key string) error {
	return &NotFoundError{Type: objectType, Key: key}
}

// NewAlreadyExistsError creates a new AlreadyExistsError
func NewAlreadyExistsError(objectType, key string) error {
	return &AlreadyExistsError{Type: objectType, Key: key}
}

// NewProtectedError creates a new ProtectedError
func NewProtectedError(objectType, handle string) error {
	return &ProtectedError{Type: objectType, Handle: handle}
}

// NewParseError creates a new ParseError wrapping the underlying cause
func NewParseError(file string, cause error) error {
	return &ParseError{File: file, Cause: cause}
}

// NewDirectoryMissingError creates a new DirectoryMissingError
func NewDirectoryMissingError(directory string) error {
	return &DirectoryMissingError{Directory: directory}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsProtected checks if an error is a protected object error
func IsProtected(err error) bool {
	return errors.Is(err, ErrProtected)
}

// IsParseError checks if an error is a document parse error
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

// IsDirectoryMissing checks if an error is a missing directory error
func IsDirectoryMissing(err error) bool {
	return errors.Is(err, ErrDirectoryMissing)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
