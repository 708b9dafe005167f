/*
Package errors provides semantic error types for the managedstore library.

The package defines the registry's failure taxonomy with specific types that
can be checked using the standard errors.Is() function or the provided helper
functions.

Common Errors:

	var (
	    ErrNotFound         = errors.New("object not found")
	    ErrAlreadyExists    = errors.New("object already exists")
	    ErrProtected        = errors.New("object is protected")
	    ErrParse            = errors.New("document parse failed")
	    ErrDirectoryMissing = errors.New("directory does not exist")
	    ErrInvalidInput     = errors.New("invalid input")
	)

Usage:

	// Check error type
	obj, err := mgr.CreateFromFile("cfg/chair.object_config.json", true)
	if err != nil {
	    if errors.IsParseError(err) {
	        // Malformed document, skip this file
	        return nil
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewNotFoundError("object attributes", "chair")
	err := errors.NewProtectedError("stage attributes", "default_stage")
	err := errors.NewDirectoryMissingError("/data/configs")

The error types implement the error interface and support wrapping, making
them compatible with Go's standard error handling patterns. The registry
itself never panics across its API boundary; every failure surfaces as one
of these errors (or a sentinel return value) plus a diagnostic log entry.
*/
package errors
