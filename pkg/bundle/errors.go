package bundle

import (
	"errors"
	"fmt"

	"fib/pkg/language"
)

// Sentinel errors for invalid requests. They are always wrapped in a
// *UserInputError by Run.
var (
	ErrEmptyOutput          = errors.New("output file name cannot be empty")
	ErrNoLanguagesSpecified = language.ErrNoLanguagesSpecified
	ErrNoValidExtensions    = language.ErrNoValidExtensions
)

// UserInputError reports a request that was rejected before any file was
// read or written.
type UserInputError struct {
	Err error
}

func (e *UserInputError) Error() string {
	if e == nil || e.Err == nil {
		return "invalid input"
	}
	return "invalid input: " + e.Err.Error()
}

func (e *UserInputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WriteErrorKind classifies a failure while producing the bundle.
type WriteErrorKind string

const (
	KindCreateOutputDir WriteErrorKind = "create_output_dir"
	KindPermission      WriteErrorKind = "permission"
	KindNotFound        WriteErrorKind = "not_found"
	KindIO              WriteErrorKind = "io"
)

// WriteError wraps any failure that happened while writing the bundle.
type WriteError struct {
	Kind WriteErrorKind
	Path string // Path being written or created.
	Err  error
}

func (e *WriteError) Error() string {
	if e == nil {
		return "<nil>"
	}

	var msg string
	switch e.Kind {
	case KindCreateOutputDir:
		msg = fmt.Sprintf("cannot create directory: %s", e.Path)
	case KindPermission:
		msg = fmt.Sprintf("no write permissions at location: %s", e.Path)
	case KindNotFound:
		msg = fmt.Sprintf("directory not found: %s", e.Path)
	default:
		msg = fmt.Sprintf("error writing file %s", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *WriteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsWriteKind reports whether err is a *WriteError of the given kind.
func IsWriteKind(err error, kind WriteErrorKind) bool {
	var we *WriteError
	if errors.As(err, &we) {
		return we.Kind == kind
	}
	return false
}
