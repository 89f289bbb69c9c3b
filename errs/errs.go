// Package errs defines the error kinds from spec.md §7 as sentinel values,
// wrapped with call-site context via github.com/pkg/errors. Callers
// distinguish kinds with errors.Is against the sentinels below.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel error kinds. InvalidInput and IoError are reported to the CLI
// and cause a clean, non-zero exit. CoefficientOverflow and
// MissingHuffmanCode are unrecoverable invariant violations: they indicate
// input that stresses the encoder outside baseline limits, or a bug in the
// run-length stage, respectively, and abort the encode with a diagnostic.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrIO                    = errors.New("i/o error")
	ErrCoefficientOverflow   = errors.New("coefficient overflow")
	ErrMissingHuffmanCode    = errors.New("missing huffman code")
)

// InvalidInputf wraps ErrInvalidInput with a formatted message.
func InvalidInputf(format string, args ...any) error {
	return errors.Wrap(ErrInvalidInput, fmt.Sprintf(format, args...))
}

// IOf wraps ErrIO with a formatted message.
func IOf(format string, args ...any) error {
	return errors.Wrap(ErrIO, fmt.Sprintf(format, args...))
}

// CoefficientOverflowf wraps ErrCoefficientOverflow with a formatted message.
func CoefficientOverflowf(format string, args ...any) error {
	return errors.Wrap(ErrCoefficientOverflow, fmt.Sprintf(format, args...))
}

// MissingHuffmanCodef wraps ErrMissingHuffmanCode with a formatted message.
func MissingHuffmanCodef(format string, args ...any) error {
	return errors.Wrap(ErrMissingHuffmanCode, fmt.Sprintf(format, args...))
}
