package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMode = errors.New("mode must be 'scene' or 'all'")
	ErrJobNotFound = errors.New("job not found")
)

// maxDiagnostic caps how much external-tool output an ExtractionError
// carries, so error responses stay terse.
const maxDiagnostic = 200

// ExtractionError reports a failed ffmpeg invocation along with a bounded
// slice of its diagnostic output.
type ExtractionError struct {
	Diagnostic string
	Err        error
}

func NewExtractionError(err error, output []byte) *ExtractionError {
	diag := string(output)
	if len(diag) > maxDiagnostic {
		diag = diag[:maxDiagnostic]
	}
	return &ExtractionError{Diagnostic: diag, Err: err}
}

func (e *ExtractionError) Error() string {
	if e.Diagnostic == "" {
		return fmt.Sprintf("extraction failed: %v", e.Err)
	}
	return fmt.Sprintf("extraction failed: %v: %s", e.Err, e.Diagnostic)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
