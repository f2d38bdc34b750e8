package palm

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common layout failure conditions.
var (
	ErrPageOutOfRange  = errors.New("palm: page index beyond document page count")
	ErrInvalidGeometry = errors.New("palm: pos and size must have two components and size must not be negative")
	ErrNoDirectory     = errors.New("palm: no directory configured for fileset")
	ErrInvalidParam    = errors.New("palm: invalid parameter")
	ErrUnsupported     = errors.New("palm: unsupported operation")
	ErrUnknownStyle    = errors.New("palm: unknown paragraph style")
)

// Error represents an error that occurred during a specific canvas or
// configuration operation. It wraps an underlying error and includes the
// operation name for context.
type Error struct {
	Op  string // operation name, e.g. "Open", "LoadImage", "Output"
	Err error  // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("palm.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("palm.%s: unknown error", e.Op)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error wrapping err with operation context.
func NewError(op string, err error) *Error {
	return &Error{Op: op, Err: err}
}

// ParseError reports a layout file that could not be read or is not valid
// JSON. No element has been placed when it is returned.
type ParseError struct {
	Path string // empty when parsing from memory
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("palm: reading layout %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("palm: reading layout: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// StructuralError reports a descriptor page that has no counterpart in the
// target document. Elements of earlier pages stay placed.
type StructuralError struct {
	Page      int // zero-based descriptor page index
	PageCount int // pages available in the document
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("palm: layout page %d: document has only %d page(s)", e.Page+1, e.PageCount)
}

func (e *StructuralError) Unwrap() error {
	return ErrPageOutOfRange
}

// PlacementError reports a single element that could not be created.
type PlacementError struct {
	Page int    // zero-based page index
	Elem int    // zero-based element index within the page
	Kind string // descriptor type, e.g. "pic"
	Err  error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("palm: page %d, element %d (%s): %v", e.Page+1, e.Elem+1, e.Kind, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}

// FailureSummary collects the placement failures of a pass that continued
// past failing elements.
type FailureSummary struct {
	Failures []*PlacementError
}

func (s *FailureSummary) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "palm: %d element(s) could not be placed", len(s.Failures))
	for _, f := range s.Failures {
		b.WriteString("\n  ")
		b.WriteString(f.Error())
	}
	return b.String()
}

func (s *FailureSummary) Unwrap() []error {
	errs := make([]error, len(s.Failures))
	for i, f := range s.Failures {
		errs[i] = f
	}
	return errs
}
