// Package validate implements field-level and record-level validation of
// genomic variants against the reference catalog.
package validate

import (
	"errors"
	"fmt"
)

// Kind categorizes a validation failure.
type Kind int

const (
	// KindUnknown is the zero value and never produced by a check.
	KindUnknown Kind = iota

	// Record-level failures.
	KindMissingField
	KindInvalidChromosome
	KindInvalidPosition
	KindPositionOutOfRange
	KindInvalidAssembly
	KindAltWithoutRef
	KindInvalidAllele

	// File-structure failures.
	KindFileNotFound
	KindBadExtension
	KindEmptyFile
	KindMissingVCFHeader
	KindInvalidColumnHeader
	KindUnreadableFile
)

var kindNames = map[Kind]string{
	KindUnknown:             "unknown",
	KindMissingField:        "missing_field",
	KindInvalidChromosome:   "invalid_chromosome",
	KindInvalidPosition:     "invalid_position",
	KindPositionOutOfRange:  "position_out_of_range",
	KindInvalidAssembly:     "invalid_assembly",
	KindAltWithoutRef:       "alt_without_ref",
	KindInvalidAllele:       "invalid_allele",
	KindFileNotFound:        "file_not_found",
	KindBadExtension:        "bad_extension",
	KindEmptyFile:           "empty_file",
	KindMissingVCFHeader:    "missing_vcf_header",
	KindInvalidColumnHeader: "invalid_column_header",
	KindUnreadableFile:      "unreadable_file",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is a validation failure with the specific failed rule's message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, if any (e.g. an I/O fault)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds an Error with a formatted message.
func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind carried by err, or KindUnknown if err is not a
// validation Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
