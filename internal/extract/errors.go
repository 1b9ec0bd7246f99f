// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"
)

// MalformedInputError reports an input document that does not have the
// expected shape: no block list, invalid JSON, or a status marker with no
// block after it.
type MalformedInputError struct {
	Reason string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Reason, e.Err)
	}
	return "malformed input: " + e.Reason
}

func (e *MalformedInputError) Unwrap() error { return e.Err }

// IncompleteExtractionError reports fields that never matched after every
// block was scanned.
type IncompleteExtractionError struct {
	// Missing lists the unresolved fields by their output names.
	Missing []string
}

func (e *IncompleteExtractionError) Error() string {
	return "incomplete extraction: missing " + strings.Join(e.Missing, ", ")
}

// DateParseError reports print date text that does not follow the
// "<day> de <month> de <year>" layout.
type DateParseError struct {
	Raw    string
	Reason string
	Err    error
}

func (e *DateParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing print date %q: %s: %v", e.Raw, e.Reason, e.Err)
	}
	return fmt.Sprintf("parsing print date %q: %s", e.Raw, e.Reason)
}

func (e *DateParseError) Unwrap() error { return e.Err }
