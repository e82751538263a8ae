// Package block extracts, normalizes, and replaces a managed block delimited by two markers in a text document.
package block

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedDocument is returned when a document does not contain a managed block.
var ErrMalformedDocument = errors.New("malformed document")

// MalformedError describes which marker could not be found.
type MalformedError struct {
	Marker string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: marker not found: %q", ErrMalformedDocument, e.Marker)
}

// Unwrap makes errors.Is(err, ErrMalformedDocument) true.
func (e *MalformedError) Unwrap() error {
	return ErrMalformedDocument
}

// Parts is a document split around its managed block.
// Markers are not part of any field.
type Parts struct {
	Prefix string
	Block  string
	Suffix string
}

// String reconstructs the document with the given markers.
func (p Parts) String(begin, end string) string {
	return p.Prefix + begin + p.Block + end + p.Suffix
}

// Repeated determines whether the begin marker occurs again after the managed block.
// Only the first block is ever managed.
func (p Parts) Repeated(begin string) bool {
	return strings.Contains(p.Suffix, begin)
}

// Locate splits a document at the first begin marker and the first end marker following it.
func Locate(doc, begin, end string) (Parts, error) {
	i := strings.Index(doc, begin)
	if i == -1 {
		return Parts{}, &MalformedError{Marker: begin}
	}

	prefix, rest := doc[:i], doc[i+len(begin):]

	j := strings.Index(rest, end)
	if j == -1 {
		return Parts{}, &MalformedError{Marker: end}
	}

	return Parts{
		Prefix: prefix,
		Block:  rest[:j],
		Suffix: rest[j+len(end):],
	}, nil
}
