package feed

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedEntry = errors.New("malformed entry")
	ErrNotAtom        = errors.New("not an Atom feed")
)

// MalformedEntryError reports an entry missing a required element, or
// carrying one that cannot be parsed.
type MalformedEntryError struct {
	Entry string
	Field string
	Err   error
}

func (e *MalformedEntryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed entry %s: invalid %s: %v", e.Entry, e.Field, e.Err)
	}
	return fmt.Sprintf("malformed entry %s: missing %s", e.Entry, e.Field)
}

func (e *MalformedEntryError) Is(target error) bool {
	return target == ErrMalformedEntry
}

func (e *MalformedEntryError) Unwrap() error {
	return e.Err
}

func missing(entry *Entry, field string) error {
	return &MalformedEntryError{Entry: entry.Label(), Field: field}
}
