package content

import (
	"errors"
	"fmt"
)

// ErrMissingFrontMatter is returned when a content file does not begin with
// a front-matter fence.
var ErrMissingFrontMatter = errors.New("content: missing front matter")

// ErrMalformedFrontMatter is returned when an opening fence has no matching
// closing fence, or a line inside the block is not a key-value pair.
var ErrMalformedFrontMatter = errors.New("content: malformed front matter")

// MissingFieldError reports a required front-matter key that is absent.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("content: missing required field %q", e.Key)
}

// FieldTypeError reports a front-matter value that does not have the
// expected semantic type.
type FieldTypeError struct {
	Key  string
	Want string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("content: field %q is not a valid %s", e.Key, e.Want)
}
