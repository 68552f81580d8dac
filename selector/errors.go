package selector

import "errors"

var (
	// ErrDuplicatePart indicates second element, id or pseudo-element in a
	// single selector.
	ErrDuplicatePart = errors.New("element, id, and pseudo-element must each occur at most once")

	// ErrOrder indicates selector part added after a part which must follow it.
	ErrOrder = errors.New("selector parts must appear in order: element, id, class, attribute, pseudo-class, pseudo-element")
)

// PartError describes rejected selector part. Its message is always the
// message of the wrapped sentinel, use errors.Is to tell kinds apart.
type PartError struct {
	Category Category
	Value    string
	Err      error
}

func (e *PartError) Error() string {
	return e.Err.Error()
}

func (e *PartError) Unwrap() error {
	return e.Err
}
