package pathtrack

import "github.com/pkg/errors"

// ErrInvalidQuery is returned for names and segments that cannot name a
// filesystem entry: empty strings, "." and "..", separator-only segments,
// and bare names containing a separator.
var ErrInvalidQuery = errors.New("invalid query")

// ListError reports a directory that could not be listed. It aborts the
// whole search.
type ListError struct {
	Path string
	Err  error
}

func (e *ListError) Error() string {
	return "cannot list " + e.Path + ": " + e.Err.Error()
}

func (e *ListError) Unwrap() error {
	return e.Err
}
