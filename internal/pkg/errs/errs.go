package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches a sentinel while preserving the original cause for
// logging. Marks are only visible to Is below, not to the standard
// library's errors.Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether reference is in err's chain or mark set. All
// sentinel matching goes through here so marked causes are recognized.
func Is(err error, reference error) bool {
	return cr.Is(err, reference)
}
