package league

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Handlers translate them to HTTP statuses; the
// wrapped message becomes the response detail.
var (
	ErrNotFound = errors.New("not found")
	ErrRule     = errors.New("rule violation")
)

// NotFoundf wraps ErrNotFound with a formatted detail.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Rulef wraps ErrRule with a formatted detail.
func Rulef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrRule, fmt.Sprintf(format, args...))
}

// Detail strips the sentinel prefix from a domain error so the client sees
// only the human-readable part.
func Detail(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{ErrNotFound, ErrRule} {
		prefix := sentinel.Error() + ": "
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
