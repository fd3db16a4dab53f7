package params

import (
	"errors"
	"fmt"
)

// Error is a configuration error tied to one parameter. It is raised before
// any geometry is generated.
type Error struct {
	Param  string
	Detail string
}

func (e *Error) Error() string {
	if e.Param == "" {
		return "invalid parameters: " + e.Detail
	}
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Detail)
}

// Errorf builds an *Error for key.
func Errorf(key, format string, args ...any) *Error {
	return &Error{Param: key, Detail: fmt.Sprintf(format, args...)}
}

// Problems flattens err (which may be joined) into its *Error parts.
func Problems(err error) []*Error {
	if err == nil {
		return nil
	}
	var pe *Error
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*Error
		for _, e := range joined.Unwrap() {
			out = append(out, Problems(e)...)
		}
		return out
	}
	if errors.As(err, &pe) {
		return []*Error{pe}
	}
	return nil
}
