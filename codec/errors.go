package codec

import "fmt"

// DecodeError reports a JSON value that cannot be interpreted as the
// target field type. Absence (JSON null, or a field-specific sentinel)
// is never a DecodeError.
type DecodeError struct {
	Reason string
	Value  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Value)
}
