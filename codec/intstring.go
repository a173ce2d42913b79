package codec

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// IntString is an optional 32-bit integer whose wire representation is
// ambiguous: the v20 API documents stringified numeric identifiers but
// emits plain numbers for some of them. Decoding accepts both forms,
// encoding always produces the documented string form. The zero value
// means "not set" and marshals to JSON null.
type IntString struct {
	Value int32
	Valid bool
}

// NewIntString returns a set IntString holding v.
func NewIntString(v int32) IntString {
	return IntString{Value: v, Valid: true}
}

func (i IntString) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(strconv.FormatInt(int64(i.Value), 10))
}

func (i *IntString) UnmarshalJSON(data []byte) error {
	*i = IntString{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	// Ordered check: number first, then string-parse, else reject.
	var text string
	switch v := raw.(type) {
	case json.Number:
		text = v.String()
	case string:
		text = v
	default:
		return &DecodeError{Reason: "unsupported type for integer field", Value: string(data)}
	}

	// No trimming, no wraparound: anything strconv refuses is an error,
	// including out-of-int32-range values.
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return &DecodeError{Reason: "not a valid integer string", Value: text}
	}

	*i = IntString{Value: int32(n), Valid: true}
	return nil
}
