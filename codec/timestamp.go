package codec

import (
	"bytes"
	"encoding/json"
	"time"
)

// timeUnset is what the v20 API sends instead of JSON null for
// timestamp fields that have no value, e.g. resettablePLTime on an
// account that was never reset.
const timeUnset = "0"

// Timestamp is an optional instant carried as an RFC3339 string on the
// wire. Both JSON null and the literal string "0" decode to the unset
// state. Set values marshal as RFC3339 in UTC and keep whatever
// sub-second precision the instant holds, down to nanoseconds.
//
// The zero value means "not set"; check with IsZero.
type Timestamp struct {
	time.Time
}

// NewTimestamp returns a set Timestamp holding t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.UTC().Format(time.RFC3339Nano))
}

func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	ts.Time = time.Time{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Reason: "unsupported type for timestamp field", Value: string(data)}
	}

	// Literal comparison only: "00" and "0.0" must fall through to the
	// RFC3339 parser and fail there.
	if s == timeUnset {
		return nil
	}

	// RFC3339Nano accepts 0-9 fractional digits and requires an explicit
	// zone, so zone-naive input is rejected rather than assumed UTC.
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return &DecodeError{Reason: "invalid RFC3339 timestamp", Value: s}
	}

	ts.Time = t
	return nil
}
