package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
	}{
		{"whole seconds", time.Date(2024, 1, 15, 9, 45, 30, 0, time.UTC)},
		{"milliseconds", time.Date(2024, 1, 15, 9, 45, 30, 500000000, time.UTC)},
		{"full nanoseconds", time.Date(2023, 12, 1, 15, 30, 45, 123456789, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(NewTimestamp(tt.in))
			require.NoError(t, err)

			var out Timestamp
			require.NoError(t, json.Unmarshal(data, &out))
			require.True(t, out.Equal(tt.in), "round trip changed %s to %s", tt.in, out.Time)
		})
	}
}

func TestTimestamp_EncodeOmitsEmptyFraction(t *testing.T) {
	data, err := json.Marshal(NewTimestamp(time.Date(2024, 1, 15, 9, 45, 30, 0, time.UTC)))
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15T09:45:30Z"`, string(data))
}

func TestTimestamp_EncodeNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	in := time.Date(2024, 1, 15, 12, 45, 30, 0, loc)

	data, err := json.Marshal(NewTimestamp(in))
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-15T09:45:30Z"`, string(data))
}

func TestTimestamp_DecodePreservesFullPrecision(t *testing.T) {
	var out Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2023-12-01T15:30:45.123456789Z"`), &out))
	require.Equal(t, 123456789, out.Nanosecond())

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, `"2023-12-01T15:30:45.123456789Z"`, string(data))
}

func TestTimestamp_DecodeAcceptsExplicitOffset(t *testing.T) {
	var out Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15T12:45:30+03:00"`), &out))
	require.True(t, out.Equal(time.Date(2024, 1, 15, 9, 45, 30, 0, time.UTC)))
}

func TestTimestamp_AbsenceSymmetry(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	require.Equal(t, "null", string(data))

	var out Timestamp
	require.NoError(t, json.Unmarshal(data, &out))
	assert.True(t, out.IsZero())
}

func TestTimestamp_ZeroSentinelMeansUnset(t *testing.T) {
	var out Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"0"`), &out))
	assert.True(t, out.IsZero())
}

func TestTimestamp_DecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"double zero is not the sentinel", `"00"`},
		{"fractional zero is not the sentinel", `"0.0"`},
		{"zone-naive", `"2024-01-15T09:45:30"`},
		{"impossible date", `"2024-13-45"`},
		{"garbage", `"yesterday"`},
		{"empty string", `""`},
		{"number", `123`},
		{"unix seconds as number", `1718000000`},
		{"bool", `true`},
		{"array", `["2024-01-15T09:45:30Z"]`},
		{"object", `{"t":"2024-01-15T09:45:30Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out Timestamp
			err := json.Unmarshal([]byte(tt.input), &out)
			require.Error(t, err)

			var derr *DecodeError
			require.ErrorAs(t, err, &derr)
			assert.True(t, out.IsZero())
		})
	}
}

func TestTimestamp_ErrorCarriesOffendingValue(t *testing.T) {
	var out Timestamp
	err := json.Unmarshal([]byte(`"2024-13-45"`), &out)
	require.Error(t, err)

	var derr *DecodeError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "invalid RFC3339 timestamp", derr.Reason)
	assert.Equal(t, "2024-13-45", derr.Value)
}

// Mixed-field decode mirrors how the codecs are actually consumed:
// opted-in fields inside a larger response object.
func TestCodecs_MixedFieldDecode(t *testing.T) {
	type window struct {
		Count IntString `json:"count"`
		From  Timestamp `json:"from"`
		To    Timestamp `json:"to"`
	}

	var w window
	require.NoError(t, json.Unmarshal([]byte(`{"count": "25", "from": "2024-01-15T09:45:30Z", "to": "0"}`), &w))

	assert.Equal(t, NewIntString(25), w.Count)
	assert.True(t, w.From.Equal(time.Date(2024, 1, 15, 9, 45, 30, 0, time.UTC)))
	assert.True(t, w.To.IsZero())
}
