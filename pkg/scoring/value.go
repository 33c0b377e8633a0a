package scoring

import (
	"encoding/json"
	"math"
)

// Value is a float64 that encodes NaN and infinities as JSON null.
// IEEE-754 results are passed through unchanged; JSON just has no
// literal for the non-finite ones.
type Value float64

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return appendValue(nil, float64(v))
}

// Scores is a list of scores whose non-finite entries encode as null.
type Scores []float64

// MarshalJSON implements json.Marshaler. A nil list encodes as null,
// an empty one as [].
func (s Scores) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	buf := make([]byte, 0, 2+len(s)*8)
	buf = append(buf, '[')
	for i, f := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		var err error
		if buf, err = appendValue(buf, f); err != nil {
			return nil, err
		}
	}
	return append(buf, ']'), nil
}

func appendValue(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...), nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}
