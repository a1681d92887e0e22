package trace

import (
	"math"
	"strconv"
)

// Float is a float64 that survives JSON encoding when it is not finite.
// Failed evaluations are recorded as NaN, and encoding/json rejects NaN and
// ±Inf, so those are written as the strings "NaN", "+Inf" and "-Inf".
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}

	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = Float(v)

	return nil
}

// IsFinite reports whether f is neither NaN nor ±Inf.
func (f Float) IsFinite() bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Floats converts a vector.
func Floats(v []float64) []Float {
	if v == nil {
		return nil
	}
	out := make([]Float, len(v))
	for i, x := range v {
		out[i] = Float(x)
	}

	return out
}

// Grid converts a row-major matrix.
func Grid(rows [][]float64) [][]Float {
	out := make([][]Float, len(rows))
	for i, r := range rows {
		out[i] = Floats(r)
	}

	return out
}
