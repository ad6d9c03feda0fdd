// Package attr coerces raw declaration attribute text into typed values.
//
// Every parser follows the same recovery rule: empty input keeps the current
// value, unparsable input substitutes the documented default and reports
// false so the caller can record the substitution. Nothing here fails.
package attr

import (
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Bool parses "true"/"false" case-insensitively. Empty input yields def.
// Anything else yields false and ok=false.
func Bool(raw string, def bool) (v bool, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def, true
	}
	if strings.EqualFold(s, "true") {
		return true, true
	}
	return false, strings.EqualFold(s, "false")
}

// Float parses a decimal number using invariant formatting.
func Float(raw string, cur, def float64) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return cur, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def, false
	}
	return v, true
}

// Int parses a base-10 integer.
func Int(raw string, cur, def int) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return cur, true
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def, false
	}
	return v, true
}

// Ticks parses a list of numbers separated by spaces, commas or semicolons.
// A single bad entry discards the whole list.
func Ticks(raw string, cur []float64) ([]float64, bool) {
	if strings.TrimSpace(raw) == "" {
		return cur, true
	}
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ' ' || r == ',' || r == ';'
	})
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// Color parses "#RRGGBB" or "#AARRGGBB". The zero value is transparent.
func Color(raw string) (color.NRGBA, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return color.NRGBA{}, true
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, false
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	c := color.NRGBA{A: 0xff}
	if len(s) == 8 {
		c.A = uint8(n >> 24)
	}
	c.R = uint8(n >> 16)
	c.G = uint8(n >> 8)
	c.B = uint8(n)
	return c, true
}

// Range is a min/current/max triple.
type Range struct {
	Min, Current, Max float64
}

// Normalize enforces Min <= Current <= Max. An inverted or non-finite bound
// pair resets both bounds to the defaults; a current value outside the bounds
// resets to Min. Normalizing twice is a no-op.
func (r Range) Normalize(defMin, defMax float64) Range {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || r.Max < r.Min {
		r.Min, r.Max = defMin, defMax
	}
	if math.IsNaN(r.Current) || r.Current < r.Min || r.Current > r.Max {
		r.Current = r.Min
	}
	return r
}

// Valid reports whether the invariant already holds.
func (r Range) Valid() bool {
	return r.Min <= r.Current && r.Current <= r.Max
}
