// Package params defines wizard parameters and the immutable, validated Set
// that generators consume.
//
// Keys are "<page>.<name>" in lower case, e.g. "antenna.turns" or
// "pads.drill_size". A Set only exists once every defined parameter is
// present and inside its range, so generators never clamp.
package params

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Unit describes how a parameter value is interpreted.
type Unit string

const (
	UnitMM      Unit = "mm"
	UnitInteger Unit = "integer"
	UnitString  Unit = "string"
)

// Def describes a single parameter. Min/Max bound numeric values (inclusive).
// When Choices is non-empty the value must be one of them and Min/Max are ignored.
type Def struct {
	Page    string
	Name    string
	Unit    Unit
	Default any
	Min     float64
	Max     float64
	Choices []int
	Help    string
}

// Key returns the lookup key of the parameter.
func (d Def) Key() string {
	return strings.ToLower(d.Page) + "." + d.Name
}

// Range renders the accepted values for humans.
func (d Def) Range() string {
	switch {
	case d.Unit == UnitString:
		return "any"
	case len(d.Choices) > 0:
		parts := make([]string, len(d.Choices))
		for i, c := range d.Choices {
			parts[i] = fmt.Sprint(c)
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		return fmt.Sprintf("[%g, %g]", d.Min, d.Max)
	}
}

// Defs is an ordered parameter list, one per wizard.
type Defs []Def

// Lookup finds a definition by key.
func (ds Defs) Lookup(key string) (Def, bool) {
	for _, d := range ds {
		if d.Key() == key {
			return d, true
		}
	}
	return Def{}, false
}

// Defaults returns a fresh raw value map holding every default.
func (ds Defs) Defaults() map[string]any {
	out := make(map[string]any, len(ds))
	for _, d := range ds {
		out[d.Key()] = d.Default
	}
	return out
}

type value struct {
	unit Unit
	f    float64
	i    int
	s    string
}

// Set is a validated parameter set. The zero Set is empty.
// A Set is never modified after Build returns it, so it can be shared freely.
type Set struct {
	values map[string]value
}

// Build validates raw against defs and returns the resulting Set.
// All problems are reported together, each as an *Error.
func Build(defs Defs, raw map[string]any) (Set, error) {
	var errs []error
	values := make(map[string]value, len(defs))

	for _, d := range defs {
		key := d.Key()
		v, ok := raw[key]
		if !ok {
			errs = append(errs, Errorf(key, "missing"))
			continue
		}
		val, err := coerce(d, v)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := checkRange(d, val); err != nil {
			errs = append(errs, err)
			continue
		}
		values[key] = val
	}

	for _, key := range slices.Sorted(maps.Keys(raw)) {
		if _, ok := defs.Lookup(key); !ok {
			errs = append(errs, Errorf(key, "unknown parameter"))
		}
	}

	if len(errs) > 0 {
		return Set{}, errors.Join(errs...)
	}
	return Set{values: values}, nil
}

// Float returns a length parameter. Count parameters are widened.
func (s Set) Float(key string) float64 {
	v := s.values[key]
	if v.unit == UnitInteger {
		return float64(v.i)
	}
	return v.f
}

// Int returns a count parameter.
func (s Set) Int(key string) int {
	return s.values[key].i
}

// String returns a string parameter.
func (s Set) String(key string) string {
	return s.values[key].s
}

// Has reports whether key is part of the set.
func (s Set) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Keys returns all keys in sorted order.
func (s Set) Keys() []string {
	return slices.Sorted(maps.Keys(s.values))
}

// Raw returns a copy of the set as a plain map, suitable for Build.
func (s Set) Raw() map[string]any {
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		switch v.unit {
		case UnitInteger:
			out[k] = v.i
		case UnitString:
			out[k] = v.s
		default:
			out[k] = v.f
		}
	}
	return out
}

func coerce(d Def, v any) (value, error) {
	key := d.Key()
	switch d.Unit {
	case UnitString:
		s, ok := v.(string)
		if !ok {
			return value{}, Errorf(key, "expected string, got %T", v)
		}
		return value{unit: UnitString, s: s}, nil
	case UnitInteger:
		switch n := v.(type) {
		case int:
			return value{unit: UnitInteger, i: n}, nil
		case int64:
			return value{unit: UnitInteger, i: int(n)}, nil
		case float64:
			if n != float64(int(n)) {
				return value{}, Errorf(key, "expected integer, got %g", n)
			}
			return value{unit: UnitInteger, i: int(n)}, nil
		default:
			return value{}, Errorf(key, "expected integer, got %T", v)
		}
	default:
		switch n := v.(type) {
		case float64:
			return value{unit: d.Unit, f: n}, nil
		case float32:
			return value{unit: d.Unit, f: float64(n)}, nil
		case int:
			return value{unit: d.Unit, f: float64(n)}, nil
		case int64:
			return value{unit: d.Unit, f: float64(n)}, nil
		default:
			return value{}, Errorf(key, "expected number, got %T", v)
		}
	}
}
