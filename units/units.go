// SPDX-License-Identifier: MIT

package units

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/katalvlaran/polyroot/poly"
	"github.com/tidwall/gjson"
)

var (
	// ErrBelowMinimum is returned for a value below the unit's physical floor.
	ErrBelowMinimum = errors.New("units: value below physical minimum")

	// ErrIncompatible is returned when the table has no from→to entry.
	ErrIncompatible = errors.New("units: conversion not compatible")

	// ErrBadTable is returned for malformed tables or entries.
	ErrBadTable = errors.New("units: malformed conversion table")

	// ErrBadUnit is returned for unit names that are empty or contain
	// characters other than letters, digits, '_' and '-'.
	ErrBadUnit = errors.New("units: invalid unit name")
)

// Known unit names. Tables may define others.
const (
	Seconds    = "seconds"
	Minutes    = "minutes"
	Hours      = "hours"
	Meter      = "meter"
	Kilometer  = "kilometer"
	Inch       = "inch"
	Foot       = "foot"
	Centimeter = "centimeter"
	Gram       = "gram"
	Kilogram   = "kilogram"
	Milligram  = "milligram"
	Tonne      = "tonne"
	Kelvin     = "kelvin"
	Celsius    = "celsius"
)

// AbsoluteZeroCelsius is the lowest valid celsius value.
const AbsoluteZeroCelsius = -273.15

var unitName = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Quantity is a validated value in a unit.
type Quantity struct {
	Value float64
	Unit  string
}

// NewQuantity validates value against the floor of unit.
func NewQuantity(value float64, unit string) (Quantity, error) {
	if !unitName.MatchString(unit) {
		return Quantity{}, fmt.Errorf("%w: %q", ErrBadUnit, unit)
	}
	floor := 0.0
	if unit == Celsius {
		floor = AbsoluteZeroCelsius
	}
	if value < floor {
		return Quantity{}, fmt.Errorf("%w: %s cannot be below %g", ErrBelowMinimum, unit, floor)
	}

	return Quantity{Value: value, Unit: unit}, nil
}

// String renders "value-unit".
func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'f', -1, 64) + "-" + q.Unit
}

// Table is a read-only conversion table backed by its JSON document.
type Table struct {
	raw []byte
}

// ParseTable validates data as a JSON object.
func ParseTable(data []byte) (*Table, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, ErrBadTable
	}
	raw := make([]byte, len(data))
	copy(raw, data)

	return &Table{raw: raw}, nil
}

// LoadTable reads a JSON table from path.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading conversion table %s: %w", path, err)
	}

	return ParseTable(data)
}

// Coefficients returns the from→to conversion polynomial.
func (t *Table) Coefficients(from, to string) (poly.Polynomial, error) {
	if !unitName.MatchString(from) || !unitName.MatchString(to) {
		return poly.Polynomial{}, fmt.Errorf("%w: %q→%q", ErrBadUnit, from, to)
	}
	entry := gjson.GetBytes(t.raw, from).Get(to)
	if !entry.Exists() {
		return poly.Polynomial{}, fmt.Errorf("%w: %s→%s", ErrIncompatible, from, to)
	}
	if !entry.IsArray() {
		return poly.Polynomial{}, fmt.Errorf("%w: %s→%s is not an array", ErrBadTable, from, to)
	}

	items := entry.Array()
	coeffs := make([]float64, len(items))
	for i, it := range items {
		if it.Type != gjson.Number {
			return poly.Polynomial{}, fmt.Errorf("%w: %s→%s[%d] is not a number", ErrBadTable, from, to, i)
		}
		coeffs[i] = it.Float()
	}
	p, err := poly.New(coeffs...)
	if err != nil {
		return poly.Polynomial{}, fmt.Errorf("%w: %s→%s: %w", ErrBadTable, from, to, err)
	}

	return p, nil
}

// Convert returns q expressed in unit to. Converting to the same unit
// returns an equal quantity without consulting the table.
func (t *Table) Convert(q Quantity, to string) (Quantity, error) {
	if q.Unit == to {
		return NewQuantity(q.Value, to)
	}
	p, err := t.Coefficients(q.Unit, to)
	if err != nil {
		return Quantity{}, err
	}

	return NewQuantity(p.Evaluate(q.Value), to)
}

// Units lists every unit mentioned in the table, sorted.
func (t *Table) Units() []string {
	seen := make(map[string]struct{})
	gjson.ParseBytes(t.raw).ForEach(func(from, targets gjson.Result) bool {
		seen[from.String()] = struct{}{}
		if !targets.IsObject() {
			return true
		}
		targets.ForEach(func(to, _ gjson.Result) bool {
			seen[to.String()] = struct{}{}

			return true
		})

		return true
	})
	out := make([]string, 0, len(seen))
	for u := range seen {
		out = append(out, u)
	}
	sort.Strings(out)

	return out
}
