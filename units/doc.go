// SPDX-License-Identifier: MIT

// Package units converts physical quantities with conversion polynomials.
//
// A conversion table maps a source unit to target units, each with a
// coefficient list evaluated at the source value by Horner's rule:
//
//	{
//	  "celsius":  {"kelvin":  [1, 273.15]},
//	  "kelvin":   {"celsius": [1, -273.15]},
//	  "kilogram": {"gram":    [1000, 0]}
//	}
//
//	q, _ := units.NewQuantity(25, units.Celsius)
//	k, _ := table.Convert(q, units.Kelvin)   // 298.15 kelvin
//
// Quantities are validated on construction: celsius may not fall below
// absolute zero (−273.15) and every other unit must be non-negative.
package units
