// SPDX-License-Identifier: MIT

// Package sturm counts the distinct real roots of a polynomial with
// Sturm's theorem.
//
// 🚀 What is a Sturm sequence?
//
//	p₀ = p, p₁ = p', pᵢ₊₁ = −rem(pᵢ₋₁, pᵢ), until a constant is reached.
//	Let V(x) be the number of sign changes in p₀(x), p₁(x), …, pₘ(x).
//	Then the number of distinct real roots in (a, b] equals V(a) − V(b).
//
//	Over the whole real line V(−∞) − V(+∞) is read from the leading
//	coefficients alone (poly.SignsAtInfinity), so nothing is evaluated at an
//	infinite or huge magnitude.
//
// ⚙️ Usage:
//
//	p := poly.MustNew(1, 0, -1)                   // x² − 1
//	n, err := sturm.CountRealRoots(p, p.Derivative(), nil)
//	// n == 2
//
// Degeneracies:
//   - remainders are trimmed of (numerically) zero leading coefficients, so
//     the degree strictly decreases and Build always terminates;
//   - an all-zero remainder (p has a repeated root) ends the sequence early;
//     the count is still the number of distinct roots;
//   - a zero leading coefficient in p or p' fails with ErrDegenerateSequence.
//
// Complexity: O(n²) time for Build, O(n) per sign-change evaluation.
package sturm
