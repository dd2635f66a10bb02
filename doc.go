// Package polyroot is a small engine for the real roots of single-variable
// polynomials: count them exactly, then refine one numerically.
//
// 🚀 What is inside?
//
//	A pure-Go, side-effect-free toolkit that brings together:
//		• Horner evaluation and synthetic division
//		• Sturm sequences: exact count of distinct real roots, on ℝ or (a, b]
//		• Newton–Raphson with typed outcomes and optional per-step trace
//		• Problem files (JSON / YAML / TOML) and a polyroot CLI
//
// ✨ Why polyroot?
//
//   - Errors are values: ZeroDerivative, MaxIterationsExceeded, NoRealRoot…
//   - No global state in the engine; every call is safe to run concurrently
//   - Closed-form signs at ±∞, no overflow-prone "evaluate at 1e308"
//
// Under the hood, everything is organized under these subpackages:
//
//	poly/   - Polynomial type, Horner, Divide, derivative, signs at ±∞
//	sturm/  - Sturm sequence builder and sign-change counter
//	newton/ - Newton–Raphson state machine, Function interface, Trace
//	roots/  - engine facade over []float64 (Evaluate, Divide, CountRealRoots, Solve)
//	config/ - problem files and coefficient strings
//	units/  - Horner-driven unit conversion tables
//	cmd/polyroot - command-line front end
//
// Quick example:
//
//	c := []float64{1, 0, -1, -10}                 // x³ − x − 10
//	res, err := roots.Solve(c, roots.Derivative(c), roots.DefaultOptions())
//	// res.Root ≈ 2.30891
//
//	go get github.com/katalvlaran/polyroot
package polyroot
