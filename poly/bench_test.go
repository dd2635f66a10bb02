package poly_test

import (
	"testing"

	"github.com/katalvlaran/polyroot/poly"
)

// benchmarkPoly builds a dense polynomial of length n with predictable coefficients.
func benchmarkPoly(n int) poly.Polynomial {
	c := make([]float64, n)
	for i := range c {
		c[i] = float64(i%7) - 3 + 0.5
	}

	return poly.MustNew(c...)
}

// BenchmarkEvaluate_Degree64 measures Horner evaluation at degree 63.
func BenchmarkEvaluate_Degree64(b *testing.B) {
	p := benchmarkPoly(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Evaluate(0.999)
	}
}

// BenchmarkDivide_64By16 measures synthetic division of a degree-63 dividend.
func BenchmarkDivide_64By16(b *testing.B) {
	dividend := benchmarkPoly(64)
	divisor := benchmarkPoly(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := poly.Divide(dividend, divisor); err != nil {
			b.Fatalf("Divide failed: %v", err)
		}
	}
}
