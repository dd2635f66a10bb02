package poly_test

import (
	"fmt"

	"github.com/katalvlaran/polyroot/poly"
)

// ExamplePolynomial_Evaluate evaluates x³ − x − 10 with Horner's rule.
func ExamplePolynomial_Evaluate() {
	p := poly.MustNew(1, 0, -1, -10)
	fmt.Println(p)
	fmt.Println(p.Evaluate(2))
	fmt.Println(p.Derivative())
	// Output:
	// x^3 - x - 10
	// -4
	// 3x^2 - 1
}

// ExampleDivide splits x³ − x − 10 by its derivative.
func ExampleDivide() {
	p := poly.MustNew(1, 0, -1, -10)
	q, r, err := poly.Divide(p, p.Derivative())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("q=%.4f r=%.4f\n", q.Coefficients(), r.Coefficients())
	// Output:
	// q=[0.3333 0.0000] r=[-0.6667 -10.0000]
}
