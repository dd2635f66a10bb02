// SPDX-License-Identifier: MIT

// Command polyroot counts and refines real roots of polynomials.
//
//	polyroot solve --coef "1,0,-1,-10" --trace
//	polyroot solve --config data.json
//	polyroot count --coef "1,0,-5,0,4" --between 0,3
//	polyroot eval --coef "1,0,0,-1,-10" --x 2
//	polyroot divide --dividend "1,0,-1" --divisor "1,-1"
//	polyroot convert --table conversion.json --value 25 --from celsius --to kelvin
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
