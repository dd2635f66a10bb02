// SPDX-License-Identifier: MIT

// Package config loads root-finding problems from disk or from a plain
// coefficient string.
//
// A problem file carries the coefficients (highest degree first) and the
// iteration parameters. The same keys are used in every format:
//
//	{"coef": [1, 0, -1, -10], "max_iter": 100, "stop_value": 1e-5}
//
//	coef: [1, 0, -1, -10]        # problem.yaml
//	max_iter: 100
//	stop_value: 1e-5
//	x0: 2
//	trace: true
//
//	coef = [1, 0, -1, -10]       # problem.toml
//	max_iter = 100
//
// The format is chosen from the file extension (.json, .yaml/.yml, .toml).
// Missing max_iter/stop_value/x0 fall back to the engine defaults.
package config
