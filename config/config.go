// SPDX-License-Identifier: MIT

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/polyroot/roots"
	toml "github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFormat is returned for an unsupported file extension.
	ErrUnknownFormat = errors.New("config: unknown problem file format")

	// ErrBadCoefficient is returned when a coefficient cannot be parsed or
	// is not finite.
	ErrBadCoefficient = errors.New("config: invalid coefficient")

	// ErrInvalidProblem is returned by Validate.
	ErrInvalidProblem = errors.New("config: invalid problem")
)

// Format identifies a problem file encoding.
type Format int

const (
	// JSON is the data.json layout.
	JSON Format = iota
	// YAML accepts .yaml and .yml.
	YAML
	// TOML accepts .toml.
	TOML
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "unknown"
	}
}

// FormatFromPath maps a file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Problem is one root-finding request.
type Problem struct {
	Coefficients  []float64 `json:"coef" yaml:"coef" toml:"coef"`
	MaxIterations int       `json:"max_iter,omitempty" yaml:"max_iter,omitempty" toml:"max_iter,omitempty"`
	Tolerance     float64   `json:"stop_value,omitempty" yaml:"stop_value,omitempty" toml:"stop_value,omitempty"`
	InitialGuess  *float64  `json:"x0,omitempty" yaml:"x0,omitempty" toml:"x0,omitempty"`
	Trace         bool      `json:"trace,omitempty" yaml:"trace,omitempty" toml:"trace,omitempty"`
}

// Load reads and validates a problem file.
func Load(path string) (*Problem, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading problem file %s: %w", path, err)
	}
	log.Debugf("loading %s problem from %s", format, path)

	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// Parse decodes data in the given format, applies defaults and validates.
func Parse(data []byte, format Format) (*Problem, error) {
	var (
		p   Problem
		err error
	)
	switch format {
	case JSON:
		err = json.Unmarshal(data, &p)
	case YAML:
		err = yaml.Unmarshal(data, &p)
	case TOML:
		err = toml.Unmarshal(data, &p)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	p.applyDefaults()
	if err = p.Validate(); err != nil {
		return nil, err
	}

	return &p, nil
}

// applyDefaults fills zero-valued iteration settings from roots.DefaultOptions.
func (p *Problem) applyDefaults() {
	d := roots.DefaultOptions()
	if p.MaxIterations == 0 {
		p.MaxIterations = d.MaxIterations
	}
	if p.Tolerance == 0 {
		p.Tolerance = d.Tolerance
	}
	if p.InitialGuess == nil {
		x0 := d.InitialGuess
		p.InitialGuess = &x0
	}
}

// Validate checks coefficients and iteration settings.
func (p *Problem) Validate() error {
	if len(p.Coefficients) == 0 {
		return fmt.Errorf("%w: no coefficients", ErrInvalidProblem)
	}
	for i, c := range p.Coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: coefficient %d is not finite", ErrInvalidProblem, i)
		}
	}
	if p.MaxIterations < 1 {
		return fmt.Errorf("%w: max_iter must be >= 1, got %d", ErrInvalidProblem, p.MaxIterations)
	}
	if !(p.Tolerance > 0) {
		return fmt.Errorf("%w: stop_value must be > 0, got %g", ErrInvalidProblem, p.Tolerance)
	}

	return nil
}

// Degree is len(Coefficients)-1.
func (p *Problem) Degree() int { return len(p.Coefficients) - 1 }

// SolveOptions converts the problem into engine options.
func (p *Problem) SolveOptions() roots.Options {
	opts := roots.DefaultOptions()
	opts.MaxIterations = p.MaxIterations
	opts.Tolerance = p.Tolerance
	opts.Trace = p.Trace
	if p.InitialGuess != nil {
		opts.InitialGuess = *p.InitialGuess
	}

	return opts
}

// ParseCoefficients parses a comma-separated list such as "1, 0, -1, -10".
func ParseCoefficients(s string) ([]float64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("%w: empty list", ErrBadCoefficient)
	}
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: position %d: %q", ErrBadCoefficient, i, part)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: position %d is not finite", ErrBadCoefficient, i)
		}
		out[i] = v
	}

	return out, nil
}
