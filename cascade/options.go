package cascade

import (
	"fmt"
	"math"
)

// Options is the engine-wide configuration: one immutable value constructed
// and validated once per run, passed by reference into every transform.
//
// Fields:
//   - Resolution   — resolution ascribed to the order-0 input signal
//     (the downsampling formula always uses each entry's current
//     resolution, which starts here). Default 0.
//   - Oversampling — extra decimation margin: downsampling stops
//     Oversampling octaves short of critical sampling. Default 1.
//   - PathMargin   — bandwidth-threshold relaxation exponent of the 1-D
//     pruning rule (active iff bandwidth·2^PathMargin > ξ_p). Default 0.
//   - MaxWorkers   — bound on concurrent per-entry workers; 0 means one per
//     available CPU. Default 0.
type Options struct {
	Resolution   int
	Oversampling int
	PathMargin   float64
	MaxWorkers   int
}

// DefaultOptions returns the engine defaults documented on Options.
func DefaultOptions() Options {
	return Options{
		Resolution:   0,
		Oversampling: 1,
		PathMargin:   0,
		MaxWorkers:   0,
	}
}

// Validate checks the configuration eagerly. Detected once, before any
// computation: no partial output is ever produced from a bad config.
func (o Options) Validate() error {
	if o.Resolution < 0 {
		return fmt.Errorf("%w: resolution %d", ErrBadOption, o.Resolution)
	}
	if o.Oversampling < 0 {
		return fmt.Errorf("%w: oversampling %d", ErrBadOption, o.Oversampling)
	}
	if math.IsNaN(o.PathMargin) || math.IsInf(o.PathMargin, 0) {
		return fmt.Errorf("%w: path_margin %v", ErrBadOption, o.PathMargin)
	}
	if o.MaxWorkers < 0 {
		return fmt.Errorf("%w: max_workers %d", ErrBadOption, o.MaxWorkers)
	}

	return nil
}

// OptionsFromMap builds Options from string-keyed configuration (the form
// external drivers deserialize). Unrecognized keys are rejected, not
// silently ignored; recognized keys accept int or float64 values.
func OptionsFromMap(m map[string]any) (Options, error) {
	o := DefaultOptions()
	for key, val := range m {
		switch key {
		case "resolution":
			n, err := asInt(key, val)
			if err != nil {
				return Options{}, err
			}
			o.Resolution = n
		case "oversampling":
			n, err := asInt(key, val)
			if err != nil {
				return Options{}, err
			}
			o.Oversampling = n
		case "path_margin":
			f, err := asFloat(key, val)
			if err != nil {
				return Options{}, err
			}
			o.PathMargin = f
		case "max_workers":
			n, err := asInt(key, val)
			if err != nil {
				return Options{}, err
			}
			o.MaxWorkers = n
		default:
			return Options{}, fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}
	if err := o.Validate(); err != nil {
		return Options{}, err
	}

	return o, nil
}

func asInt(key string, val any) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	}

	return 0, fmt.Errorf("%w: %q wants an integer, got %v", ErrBadOption, key, val)
}

func asFloat(key string, val any) (float64, error) {
	switch v := val.(type) {
	case int:
		return float64(v), nil
	case float64:
		return v, nil
	}

	return 0, fmt.Errorf("%w: %q wants a number, got %v", ErrBadOption, key, val)
}
