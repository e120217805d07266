package command

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pthm-cable/shorelark/config"
)

// maxExactInt is the largest magnitude a config.Value holds without rounding.
const maxExactInt = 1 << 53

// aliases maps operator shorthands to named config fields.
var aliases = map[string]string{
	"a":              "world_animals",
	"animals":        "world_animals",
	"f":              "world_foods",
	"foods":          "world_foods",
	"n":              "brain_neurons",
	"neurons":        "brain_neurons",
	"p":              "eye_cells",
	"photoreceptors": "eye_cells",
}

// ParseOverrides applies name=value tokens to a clone of defaults, left to
// right. The defaults are never modified.
//
// Names prefixed with "i:" or "f:" address any config field by its full name
// and are parsed as integer or float respectively; such keys are not checked
// here, the engine rejects the ones it does not know. Other names must be one
// of the aliases.
func ParseOverrides(defaults config.Config, args []string) (config.Config, error) {
	cfg := defaults.Clone()

	for _, arg := range args {
		name, raw, found := strings.Cut(arg, "=")
		if !found {
			return config.Config{}, fmt.Errorf("%w: %s has no value (expected name=value)", ErrInvalidValue, arg)
		}

		var (
			field string
			value config.Value
			err   error
		)
		switch {
		case strings.HasPrefix(name, "i:"):
			field = name[2:]
			value, err = parseInt(name, raw)
		case strings.HasPrefix(name, "f:"):
			field = name[2:]
			value, err = parseFloat(name, raw)
		default:
			var ok bool
			field, ok = aliases[name]
			if !ok {
				return config.Config{}, fmt.Errorf("%w: %s", ErrUnknownParameter, name)
			}
			value, err = parseInt(name, raw)
		}
		if err != nil {
			return config.Config{}, err
		}
		if field == "" {
			return config.Config{}, fmt.Errorf("%w: %s names no field", ErrUnknownParameter, name)
		}

		if err := cfg.Set(field, value); err != nil {
			return config.Config{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
	}

	return cfg, nil
}

func parseInt(name, raw string) (config.Value, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return config.Value{}, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidValue, name, raw)
	}
	if n > maxExactInt || n < -maxExactInt {
		return config.Value{}, fmt.Errorf("%w: %s=%q is out of range", ErrInvalidValue, name, raw)
	}
	return config.Int(n), nil
}

func parseFloat(name, raw string) (config.Value, error) {
	x, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return config.Value{}, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidValue, name, raw)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return config.Value{}, fmt.Errorf("%w: %s=%q is not finite", ErrInvalidValue, name, raw)
	}
	return config.Float(x), nil
}
