package registry

import (
	"fmt"
	"math"
)

// Args is the raw argument map supplied by the model. Handlers read it
// through the typed getters below; JSON numbers arrive as float64, so the
// integer getters accept integral floats.
type Args map[string]any

// String returns a required string argument.
func (a Args) String(name string) (string, error) {
	value, ok := a[name]
	if !ok {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", name, value)
	}
	return s, nil
}

// StringOr returns an optional string argument, or fallback when absent.
func (a Args) StringOr(name, fallback string) (string, error) {
	if _, ok := a[name]; !ok {
		return fallback, nil
	}
	return a.String(name)
}

// Int returns a required integer argument.
func (a Args) Int(name string) (int, error) {
	value, ok := a[name]
	if !ok {
		return 0, fmt.Errorf("missing required argument %q", name)
	}
	return toInt(name, value)
}

// IntOr returns an optional integer argument, or fallback when absent.
func (a Args) IntOr(name string, fallback int) (int, error) {
	if _, ok := a[name]; !ok {
		return fallback, nil
	}
	return a.Int(name)
}

// Float returns an optional number argument, or nil when absent.
func (a Args) Float(name string) (*float64, error) {
	value, ok := a[name]
	if !ok {
		return nil, nil
	}
	f, err := toFloat(name, value)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func toInt(name string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("argument %q must be an integer, got %v", name, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("argument %q must be an integer, got %T", name, value)
	}
}

func toFloat(name string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("argument %q must be a number, got %T", name, value)
	}
}
