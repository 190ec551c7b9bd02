package generators

import (
	"fmt"
	"math"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// FormatFunc produces one fake value for a category from its options.
type FormatFunc func(ctx Context, options []interface{}) (interface{}, error)

// Context carries the seeded faker and the reference time used by date
// categories.
type Context struct {
	Faker *gofakeit.Faker
	Now   time.Time
}

func optionAt(options []interface{}, i int) (interface{}, bool) {
	if i >= len(options) || options[i] == nil {
		return nil, false
	}
	return options[i], true
}

func intOption(options []interface{}, i int, def int64) (int64, error) {
	v, ok := optionAt(options, i)
	if !ok {
		return def, nil
	}
	n, ok := ToInt64(v)
	if !ok {
		return 0, fmt.Errorf("option %d: expected an integer, got %T", i, v)
	}
	return n, nil
}

func floatOption(options []interface{}, i int, def float64) (float64, error) {
	v, ok := optionAt(options, i)
	if !ok {
		return def, nil
	}
	f, ok := toFloat64(v)
	if !ok {
		return 0, fmt.Errorf("option %d: expected a number, got %T", i, v)
	}
	return f, nil
}

func stringOption(options []interface{}, i int, def string) (string, error) {
	v, ok := optionAt(options, i)
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("option %d: expected a string, got %T", i, v)
	}
	return s, nil
}

// ToInt64 coerces an option to int64. Floats are accepted when they are
// integral and inside the int64 range, since JSON decodes every number as
// float64.
func ToInt64(v interface{}) (int64, bool) {
	switch val := v.(type) {
	case int:
		return int64(val), true
	case int8:
		return int64(val), true
	case int16:
		return int64(val), true
	case int32:
		return int64(val), true
	case int64:
		return val, true
	case uint:
		return int64(val), true
	case uint8:
		return int64(val), true
	case uint16:
		return int64(val), true
	case uint32:
		return int64(val), true
	case float64:
		if val != math.Trunc(val) || val < -(1<<63) || val >= 1<<63 {
			return 0, false
		}
		return int64(val), true
	default:
		return 0, false
	}
}

func toFloat64(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	default:
		n, ok := ToInt64(v)
		return float64(n), ok
	}
}
