package generators

import (
	"errors"
	"fmt"
)

// RandomElement picks one of its options. A single list option is treated
// as the list of candidates.
func RandomElement(ctx Context, options []interface{}) (interface{}, error) {
	values := options
	if len(options) == 1 {
		if list, ok := options[0].([]interface{}); ok {
			values = list
		}
	}
	if len(values) == 0 {
		return nil, errors.New("randomElement requires at least one value")
	}
	return values[ctx.Faker.Rand.Intn(len(values))], nil
}

// WeightedElement takes [values, weights] as two lists of equal length.
func WeightedElement(ctx Context, options []interface{}) (interface{}, error) {
	if len(options) != 2 {
		return nil, errors.New("weightedElement requires values and weights options")
	}
	values, ok := options[0].([]interface{})
	if !ok {
		return nil, errors.New("'values' must be a list")
	}
	weights, ok := options[1].([]interface{})
	if !ok {
		return nil, errors.New("'weights' must be a list")
	}
	if len(values) == 0 {
		return nil, errors.New("'values' cannot be empty")
	}
	if len(weights) != len(values) {
		return nil, errors.New("'weights' and 'values' must have the same length")
	}

	totalWeight := 0.0
	for _, w := range weights {
		weight, ok := toFloat64(w)
		if !ok || weight < 0 {
			return nil, fmt.Errorf("invalid weight: %v", w)
		}
		totalWeight += weight
	}
	if totalWeight == 0 {
		return nil, errors.New("total weight is zero")
	}

	r := ctx.Faker.Rand.Float64() * totalWeight
	cumWeight := 0.0
	for i, w := range weights {
		weight, _ := toFloat64(w)
		cumWeight += weight
		if r < cumWeight {
			return values[i], nil
		}
	}
	return values[len(values)-1], nil
}

func Boolean(ctx Context, options []interface{}) (interface{}, error) {
	return ctx.Faker.Bool(), nil
}
