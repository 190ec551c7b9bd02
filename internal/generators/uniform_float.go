package generators

import (
	"fmt"
	"math"
)

// RandomFloat takes [maxDecimals, min, max], all optional.
func RandomFloat(ctx Context, options []interface{}) (interface{}, error) {
	decimals, err := intOption(options, 0, 2)
	if err != nil {
		return nil, err
	}
	if decimals < 0 || decimals > 15 {
		return nil, fmt.Errorf("randomFloat: decimals must be in [0, 15], got %d", decimals)
	}
	min, err := floatOption(options, 1, 0)
	if err != nil {
		return nil, err
	}
	max, err := floatOption(options, 2, 1000000)
	if err != nil {
		return nil, err
	}
	if max < min {
		return nil, fmt.Errorf("max (%v) must not be lower than min (%v)", max, min)
	}

	v := min + ctx.Faker.Rand.Float64()*(max-min)
	scale := math.Pow10(int(decimals))
	return math.Round(v*scale) / scale, nil
}
