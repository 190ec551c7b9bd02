package generators

import (
	"fmt"
	"math"
	"math/rand"
)

const defaultRandomNumberMax = 999999999

// RandomNumber returns a non-negative integer. The optional first option
// caps the number of digits.
func RandomNumber(ctx Context, options []interface{}) (interface{}, error) {
	digits, err := intOption(options, 0, 0)
	if err != nil {
		return nil, err
	}
	max := int64(defaultRandomNumberMax)
	if digits > 0 {
		if digits > 18 {
			return nil, fmt.Errorf("randomNumber: at most 18 digits, got %d", digits)
		}
		max = int64(math.Pow10(int(digits))) - 1
	}
	return int64Between(ctx.Faker.Rand, 0, max), nil
}

// NumberBetween returns an integer in [min, max].
func NumberBetween(ctx Context, options []interface{}) (interface{}, error) {
	min, err := intOption(options, 0, 0)
	if err != nil {
		return nil, err
	}
	max, err := intOption(options, 1, 2147483647)
	if err != nil {
		return nil, err
	}
	if max < min {
		return nil, fmt.Errorf("max (%d) must not be lower than min (%d)", max, min)
	}
	return int64Between(ctx.Faker.Rand, min, max), nil
}

// int64Between draws from [min, max]. Spans of MaxInt64 or more do not fit
// Int63n, so those are drawn from the full uint64 range and rejected until
// they land inside.
func int64Between(r *rand.Rand, min, max int64) int64 {
	span := uint64(max) - uint64(min)
	if span < math.MaxInt64 {
		return min + r.Int63n(int64(span)+1)
	}
	if span == math.MaxUint64 {
		return int64(r.Uint64())
	}
	for {
		if n := r.Uint64(); n <= span {
			return int64(uint64(min) + n)
		}
	}
}

func RandomDigit(ctx Context, options []interface{}) (interface{}, error) {
	return int64(ctx.Faker.Rand.Intn(10)), nil
}

// SmallInt returns a value in the Postgres int2 range.
func SmallInt(ctx Context, options []interface{}) (interface{}, error) {
	return NumberBetween(ctx, []interface{}{-32768, 32767})
}
