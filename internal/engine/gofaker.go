package engine

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/go-faker/faker/v4"
	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/generators"
)

// GoFaker draws text values from go-faker and numbers from the global
// math/rand source. It cannot be seeded.
type GoFaker struct{}

func NewGoFaker() *GoFaker {
	return &GoFaker{}
}

var goFakerCategories = map[string]func(options []interface{}) (interface{}, error){
	"sentence":  func([]interface{}) (interface{}, error) { return faker.Sentence(), nil },
	"paragraph": func([]interface{}) (interface{}, error) { return faker.Paragraph(), nil },
	"text":      func([]interface{}) (interface{}, error) { return faker.Paragraph(), nil },
	"word":      func([]interface{}) (interface{}, error) { return faker.Word(), nil },
	"name":      func([]interface{}) (interface{}, error) { return faker.Name(), nil },
	"firstName": func([]interface{}) (interface{}, error) { return faker.FirstName(), nil },
	"lastName":  func([]interface{}) (interface{}, error) { return faker.LastName(), nil },
	"email":     func([]interface{}) (interface{}, error) { return faker.Email(), nil },
	"userName":  func([]interface{}) (interface{}, error) { return faker.Username(), nil },
	"url":       func([]interface{}) (interface{}, error) { return faker.URL(), nil },
	"ipv4":      func([]interface{}) (interface{}, error) { return faker.IPv4(), nil },
	"ipv6":      func([]interface{}) (interface{}, error) { return faker.IPv6(), nil },
	"uuid":      func([]interface{}) (interface{}, error) { return faker.UUIDHyphenated(), nil },
	"iso8601":   func([]interface{}) (interface{}, error) { return faker.Timestamp(), nil },
	"date":      func([]interface{}) (interface{}, error) { return faker.Date(), nil },
	"unixTime":  func([]interface{}) (interface{}, error) { return faker.UnixTime(), nil },
	"randomNumber": func([]interface{}) (interface{}, error) {
		return rand.Int64N(1000000000), nil
	},
	"numberBetween": func(options []interface{}) (interface{}, error) {
		min, max := int64(-2147483648), int64(2147483647)
		if len(options) == 2 {
			lo, okLo := generators.ToInt64(options[0])
			hi, okHi := generators.ToInt64(options[1])
			if !okLo || !okHi {
				return nil, fmt.Errorf("numberBetween expects integer bounds, got %T and %T", options[0], options[1])
			}
			min, max = lo, hi
		}
		if max < min {
			return nil, fmt.Errorf("max (%d) must not be lower than min (%d)", max, min)
		}
		span := uint64(max) - uint64(min)
		if span == math.MaxUint64 {
			return int64(rand.Uint64()), nil
		}
		return int64(uint64(min) + rand.Uint64N(span+1)), nil
	},
	"randomFloat": func([]interface{}) (interface{}, error) {
		return float64(rand.Int64N(100000001)) / 100, nil
	},
	"boolean": func([]interface{}) (interface{}, error) {
		return rand.IntN(2) == 1, nil
	},
}

func (g *GoFaker) Format(category string, options []interface{}) (interface{}, error) {
	fn, ok := goFakerCategories[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, category)
	}
	return fn(options)
}

func (g *GoFaker) Categories() []string {
	names := make([]string, 0, len(goFakerCategories))
	for name := range goFakerCategories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
