package engine

import (
	"fmt"
	"strings"
)

// Engine produces one fake value for a named category.
type Engine interface {
	Format(category string, options []interface{}) (interface{}, error)
}

const (
	KindFakeit  = "fakeit"
	KindGoFaker = "gofaker"
)

// New builds the engine named by kind. Only the fakeit engine honors seed;
// a zero seed picks a random one.
func New(kind string, seed int64) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindFakeit:
		return NewFakeit(seed), nil
	case KindGoFaker:
		return NewGoFaker(), nil
	default:
		return nil, fmt.Errorf("unknown engine: %s", kind)
	}
}
