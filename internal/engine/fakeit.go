package engine

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/mmrzaf/tablefaker/internal/generators"
	"github.com/mmrzaf/tablefaker/internal/registry"
)

// Fakeit is a seeded engine: the same seed and call sequence yield the same
// values.
type Fakeit struct {
	faker    *gofakeit.Faker
	now      time.Time
	registry *registry.FormatterRegistry
}

type FakeitOption func(*Fakeit)

// WithNow fixes the reference time of date categories.
func WithNow(now time.Time) FakeitOption {
	return func(f *Fakeit) { f.now = now }
}

func WithRegistry(r *registry.FormatterRegistry) FakeitOption {
	return func(f *Fakeit) { f.registry = r }
}

func NewFakeit(seed int64, opts ...FakeitOption) *Fakeit {
	f := &Fakeit{
		faker:    gofakeit.New(seed),
		now:      time.Now().UTC(),
		registry: registry.DefaultFormatterRegistry(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Fakeit) Format(category string, options []interface{}) (interface{}, error) {
	fn, err := f.registry.Get(category)
	if err != nil {
		return nil, err
	}
	v, err := fn(generators.Context{Faker: f.faker, Now: f.now}, options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", category, err)
	}
	return v, nil
}

func (f *Fakeit) Categories() []string {
	return f.registry.List()
}
