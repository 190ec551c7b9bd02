package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/generators"
)

// FormatterRegistry maps category names to format functions.
type FormatterRegistry struct {
	mu         sync.RWMutex
	formatters map[string]generators.FormatFunc
}

func NewFormatterRegistry() *FormatterRegistry {
	return &FormatterRegistry{
		formatters: make(map[string]generators.FormatFunc),
	}
}

func (r *FormatterRegistry) Register(category string, fn generators.FormatFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.formatters[category] = fn
}

func (r *FormatterRegistry) Get(category string) (generators.FormatFunc, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.formatters[category]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, category)
	}
	return fn, nil
}

// List returns the registered categories, sorted.
func (r *FormatterRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func DefaultFormatterRegistry() *FormatterRegistry {
	r := NewFormatterRegistry()

	r.Register("sentence", generators.Sentence)
	r.Register("paragraph", generators.Paragraph)
	r.Register("word", generators.Word)
	r.Register("randomLetter", generators.Letter)
	r.Register("name", generators.Name)
	r.Register("firstName", generators.FirstName)
	r.Register("lastName", generators.LastName)
	r.Register("email", generators.Email)
	r.Register("userName", generators.UserName)
	r.Register("url", generators.URL)
	r.Register("phoneNumber", generators.PhoneNumber)
	r.Register("city", generators.City)
	r.Register("country", generators.Country)
	r.Register("company", generators.Company)
	r.Register("ipv4", generators.IPv4)
	r.Register("ipv6", generators.IPv6)
	r.Register("macAddress", generators.MacAddress)
	r.Register("regexify", generators.Regexify)

	r.Register("iso8601", generators.ISO8601)
	r.Register("date", generators.Date)
	r.Register("time", generators.Time)
	r.Register("unixTime", generators.UnixTime)
	r.Register("dateTimeBetween", generators.DateTimeBetween)

	r.Register("randomNumber", generators.RandomNumber)
	r.Register("numberBetween", generators.NumberBetween)
	r.Register("randomDigit", generators.RandomDigit)
	r.Register("randomFloat", generators.RandomFloat)
	r.Register("randomNormal", generators.RandomNormal)
	r.Register("randomElement", generators.RandomElement)
	r.Register("weightedElement", generators.WeightedElement)
	r.Register("boolean", generators.Boolean)
	r.Register("uuid", generators.UUID4)

	// Postgres type names reach the engine unchanged when no default rule
	// matches, so the common ones are registered as categories too.
	r.Register("text", generators.Paragraph)
	r.Register("bool", generators.Boolean)
	r.Register("int2", generators.SmallInt)
	r.Register("bpchar", generators.Letter)

	return r
}
