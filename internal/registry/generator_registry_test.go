package registry

import (
	"errors"
	"testing"

	"github.com/mmrzaf/tablefaker/internal/domain"
)

func TestDefaultRegistry_CoversDefaultRules(t *testing.T) {
	r := DefaultFormatterRegistry()
	for _, category := range []string{"sentence", "iso8601", "numberBetween", "randomNumber", "randomFloat", "ipv4", "bool", "uuid", "text"} {
		if _, err := r.Get(category); err != nil {
			t.Fatalf("expected %q to be registered: %v", category, err)
		}
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	_, err := NewFormatterRegistry().Get("nope")
	if !errors.Is(err, domain.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestRegistry_ListSorted(t *testing.T) {
	list := DefaultFormatterRegistry().List()
	for i := 1; i < len(list); i++ {
		if list[i-1] > list[i] {
			t.Fatalf("list not sorted at %d: %q > %q", i, list[i-1], list[i])
		}
	}
}
