package validation

import (
	"errors"
	"testing"

	"github.com/mmrzaf/tablefaker/internal/domain"
)

func TestIsValidIdentifier(t *testing.T) {
	ok := []string{"a", "A", "_a", "a1", "a_b2", "snake_case_123", "users"}
	bad := []string{"", " a", "1a", "a-b", "a b", "a;b", "a\"b", "a.b", "a/b", "a--", "select", "from", "order", "table", "group", "user", "returning"}

	for _, s := range ok {
		if !IsValidIdentifier(s) {
			t.Fatalf("expected valid: %q", s)
		}
	}
	for _, s := range bad {
		if IsValidIdentifier(s) {
			t.Fatalf("expected invalid: %q", s)
		}
	}
}

func TestSplitIdentifier(t *testing.T) {
	schema, table, err := SplitIdentifier("users", "public")
	if err != nil || schema != "public" || table != "users" {
		t.Fatalf("bare table: got %q %q %v", schema, table, err)
	}
	schema, table, err = SplitIdentifier("audit.events", "public")
	if err != nil || schema != "audit" || table != "events" {
		t.Fatalf("qualified: got %q %q %v", schema, table, err)
	}

	for _, in := range []string{"", ".users", "public.", "a.b.c", "public.users;drop", `"public".users`} {
		if _, _, err := SplitIdentifier(in, "public"); !errors.Is(err, domain.ErrInvalidIdentifier) {
			t.Fatalf("%q: expected ErrInvalidIdentifier, got %v", in, err)
		}
	}
}
