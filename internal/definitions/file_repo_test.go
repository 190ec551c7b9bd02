package definitions

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/rowdef"
)

const usersYAML = `tables:
  users:
    name:
      category: firstName
    status:
      value: active
    id:
      category: numberBetween
      options: [1, 100]
    ip:
      unset: true
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func usersDefinition() *rowdef.RowDefinition {
	return rowdef.New([]domain.ColumnInfo{
		{Name: "id", Type: "int4"},
		{Name: "name", Type: "varchar"},
		{Name: "ip", Type: "inet"},
		{Name: "status", Type: "text"},
	})
}

func TestLoadAndApply_YAML(t *testing.T) {
	file, err := Load(writeFile(t, "defs.yaml", usersYAML), "public")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := file.Tables["public.users"]; !ok {
		t.Fatalf("expected normalized key, got %v", file.Tables)
	}

	def := usersDefinition()
	if err := Apply(file, "public.users", def); err != nil {
		t.Fatal(err)
	}

	if def.DefinitionExists("ip") {
		t.Fatal("expected ip to be unset")
	}
	r, _ := def.Rule("name")
	if f, ok := r.Formatter(); !ok || f.Category != "firstName" {
		t.Fatalf("unexpected name rule: %v", r)
	}
	r, _ = def.Rule("id")
	if f, ok := r.Formatter(); !ok || len(f.Options) != 2 || f.Options[0] != 1 || f.Options[1] != 100 {
		t.Fatalf("unexpected id rule: %v", r)
	}
	r, _ = def.Rule("status")
	if v, ok := r.Constant(); !ok || v != "active" {
		t.Fatalf("unexpected status rule: %v", r)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "defs.json", `{"tables": {"audit.events": {"kind": {"value": "login"}}}}`)
	file, err := Load(path, "public")
	if err != nil {
		t.Fatal(err)
	}
	if file.Tables["audit.events"]["kind"].Value != "login" {
		t.Fatalf("unexpected content: %#v", file.Tables)
	}
}

func TestLoad_RejectsBadTableName(t *testing.T) {
	path := writeFile(t, "defs.yaml", "tables:\n  a.b.c:\n    x: {value: 1}\n")
	if _, err := Load(path, "public"); !errors.Is(err, domain.ErrInvalidIdentifier) {
		t.Fatalf("expected ErrInvalidIdentifier, got %v", err)
	}
}

func TestApply_UnknownColumn(t *testing.T) {
	file := &domain.DefinitionFile{Tables: map[string]map[string]domain.ColumnOverride{
		"public.users": {"nickname": {Category: "word"}},
	}}
	err := Apply(file, "public.users", usersDefinition())
	var unknown *domain.UnknownFieldError
	if !errors.As(err, &unknown) || unknown.Field != "nickname" {
		t.Fatalf("expected UnknownFieldError for nickname, got %v", err)
	}
}

func TestApply_OtherTableUntouched(t *testing.T) {
	file := &domain.DefinitionFile{Tables: map[string]map[string]domain.ColumnOverride{
		"public.orders": {"id": {Unset: true}},
	}}
	def := usersDefinition()
	if err := Apply(file, "public.users", def); err != nil {
		t.Fatal(err)
	}
	if !def.DefinitionExists("id") {
		t.Fatal("expected users definition to be unchanged")
	}
}
