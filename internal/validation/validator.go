package validation

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/registry"
)

// Validator checks definition files. Categories are checked against the
// registry when one is set.
type Validator struct {
	formatters *registry.FormatterRegistry
}

func NewValidator(formatters *registry.FormatterRegistry) *Validator {
	return &Validator{formatters: formatters}
}

// identifier validation: allow simple SQL identifiers only (prevents injection via table/column names).
var (
	identRe       = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reservedWords = map[string]struct{}{
		"add": {}, "all": {}, "alter": {}, "and": {}, "any": {}, "as": {},
		"asc": {}, "between": {}, "by": {}, "case": {}, "check": {},
		"column": {}, "constraint": {}, "create": {}, "cross": {}, "current_date": {},
		"current_time": {}, "current_timestamp": {}, "database": {}, "default": {}, "delete": {},
		"desc": {}, "distinct": {}, "do": {}, "drop": {}, "else": {},
		"end": {}, "except": {}, "exists": {}, "false": {}, "for": {},
		"foreign": {}, "from": {}, "full": {}, "grant": {}, "group": {},
		"having": {}, "in": {}, "index": {}, "inner": {}, "insert": {},
		"intersect": {}, "into": {}, "is": {}, "join": {}, "key": {},
		"left": {}, "like": {}, "limit": {}, "natural": {}, "not": {},
		"null": {}, "offset": {}, "on": {}, "or": {}, "order": {},
		"outer": {}, "primary": {}, "references": {}, "returning": {}, "revoke": {},
		"right": {}, "schema": {}, "select": {}, "set": {}, "table": {},
		"then": {}, "to": {}, "true": {}, "truncate": {}, "union": {},
		"unique": {}, "update": {}, "user": {}, "using": {}, "values": {},
		"view": {}, "when": {}, "where": {}, "with": {},
	}
)

func IsValidIdentifier(s string) bool {
	if s == "" || s != strings.TrimSpace(s) {
		return false
	}
	if !identRe.MatchString(s) {
		return false
	}
	if _, ok := reservedWords[strings.ToLower(s)]; ok {
		return false
	}
	return true
}

// SplitIdentifier parses "schema.table" or "table". A bare table gets
// defaultSchema. Anything with more than one dot, an empty part or a part
// that is not a plain identifier is rejected.
func SplitIdentifier(identifier, defaultSchema string) (schema, table string, err error) {
	parts := strings.Split(identifier, ".")
	switch len(parts) {
	case 1:
		schema, table = defaultSchema, parts[0]
	case 2:
		schema, table = parts[0], parts[1]
	default:
		return "", "", fmt.Errorf("%w: %q has more than one separator", domain.ErrInvalidIdentifier, identifier)
	}
	if !IsValidIdentifier(schema) {
		return "", "", fmt.Errorf("%w: bad schema %q in %q", domain.ErrInvalidIdentifier, schema, identifier)
	}
	if !IsValidIdentifier(table) {
		return "", "", fmt.Errorf("%w: bad table %q in %q", domain.ErrInvalidIdentifier, table, identifier)
	}
	return schema, table, nil
}

func (v *Validator) ValidateDefinitionFile(file *domain.DefinitionFile) error {
	if file == nil {
		return errors.New("definition file is empty")
	}

	tables := make([]string, 0, len(file.Tables))
	for name := range file.Tables {
		tables = append(tables, name)
	}
	sort.Strings(tables)

	for _, name := range tables {
		if _, _, err := SplitIdentifier(name, domain.DefaultSchema); err != nil {
			return err
		}
		if err := v.validateColumns(file.Tables[name]); err != nil {
			return fmt.Errorf("table '%s': %w", name, err)
		}
	}
	return nil
}

func (v *Validator) validateColumns(columns map[string]domain.ColumnOverride) error {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !identRe.MatchString(name) {
			return fmt.Errorf("invalid column name '%s'", name)
		}
		if err := v.validateOverride(columns[name]); err != nil {
			return fmt.Errorf("column '%s': %w", name, err)
		}
	}
	return nil
}

func (v *Validator) validateOverride(o domain.ColumnOverride) error {
	set := 0
	if o.Category != "" {
		set++
	}
	if o.Value != nil {
		set++
	}
	if o.Unset {
		set++
	}
	if set != 1 {
		return errors.New("exactly one of 'category', 'value' or 'unset' is required")
	}
	if len(o.Options) > 0 && o.Category == "" {
		return errors.New("'options' requires 'category'")
	}
	if o.Category != "" && v.formatters != nil {
		if _, err := v.formatters.Get(o.Category); err != nil {
			return err
		}
	}
	return nil
}
