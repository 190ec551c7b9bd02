// Package rowdef holds the per-column generation rules of one table.
package rowdef

import (
	"github.com/mmrzaf/tablefaker/internal/domain"
)

// NamedRule pairs a column with its rule.
type NamedRule struct {
	Name string
	Rule Rule
}

// RowDefinition maps the columns of a table to generation rules. Rules can
// only target introspected columns. Mutators change the definition in place
// and return it for chaining.
type RowDefinition struct {
	types     []domain.ColumnInfo
	typeIndex map[string]int
	order     []string
	rules     map[string]Rule
}

// New builds a definition with one guessed formatter rule per column, in
// the order the columns are given.
func New(types []domain.ColumnInfo) *RowDefinition {
	d := &RowDefinition{
		types:     make([]domain.ColumnInfo, len(types)),
		typeIndex: make(map[string]int, len(types)),
		rules:     make(map[string]Rule, len(types)),
	}
	copy(d.types, types)
	for i, col := range d.types {
		d.typeIndex[col.Name] = i
	}
	for _, col := range d.types {
		d.put(col.Name, FromFormatter(GuessFormatter(col.Type)))
	}
	return d
}

func (d *RowDefinition) put(name string, rule Rule) {
	if _, ok := d.rules[name]; !ok {
		d.order = append(d.order, name)
	}
	d.rules[name] = rule
}

// SetDefinition sets the rule of a column. An existing rule is replaced in
// place; a column without one is appended to the generation order. Names
// that are not columns of the table fail with *domain.UnknownFieldError.
func (d *RowDefinition) SetDefinition(name string, rule Rule) (*RowDefinition, error) {
	if _, ok := d.typeIndex[name]; !ok {
		return d, &domain.UnknownFieldError{Field: name}
	}
	d.put(name, rule)
	return d, nil
}

// SetFormatterType is SetDefinition with a formatter rule.
func (d *RowDefinition) SetFormatterType(name, category string, options ...interface{}) (*RowDefinition, error) {
	return d.SetDefinition(name, FormatterRule(category, options...))
}

// UnsetDefinition drops the rule of a column. The column type is kept, so
// the column is skipped by generation until a new rule is set.
func (d *RowDefinition) UnsetDefinition(name string) (*RowDefinition, error) {
	if _, ok := d.rules[name]; !ok {
		return d, &domain.UnknownFieldError{Field: name}
	}
	delete(d.rules, name)
	for i, n := range d.order {
		if n == name {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return d, nil
}

// DefinitionExists reports whether the column currently has a rule.
func (d *RowDefinition) DefinitionExists(name string) bool {
	_, ok := d.rules[name]
	return ok
}

func (d *RowDefinition) Rule(name string) (Rule, bool) {
	r, ok := d.rules[name]
	return r, ok
}

// Definition returns the current rules in generation order.
func (d *RowDefinition) Definition() []NamedRule {
	out := make([]NamedRule, len(d.order))
	for i, name := range d.order {
		out[i] = NamedRule{Name: name, Rule: d.rules[name]}
	}
	return out
}

// Names returns the columns that currently have a rule, in generation order.
func (d *RowDefinition) Names() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Types returns the introspected columns, including those without a rule.
func (d *RowDefinition) Types() []domain.ColumnInfo {
	out := make([]domain.ColumnInfo, len(d.types))
	copy(out, d.types)
	return out
}

func (d *RowDefinition) Type(name string) (string, bool) {
	i, ok := d.typeIndex[name]
	if !ok {
		return "", false
	}
	return d.types[i].Type, true
}
