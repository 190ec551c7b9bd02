package domain

// DefaultSchema is used when a table identifier carries no schema.
const DefaultSchema = "public"

// Formatter names a generation category and the options passed to it.
type Formatter struct {
	Category string        `json:"category" yaml:"category"`
	Options  []interface{} `json:"options,omitempty" yaml:"options,omitempty"`
}

func NewFormatter(category string, options ...interface{}) Formatter {
	opts := make([]interface{}, len(options))
	copy(opts, options)
	return Formatter{Category: category, Options: opts}
}

// ColumnInfo is one introspected column, in table order.
type ColumnInfo struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// ObjectID identifies a table inside the introspected database.
type ObjectID int64

type ColumnOverride struct {
	Category string        `json:"category,omitempty" yaml:"category,omitempty"`
	Options  []interface{} `json:"options,omitempty" yaml:"options,omitempty"`
	Value    interface{}   `json:"value,omitempty" yaml:"value,omitempty"`
	Unset    bool          `json:"unset,omitempty" yaml:"unset,omitempty"`
}

// DefinitionFile holds per-table column overrides keyed by "schema.table".
type DefinitionFile struct {
	Tables map[string]map[string]ColumnOverride `json:"tables" yaml:"tables"`
}
