// Package definitions loads column overrides from YAML or JSON files and
// applies them to row definitions.
package definitions

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/rowdef"
	"github.com/mmrzaf/tablefaker/internal/validation"
	"gopkg.in/yaml.v3"
)

// Load reads a definition file; ".json" files are decoded as JSON,
// everything else as YAML. Table keys are normalized to "schema.table".
func Load(path, defaultSchema string) (*domain.DefinitionFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file domain.DefinitionFile
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	normalized := make(map[string]map[string]domain.ColumnOverride, len(file.Tables))
	for name, columns := range file.Tables {
		schema, table, err := validation.SplitIdentifier(name, defaultSchema)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		normalized[schema+"."+table] = columns
	}
	file.Tables = normalized
	return &file, nil
}

// Apply sets the overrides configured for identifier on def. Columns are
// processed in name order so failures are reported deterministically.
func Apply(file *domain.DefinitionFile, identifier string, def *rowdef.RowDefinition) error {
	if file == nil {
		return nil
	}
	columns, ok := file.Tables[identifier]
	if !ok {
		return nil
	}

	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		o := columns[name]
		var err error
		switch {
		case o.Unset:
			_, err = def.UnsetDefinition(name)
		case o.Category != "":
			_, err = def.SetFormatterType(name, o.Category, o.Options...)
		default:
			_, err = def.SetDefinition(name, rowdef.ConstantRule(o.Value))
		}
		if err != nil {
			return fmt.Errorf("%s: %w", identifier, err)
		}
	}
	return nil
}
