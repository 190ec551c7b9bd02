package rowdef

import "github.com/mmrzaf/tablefaker/internal/domain"

// GuessFormatter returns the default formatter for a declared column type.
// Unmapped types use the type name itself as the category.
func GuessFormatter(columnType string) domain.Formatter {
	switch columnType {
	case "charcter varying", "varchar":
		return domain.NewFormatter("sentence")
	case "timestamp", "timestamptz":
		return domain.NewFormatter("iso8601")
	case "smallint":
		return domain.NewFormatter("numberBetween", -32768, 32767)
	case "int4", "int8":
		return domain.NewFormatter("randomNumber")
	case "float4", "float8", "numeric":
		return domain.NewFormatter("randomFloat")
	case "inet":
		return domain.NewFormatter("ipv4")
	default:
		return domain.NewFormatter(columnType)
	}
}
