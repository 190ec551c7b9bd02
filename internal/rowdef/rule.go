package rowdef

import (
	"fmt"

	"github.com/mmrzaf/tablefaker/internal/domain"
	"github.com/mmrzaf/tablefaker/internal/engine"
)

type RuleKind int

const (
	KindFormatter RuleKind = iota
	KindConstant
	KindFunc
)

func (k RuleKind) String() string {
	switch k {
	case KindFormatter:
		return "formatter"
	case KindConstant:
		return "constant"
	case KindFunc:
		return "func"
	default:
		return fmt.Sprintf("RuleKind(%d)", int(k))
	}
}

// Func computes a column value from the engine.
type Func func(e engine.Engine) (interface{}, error)

// Rule says how one column value is produced. Build it with
// FormatterRule, ConstantRule or FuncRule.
type Rule struct {
	kind      RuleKind
	formatter domain.Formatter
	value     interface{}
	fn        Func
}

// FormatterRule draws the value from the engine category with options.
func FormatterRule(category string, options ...interface{}) Rule {
	return Rule{kind: KindFormatter, formatter: domain.NewFormatter(category, options...)}
}

func FromFormatter(f domain.Formatter) Rule {
	return FormatterRule(f.Category, f.Options...)
}

// ConstantRule yields value for every row.
func ConstantRule(value interface{}) Rule {
	return Rule{kind: KindConstant, value: value}
}

// FuncRule calls fn once per row.
func FuncRule(fn Func) Rule {
	return Rule{kind: KindFunc, fn: fn}
}

func (r Rule) Kind() RuleKind { return r.kind }

// Formatter returns the descriptor of a formatter rule.
func (r Rule) Formatter() (domain.Formatter, bool) {
	return r.formatter, r.kind == KindFormatter
}

func (r Rule) Constant() (interface{}, bool) {
	return r.value, r.kind == KindConstant
}

func (r Rule) Evaluate(e engine.Engine) (interface{}, error) {
	switch r.kind {
	case KindFunc:
		if r.fn == nil {
			return nil, fmt.Errorf("func rule has no function")
		}
		return r.fn(e)
	case KindFormatter:
		return e.Format(r.formatter.Category, r.formatter.Options)
	case KindConstant:
		return r.value, nil
	default:
		return nil, fmt.Errorf("unsupported rule kind %s", r.kind)
	}
}

func (r Rule) String() string {
	switch r.kind {
	case KindFormatter:
		if len(r.formatter.Options) == 0 {
			return r.formatter.Category
		}
		return fmt.Sprintf("%s%v", r.formatter.Category, r.formatter.Options)
	case KindConstant:
		return fmt.Sprintf("constant(%v)", r.value)
	default:
		return r.kind.String()
	}
}
