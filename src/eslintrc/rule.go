package eslintrc

import (
	"encoding/json"
	"fmt"
)

// Level is a rule severity.
type Level string

const (
	LevelOff   Level = "off"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// ParseLevel accepts the string severities and their numeric forms (0, 1, 2).
func ParseLevel(v any) (Level, bool) {
	switch x := v.(type) {
	case string:
		switch Level(x) {
		case LevelOff, LevelWarn, LevelError:
			return Level(x), true
		}
		switch x {
		case "0":
			return LevelOff, true
		case "1":
			return LevelWarn, true
		case "2":
			return LevelError, true
		}
	case int:
		return ParseLevel(fmt.Sprint(x))
	case int64:
		return ParseLevel(fmt.Sprint(x))
	case float64:
		return ParseLevel(fmt.Sprint(x))
	}
	return "", false
}

// Rule is a rule specification: a bare severity ("error") or a tuple of
// severity plus rule-specific options (["error", 2]).
type Rule struct {
	Level   Level
	Options []any
	tuple   bool
}

// Severity returns a rule serialized as a bare severity string.
func Severity(l Level) Rule {
	return Rule{Level: l}
}

// Tuple returns a rule serialized as an array. Tuple(LevelWarn) yields ["warn"].
func Tuple(l Level, opts ...any) Rule {
	return Rule{Level: l, Options: opts, tuple: true}
}

// IsTuple reports whether the rule serializes as an array.
func (r Rule) IsTuple() bool { return r.tuple }

// Value returns the plain representation written to the document.
func (r Rule) Value() any {
	if !r.tuple {
		return string(r.Level)
	}
	out := make([]any, 0, len(r.Options)+1)
	out = append(out, string(r.Level))
	return append(out, r.Options...)
}

func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value())
}

func (r Rule) MarshalYAML() (any, error) {
	return r.Value(), nil
}

func (r Rule) String() string {
	b, err := json.Marshal(r.Value())
	if err != nil {
		return string(r.Level)
	}
	return string(b)
}

// NamedRule pairs a rule name with its specification.
type NamedRule struct {
	Name string
	Rule Rule
}

// RuleTable is an ordered list of rules. Tables are merged in order, so a
// later entry for the same name wins.
type RuleTable []NamedRule

// Clone returns a copy that shares no backing array with t.
func (t RuleTable) Clone() RuleTable {
	return append(RuleTable(nil), t...)
}

// Names returns the rule names in table order.
func (t RuleTable) Names() []string {
	names := make([]string, len(t))
	for i, r := range t {
		names[i] = r.Name
	}
	return names
}
