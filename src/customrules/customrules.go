// Package customrules persists named sets of user-defined rules that can be
// layered on top of a generated configuration.
package customrules

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sofmeright/eslintgen/src/eslintrc"
	"github.com/sofmeright/eslintgen/src/workspace"
)

// DefaultFile is the store location relative to the project root.
const DefaultFile = ".eslint-custom-rules.json"

// Rule is one user-defined rule.
type Rule struct {
	Name    string `json:"name" validate:"required"`
	Level   string `json:"level" validate:"required,oneof=off warn error"`
	Options []any  `json:"options,omitempty"`
}

// RuleSet is a named, described group of rules.
type RuleSet struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Rules       []Rule `json:"rules" validate:"required,dive"`
}

// Table converts the set into a table ready to merge into a document. Rules
// with options become tuples; bare rules stay bare severities.
func (rs RuleSet) Table() eslintrc.RuleTable {
	table := make(eslintrc.RuleTable, 0, len(rs.Rules))
	for _, r := range rs.Rules {
		level := eslintrc.Level(r.Level)
		rule := eslintrc.Severity(level)
		if len(r.Options) > 0 {
			rule = eslintrc.Tuple(level, r.Options...)
		}
		table = append(table, eslintrc.NamedRule{Name: r.Name, Rule: rule})
	}
	return table
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return v
}

// Validate checks the rule set and every rule in it.
func Validate(rs RuleSet) error {
	err := validate.Struct(rs)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "RuleSet.")
		switch fe.Tag() {
		case "required":
			problems = append(problems, field+" is required")
		case "oneof":
			problems = append(problems, fmt.Sprintf("%s: unknown level %q (supported: off, warn, error)", field, fe.Value()))
		default:
			problems = append(problems, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}
	return fmt.Errorf("invalid rule set %q: %s", rs.Name, strings.Join(problems, "; "))
}

// Store reads and writes rule sets in a JSON file.
type Store struct {
	Path string
}

// NewStore returns a store for path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Load returns every stored rule set. A missing file is an empty store.
func (s *Store) Load() ([]RuleSet, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var sets []RuleSet
	if err := json.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.Path, err)
	}
	return sets, nil
}

// Get returns the named rule set.
func (s *Store) Get(name string) (RuleSet, error) {
	sets, err := s.Load()
	if err != nil {
		return RuleSet{}, err
	}
	for _, rs := range sets {
		if rs.Name == name {
			return rs, nil
		}
	}
	return RuleSet{}, fmt.Errorf("rule set %q not found in %s", name, s.Path)
}

// Save validates rs and stores it, replacing a set with the same name.
func (s *Store) Save(rs RuleSet) error {
	if err := Validate(rs); err != nil {
		return err
	}

	sets, err := s.Load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range sets {
		if sets[i].Name == rs.Name {
			sets[i] = rs
			replaced = true
			break
		}
	}
	if !replaced {
		sets = append(sets, rs)
	}
	return s.write(sets)
}

// Delete removes the named rule set. It reports whether a set was removed.
func (s *Store) Delete(name string) (bool, error) {
	sets, err := s.Load()
	if err != nil {
		return false, err
	}

	kept := sets[:0]
	for _, rs := range sets {
		if rs.Name != name {
			kept = append(kept, rs)
		}
	}
	if len(kept) == len(sets) {
		return false, nil
	}
	return true, s.write(kept)
}

func (s *Store) write(sets []RuleSet) error {
	if sets == nil {
		sets = []RuleSet{}
	}
	data, err := json.MarshalIndent(sets, "", "  ")
	if err != nil {
		return err
	}
	_, err = workspace.WriteFile(filepath.Dir(s.Path), filepath.Base(s.Path), append(data, '\n'))
	return err
}
