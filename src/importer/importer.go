// Package importer reconstructs an options record from an existing ESLint
// configuration file. Reconstruction is best effort and never fails: a file
// that cannot be parsed yields the default options and a logged diagnostic.
package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ohler55/ojg/oj"
	"github.com/ohler55/ojg/sen"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/eslintgen/src/eslintrc"
)

// Candidates are the file names Discover looks for, in priority order.
var Candidates = []string{".eslintrc", ".eslintrc.json", ".eslintrc.js", ".eslintrc.yaml", ".eslintrc.yml"}

// ImportParseError reports a configuration file that could not be parsed.
type ImportParseError struct {
	Path string
	Err  error
}

func (e *ImportParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ImportParseError) Unwrap() error { return e.Err }

// Discover returns the first existing configuration file in dir.
func Discover(dir string) (string, bool) {
	for _, name := range Candidates {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ParseFile decodes a configuration file into a generic tree.
//
// JSON files go through ojg. CommonJS files are reduced to their object
// literal and read as SEN, which accepts comments, unquoted keys, single
// quotes and trailing commas. Anything computed at load time is a parse
// error. YAML files and the extensionless .eslintrc (JSON or YAML) go
// through yaml.v3.
func ParseFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ImportParseError{Path: path, Err: err}
	}

	var tree any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		tree, err = oj.Parse(data)
	case ".js", ".cjs":
		tree, err = sen.Parse([]byte(jsObjectLiteral(string(data))))
	default:
		var m map[string]any
		err = yaml.Unmarshal(data, &m)
		tree = m
	}
	if err != nil {
		return nil, &ImportParseError{Path: path, Err: err}
	}

	doc, ok := tree.(map[string]any)
	if !ok {
		return nil, &ImportParseError{Path: path, Err: fmt.Errorf("top level is %T, not an object", tree)}
	}
	return doc, nil
}

// jsObjectLiteral cuts the exported object out of a CommonJS or ES module
// file. Text before the export (directives, comments, requires) and after the
// closing brace is dropped.
func jsObjectLiteral(src string) string {
	s := src
	for _, export := range []string{strings.TrimSpace(eslintrc.JSModulePrefix), "module.exports", "export default"} {
		if i := strings.Index(s, export); i >= 0 {
			s = s[i+len(export):]
			break
		}
	}
	s = strings.TrimPrefix(strings.TrimSpace(s), "=")
	if end := strings.LastIndex(s, "}"); end >= 0 {
		s = s[:end+1]
	}
	return strings.TrimSpace(s)
}

// Importer reads files from disk and logs diagnostics.
type Importer struct {
	Logger hclog.Logger
}

// New returns an importer logging through logger.
func New(logger hclog.Logger) *Importer {
	return &Importer{Logger: logger}
}
