package eslintrc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sofmeright/eslintgen/src/options"
)

// JSModulePrefix opens the CommonJS form of the document.
const JSModulePrefix = "module.exports = "

// FileName returns the conventional file name for a format.
func FileName(format options.Format) (string, error) {
	switch format {
	case options.FormatJSON:
		return ".eslintrc.json", nil
	case options.FormatJavaScript:
		return ".eslintrc.js", nil
	case options.FormatYAML:
		return ".eslintrc.yaml", nil
	}
	return "", &options.InvalidFormatError{Value: string(format)}
}

// Render serializes the document and suggests a file name. Rendering is
// purely structural; rule values are not validated.
func Render(doc *Document, format options.Format) (text, fileName string, err error) {
	fileName, err = FileName(format)
	if err != nil {
		return "", "", err
	}

	switch format {
	case options.FormatJSON:
		body, err := jsonText(doc)
		if err != nil {
			return "", "", err
		}
		return body + "\n", fileName, nil

	case options.FormatJavaScript:
		body, err := jsonText(doc)
		if err != nil {
			return "", "", err
		}
		// Textual transform of the JSON form: only the quote character changes.
		return JSModulePrefix + strings.ReplaceAll(body, `"`, `'`) + ";\n", fileName, nil

	default:
		body, err := yamlText(doc)
		if err != nil {
			return "", "", err
		}
		return body, fileName, nil
	}
}

func jsonText(doc *Document) (string, error) {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("rendering json: %w", err)
	}
	return string(b), nil
}

func yamlText(doc *Document) (string, error) {
	node, err := doc.yamlNode()
	if err != nil {
		return "", fmt.Errorf("rendering yaml: %w", err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return "", fmt.Errorf("rendering yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("rendering yaml: %w", err)
	}
	return buf.String(), nil
}

// yamlNode builds a mapping node in the same key order as the JSON form.
func (d *Document) yamlNode() (*yaml.Node, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}

	add := func(key string, value any) error {
		v := &yaml.Node{}
		if err := v.Encode(value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		m.Content = append(m.Content, scalar(key), v)
		return nil
	}
	addNode := func(key string, v *yaml.Node) {
		m.Content = append(m.Content, scalar(key), v)
	}

	if d.Root {
		if err := add("root", true); err != nil {
			return nil, err
		}
	}
	if d.Env != nil && d.Env.Len() > 0 {
		env := &yaml.Node{Kind: yaml.MappingNode}
		for p := d.Env.Oldest(); p != nil; p = p.Next() {
			v := &yaml.Node{}
			if err := v.Encode(p.Value); err != nil {
				return nil, err
			}
			env.Content = append(env.Content, scalar(p.Key), v)
		}
		addNode("env", env)
	}
	if len(d.Extends) > 0 {
		if err := add("extends", d.Extends); err != nil {
			return nil, err
		}
	}
	if d.Parser != "" {
		if err := add("parser", d.Parser); err != nil {
			return nil, err
		}
	}
	if d.ParserOptions != nil && d.ParserOptions.Len() > 0 {
		po := &yaml.Node{Kind: yaml.MappingNode}
		for p := d.ParserOptions.Oldest(); p != nil; p = p.Next() {
			v := &yaml.Node{}
			if err := v.Encode(p.Value); err != nil {
				return nil, fmt.Errorf("parserOptions.%s: %w", p.Key, err)
			}
			po.Content = append(po.Content, scalar(p.Key), v)
		}
		addNode("parserOptions", po)
	}
	if len(d.Plugins) > 0 {
		if err := add("plugins", d.Plugins); err != nil {
			return nil, err
		}
	}
	if d.Rules != nil && d.Rules.Len() > 0 {
		rules := &yaml.Node{Kind: yaml.MappingNode}
		for p := d.Rules.Oldest(); p != nil; p = p.Next() {
			v := &yaml.Node{}
			if err := v.Encode(p.Value.Value()); err != nil {
				return nil, fmt.Errorf("rules.%s: %w", p.Key, err)
			}
			rules.Content = append(rules.Content, scalar(p.Key), v)
		}
		addNode("rules", rules)
	}
	if len(d.Settings) > 0 {
		if err := add("settings", d.Settings); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func scalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
