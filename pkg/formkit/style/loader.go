package style

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FromFile loads a sheet from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style sheet: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return nil, fmt.Errorf("unsupported style sheet extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Sheet.
//
// Each group is either a scalar class name or a mapping of area to class:
//
//	element:
//	  root: sv-question
//	  title: sv-question__title
//	error: sv-error
//	types:
//	  rating: sv-rating
//	  text:
//	    root: sv-text
func FromYAML(data []byte) (*Sheet, error) {
	var f sheetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse style sheet yaml: %w", err)
	}
	return f.sheet(), nil
}

// FromJSON parses JSON data into a Sheet. The shape mirrors FromYAML.
func FromJSON(data []byte) (*Sheet, error) {
	var f sheetFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse style sheet json: %w", err)
	}
	return f.sheet(), nil
}

// sheetFile is the serialized sheet shape.
type sheetFile struct {
	Element entryNode            `yaml:"element" json:"element"`
	Error   entryNode            `yaml:"error" json:"error"`
	Types   map[string]entryNode `yaml:"types" json:"types"`
}

func (f *sheetFile) sheet() *Sheet {
	s := &Sheet{
		Element: f.Element.entry,
		Error:   f.Error.entry,
		Types:   make(map[string]Entry, len(f.Types)),
	}
	for name, node := range f.Types {
		s.Types[name] = node.entry
	}
	return s
}

// entryNode unmarshals the string-or-mapping union form of an Entry.
type entryNode struct {
	entry Entry
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *entryNode) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			return nil
		}
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		n.entry = SingleClass(s)
		return nil
	case yaml.MappingNode:
		var m map[string]string
		if err := value.Decode(&m); err != nil {
			return err
		}
		n.entry = ClassMap(m)
		return nil
	default:
		return fmt.Errorf("style entry must be a string or a mapping (line %d)", value.Line)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *entryNode) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n.entry = SingleClass(s)
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("style entry must be a string or an object: %w", err)
	}
	n.entry = ClassMap(m)
	return nil
}
