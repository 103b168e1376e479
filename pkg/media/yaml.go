package media

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// yamlHierarchy represents the YAML structure of a declaration file.
type yamlHierarchy struct {
	Root    string               `yaml:"root"`
	Classes map[string]yamlClass `yaml:"classes"`
}

// yamlClass represents one class declaration in YAML form.
type yamlClass struct {
	Parent string         `yaml:"parent"`
	Media  map[string]any `yaml:"media"`
}

// LoadYAML parses a hierarchy declaration and returns a populated
// registry. The expected document shape is:
//
//	root: widget
//	classes:
//	  textinput:
//	    media:
//	      css: [forms/css/text.css]
//	  datepicker:
//	    parent: textinput
//	    media:
//	      js: [forms/js/calendar.js]
//
// A class without a parent key is a direct child of the root. Static
// media entries become the class's define hook; the hook hands out a
// fresh clone on every call so resolution never aliases the loaded
// document. Errors carry YAML line numbers where available.
//
// Loading only parses and registers; run Validate on the result to
// check the hierarchy for dangling parents and cycles before use.
func LoadYAML(data []byte) (*Registry, error) {
	var h yamlHierarchy
	if err := yaml.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("YAML parse error: %w", err)
	}
	if h.Root == "" {
		return nil, fmt.Errorf("declaration is missing the root class name")
	}

	// Reparse as nodes for class declaration line numbers.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("YAML node parse error: %w", err)
	}
	lineNumbers := classLineNumbers(&root)

	reg := NewRegistry(h.Root)
	for name, decl := range h.Classes {
		define := declareStatic(decl.Media)
		if err := reg.Register(name, decl.Parent, define); err != nil {
			if line := lineNumbers[name]; line > 0 {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			return nil, err
		}
	}

	return reg, nil
}

// LoadYAMLFile reads and parses a declaration file.
func LoadYAMLFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	reg, err := LoadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// declareStatic wraps a loaded media mapping as a define hook. A class
// with no media entries gets a nil hook (empty contribution).
func declareStatic(entries map[string]any) DefineFunc {
	if len(entries) == 0 {
		return nil
	}
	static := Manifest(entries).Clone()
	return func() Manifest {
		return static.Clone()
	}
}

// classLineNumbers walks the parsed document and maps each class name
// to the line of its declaration key.
func classLineNumbers(root *yaml.Node) map[string]int {
	lines := make(map[string]int)
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return lines
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return lines
	}
	for i := 0; i < len(doc.Content)-1; i += 2 {
		keyNode := doc.Content[i]
		valueNode := doc.Content[i+1]
		if keyNode.Value != "classes" || valueNode.Kind != yaml.MappingNode {
			continue
		}
		for j := 0; j < len(valueNode.Content)-1; j += 2 {
			classKey := valueNode.Content[j]
			lines[classKey.Value] = classKey.Line
		}
	}
	return lines
}
