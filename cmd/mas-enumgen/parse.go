package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawEnumFile represents an enum definition file loaded from YAML.
type RawEnumFile struct {
	Package string       `yaml:"package"`
	Enums   []RawEnumDef `yaml:"enums"`
}

// RawEnumDef represents a single closed string enum.
type RawEnumDef struct {
	Name        string         `yaml:"name"`
	Table       string         `yaml:"table"` // unexported literal-table var name
	Description string         `yaml:"description"`
	Values      []RawEnumValue `yaml:"values"`
}

// RawEnumValue represents one registered spelling of an enum.
type RawEnumValue struct {
	Name    string `yaml:"name"`    // const name suffix, e.g. "Reinforced"
	Literal string `yaml:"literal"` // wire spelling, e.g. "Reinforced"
}

// LoadEnumFile loads and validates an enum definition YAML.
func LoadEnumFile(path string) (*RawEnumFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file RawEnumFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if file.Package == "" {
		return nil, fmt.Errorf("%s: missing package name", path)
	}
	if len(file.Enums) == 0 {
		return nil, fmt.Errorf("%s: no enums defined", path)
	}
	for _, e := range file.Enums {
		if e.Name == "" {
			return nil, fmt.Errorf("%s: enum with empty name", path)
		}
		if e.Table == "" {
			return nil, fmt.Errorf("%s: enum %s: missing table name", path, e.Name)
		}
		if len(e.Values) == 0 {
			return nil, fmt.Errorf("%s: enum %s: no values", path, e.Name)
		}
		seen := make(map[string]bool)
		for _, v := range e.Values {
			if v.Name == "" || v.Literal == "" {
				return nil, fmt.Errorf("%s: enum %s: value needs name and literal", path, e.Name)
			}
			if seen[v.Literal] {
				return nil, fmt.Errorf("%s: enum %s: duplicate literal %q", path, e.Name, v.Literal)
			}
			seen[v.Literal] = true
		}
	}

	return &file, nil
}
