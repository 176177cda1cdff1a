package tagmap

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Builtin returns one of the built-in tag maps by name.
func Builtin(name string) (*TagMap, bool) {
	switch strings.ToLower(name) {
	case "ris":
		return RIS(), true
	case "wok":
		return WOK(), true
	case "pubmed", "nbib":
		return PubMed(), true
	}
	return nil, false
}

// BuiltinNames lists the built-in tag map names.
func BuiltinNames() []string {
	return []string{"ris", "wok", "pubmed"}
}

// LoadFile loads a tag map from a YAML file.
func LoadFile(path string) (*TagMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tag map file: %w", err)
	}
	m, err := parseTagMap(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// LoadString loads a tag map from YAML content.
func LoadString(content string) (*TagMap, error) {
	return parseTagMap([]byte(content))
}

func parseTagMap(data []byte) (*TagMap, error) {
	var m TagMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing tag map YAML: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}
