package commands

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/renato0307/quill/internal/messages"
)

// catalogFile is the on-disk layout of a catalog file:
//
//	commands:
//	  - label: Assistant
//	    prefix: /assist
//	    icon: monitor
type catalogFile struct {
	Commands []Suggestion `json:"commands"`
}

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return nil, messages.WrapError(err, "failed to parse catalog")
	}
	return NewCatalog(file.Commands)
}

// LoadFile reads a catalog from path.
// An empty path returns the built-in catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, messages.WrapError(err, "failed to read catalog %s", path)
	}

	catalog, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}
