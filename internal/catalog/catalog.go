// Package catalog holds the room catalog compiled into the generator and
// decodes alternative catalogs of the same shape.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"villa_rooms/internal/domain"
)

//go:embed catalog.yaml
var defaultDoc []byte

type document struct {
	Rooms        []domain.Room     `yaml:"rooms"`
	Descriptions map[string]string `yaml:"descriptions"`
}

// Default decodes the embedded catalog.
func Default() (domain.Catalog, error) {
	c, err := Parse(defaultDoc)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads a catalog document from disk.
func LoadFile(path string) (domain.Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document. Unknown keys are rejected so a typo
// in a field name does not silently produce an empty value.
func Parse(b []byte) (domain.Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return domain.Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	return domain.NewCatalog(doc.Rooms, domain.DescriptionMap(doc.Descriptions))
}
