package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Read decodes a YAML catalog document.
func Read(r io.Reader) (*Catalog, error) {
	c := &Catalog{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	return c, nil
}

// ReadFile decodes a YAML catalog from path.
func ReadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return c, nil
}

// Write encodes the catalog as a YAML document.
func Write(w io.Writer, c *Catalog) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("catalog: encode yaml: %w", err)
	}
	return enc.Close()
}

// WriteFile encodes the catalog as YAML at path.
func WriteFile(path string, c *Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("catalog: create %s: %w", path, err)
	}
	if err := Write(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
