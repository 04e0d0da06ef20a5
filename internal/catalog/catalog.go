// internal/catalog/catalog.go
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"meal-planner/internal/models"
)

type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

//go:embed default.json
var defaultCatalog []byte

// FormatFromPath picks the decoder for a catalog file by its extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension %q", filepath.Ext(path))
	}
}

// Decode reads a catalog of the shape
// {dishes: {breakfast: [...], lunch: [...], dinner: [...], snack: [...]}, products: [...]}
// and validates it.
func Decode(r io.Reader, format Format) (*models.Catalog, error) {
	var c models.Catalog

	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode JSON catalog: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode YAML catalog: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown catalog format %q", format)
	}

	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func LoadFile(path string) (*models.Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog bundled with the binary.
func Default() *models.Catalog {
	c, err := Decode(bytes.NewReader(defaultCatalog), JSON)
	if err != nil {
		panic(fmt.Sprintf("catalog: bundled catalog is invalid: %v", err))
	}
	return c
}
