package gallery

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Item is one gallery photo.
type Item struct {
	ImageRef string `yaml:"img" validate:"required"`
	AltText  string `yaml:"alt" validate:"required"`
}

type catalogFile struct {
	Items []Item `yaml:"items" validate:"required,min=1,dive"`
}

var catalogValidator = validator.New()

// LoadCatalog parses a YAML catalog. Every item needs an image and alt text.
func LoadCatalog(data []byte) ([]Item, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing gallery catalog: %w", err)
	}
	if err := catalogValidator.Struct(file); err != nil {
		return nil, fmt.Errorf("invalid gallery catalog: %w", err)
	}
	return file.Items, nil
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() []Item {
	items, err := LoadCatalog(catalogYAML)
	if err != nil {
		panic(err)
	}
	return items
}
