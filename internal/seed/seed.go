// internal/seed/seed.go
package seed

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/javajoker/grocer/internal/models"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	Products []models.Product `yaml:"products"`
}

// Load reads the catalog at path, or the built-in catalog when path is empty.
func Load(path string) ([]models.Product, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
	}
	return Parse(data)
}

func Parse(data []byte) ([]models.Product, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	seen := make(map[int64]bool, len(file.Products))
	seenReviews := make(map[int64]bool)
	for i, p := range file.Products {
		if p.ID <= 0 {
			return nil, fmt.Errorf("product %d: id must be positive", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("product %d: duplicate id %d", i, p.ID)
		}
		seen[p.ID] = true

		if p.Price < 0 || math.IsNaN(p.Price) || math.IsInf(p.Price, 0) {
			return nil, fmt.Errorf("product %d: price must be a non-negative number", p.ID)
		}

		for _, r := range p.Reviews {
			if r.ID <= 0 {
				return nil, fmt.Errorf("product %d: review id must be positive", p.ID)
			}
			if seenReviews[r.ID] {
				return nil, fmt.Errorf("product %d: duplicate review id %d", p.ID, r.ID)
			}
			seenReviews[r.ID] = true

			if r.Rating < 1 || r.Rating > 5 {
				return nil, fmt.Errorf("product %d: review %d rating %d out of range 1-5", p.ID, r.ID, r.Rating)
			}
		}

		if p.Reviews == nil {
			file.Products[i].Reviews = []models.Review{}
		}
	}
	return file.Products, nil
}
