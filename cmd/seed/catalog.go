package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog is the fixture format read by the seeder.
type Catalog struct {
	Destinations []CatalogDestination `yaml:"destinations"`
}

type CatalogDestination struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	ImageURL    string           `yaml:"imageUrl"`
	Packages    []CatalogPackage `yaml:"packages"`
}

type CatalogPackage struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Duration    int      `yaml:"duration"`
	Included    []string `yaml:"included"`
	ImageURL    string   `yaml:"imageUrl"`
	GroupSize   int      `yaml:"groupSize"`
	Price       float64  `yaml:"price"`
}

func loadCatalog(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	return parseCatalog(raw)
}

func parseCatalog(raw []byte) (Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(raw, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := catalog.validate(); err != nil {
		return Catalog{}, err
	}
	return catalog, nil
}

func (c Catalog) validate() error {
	var errs []error
	for i, d := range c.Destinations {
		if strings.TrimSpace(d.Name) == "" {
			errs = append(errs, fmt.Errorf("destinations[%d]: name is required", i))
		}
		if strings.TrimSpace(d.ImageURL) == "" {
			errs = append(errs, fmt.Errorf("destinations[%d]: imageUrl is required", i))
		}
		for j, p := range d.Packages {
			prefix := fmt.Sprintf("destinations[%d].packages[%d]", i, j)
			if strings.TrimSpace(p.Name) == "" {
				errs = append(errs, fmt.Errorf("%s: name is required", prefix))
			}
			if p.Duration < 1 {
				errs = append(errs, fmt.Errorf("%s: duration must be at least 1", prefix))
			}
			if p.GroupSize < 1 {
				errs = append(errs, fmt.Errorf("%s: groupSize must be at least 1", prefix))
			}
			if p.Price < 0 {
				errs = append(errs, fmt.Errorf("%s: price must not be negative", prefix))
			}
			if strings.TrimSpace(p.ImageURL) == "" {
				errs = append(errs, fmt.Errorf("%s: imageUrl is required", prefix))
			}
		}
	}
	return errors.Join(errs...)
}
