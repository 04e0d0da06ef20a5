// internal/server/catalog.go
package server

import (
	"fmt"
	"log"

	"meal-planner/internal/catalog"
	"meal-planner/internal/models"
	"meal-planner/internal/storage"
)

// loadCatalog resolves the catalog source. A catalog file wins and is
// imported into the SQLite store when one is configured; otherwise the store
// is read, and the bundled catalog is the last resort.
func (s *MealPlannerServer) loadCatalog() (*models.Catalog, error) {
	if s.config.DBPath != "" {
		stor, err := storage.NewSQLiteStorage(s.config.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		s.storage = stor
	}

	if s.config.CatalogPath != "" {
		cat, err := catalog.LoadFile(s.config.CatalogPath)
		if err != nil {
			return nil, err
		}
		if s.storage != nil {
			if err := s.storage.SaveCatalog(cat); err != nil {
				return nil, fmt.Errorf("failed to import catalog: %w", err)
			}
			log.Printf("Imported catalog %s into %s", s.config.CatalogPath, s.config.DBPath)
		} else {
			log.Printf("Loaded catalog %s", s.config.CatalogPath)
		}
		return cat, nil
	}

	if s.storage == nil {
		log.Println("Using bundled catalog")
		return catalog.Default(), nil
	}

	has, err := s.storage.HasCatalog()
	if err != nil {
		return nil, err
	}
	if !has {
		cat := catalog.Default()
		if err := s.storage.SaveCatalog(cat); err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		log.Printf("Seeded %s with bundled catalog", s.config.DBPath)
		return cat, nil
	}

	cat, err := s.storage.LoadCatalog()
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(cat); err != nil {
		return nil, fmt.Errorf("stored catalog: %w", err)
	}
	log.Printf("Loaded catalog from %s", s.config.DBPath)
	return cat, nil
}
