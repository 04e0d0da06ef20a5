// internal/planner/session.go
package planner

import (
	"sync"

	"meal-planner/internal/models"
)

// View is everything derived from one version of the selection. Slices in a
// View are shared with the session cache and must not be modified.
type View struct {
	Version      uint64                `json:"version"`
	Selection    []SelectedMeal        `json:"selection"`
	Nutrition    models.DailyNutrition `json:"nutrition"`
	Ingredients  models.Ingredients    `json:"ingredients"`
	ShoppingList []models.ShoppingItem `json:"shopping_list"`
	Purchases    []models.Purchase     `json:"purchases"`
}

// Session binds a Store to the catalog it selects from and caches the
// derived view until the store's version moves on.
type Session struct {
	store   *Store
	catalog *models.Catalog

	mu     sync.Mutex
	cached *View
}

func NewSession(store *Store, catalog *models.Catalog) *Session {
	store.mustInit()
	if catalog == nil {
		panic("planner: session needs a catalog")
	}
	return &Session{store: store, catalog: catalog}
}

func (s *Session) mustInit() {
	if s == nil || s.store == nil {
		panic("planner: session used before NewSession")
	}
}

func (s *Session) Store() *Store {
	s.mustInit()
	return s.store
}

func (s *Session) Catalog() *models.Catalog {
	s.mustInit()
	return s.catalog
}

func (s *Session) View() View {
	s.mustInit()
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, version := s.store.Snapshot()
	if s.cached != nil && s.cached.Version == version {
		return *s.cached
	}

	ingredients := Consolidate(sel)
	items := ShoppingList(ingredients, s.catalog.Products)
	s.cached = &View{
		Version:      version,
		Selection:    sel.Meals(),
		Nutrition:    Aggregate(sel),
		Ingredients:  ingredients,
		ShoppingList: items,
		Purchases:    Purchases(items),
	}
	return *s.cached
}

// Optimize runs the optimizer over the session catalog. The plan is not
// applied; pass Result.Selection to Store.PlanAll to accept it.
func (s *Session) Optimize(target Target) (Result, error) {
	s.mustInit()
	return Optimize(s.catalog, target)
}
