// internal/planner/selection.go
package planner

import (
	"errors"
	"fmt"
	"sync"

	"meal-planner/internal/models"
)

var ErrIncompletePlan = errors.New("plan must select exactly one dish for every meal type")

// Selection maps a meal type to the one dish chosen for it.
type Selection map[models.MealType]models.Dish

type SelectedMeal struct {
	Type models.MealType `json:"type"`
	Dish models.Dish     `json:"dish"`
}

func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for t, dish := range s {
		out[t] = dish
	}
	return out
}

// Complete reports whether every meal type has a dish and nothing else is set.
func (s Selection) Complete() bool {
	if len(s) != len(models.MealTypes) {
		return false
	}
	for _, t := range models.MealTypes {
		if _, ok := s[t]; !ok {
			return false
		}
	}
	return true
}

// Meals returns the selected dishes in meal type order.
func (s Selection) Meals() []SelectedMeal {
	meals := make([]SelectedMeal, 0, len(s))
	for _, t := range models.MealTypes {
		if dish, ok := s[t]; ok {
			meals = append(meals, SelectedMeal{Type: t, Dish: dish})
		}
	}
	return meals
}

// Store is the single source of truth for the current meal selection. Every
// mutation bumps Version so derived views can tell when they are stale.
// A Store must be created with NewStore.
type Store struct {
	mu       sync.RWMutex
	selected Selection
	version  uint64
}

const (
	errNilStore    = "planner: nil selection store"
	errUninitStore = "planner: selection store used before NewStore"
)

func NewStore() *Store {
	return &Store{selected: make(Selection)}
}

func (s *Store) lock() {
	if s == nil {
		panic(errNilStore)
	}
	s.mu.Lock()
	if s.selected == nil {
		s.mu.Unlock()
		panic(errUninitStore)
	}
}

func (s *Store) rlock() {
	if s == nil {
		panic(errNilStore)
	}
	s.mu.RLock()
	if s.selected == nil {
		s.mu.RUnlock()
		panic(errUninitStore)
	}
}

func (s *Store) mustInit() {
	s.rlock()
	s.mu.RUnlock()
}

// Toggle selects dish for its meal type, replacing any other dish there.
// Toggling the dish that is already selected clears the meal type. It
// returns whether dish is selected afterwards.
func (s *Store) Toggle(t models.MealType, dish models.Dish) bool {
	if !t.Valid() {
		panic(fmt.Sprintf("planner: toggle with unknown meal type %q", t))
	}

	s.lock()
	defer s.mu.Unlock()

	s.version++
	if current, ok := s.selected[t]; ok && current.Name == dish.Name {
		delete(s.selected, t)
		return false
	}
	s.selected[t] = dish
	return true
}

// PlanAll replaces the whole selection at once. Incomplete plans are
// rejected and leave the store unchanged.
func (s *Store) PlanAll(plan Selection) error {
	if !plan.Complete() {
		return ErrIncompletePlan
	}

	s.lock()
	defer s.mu.Unlock()
	clear(s.selected)
	for t, dish := range plan {
		s.selected[t] = dish
	}
	s.version++
	return nil
}

func (s *Store) Get(t models.MealType) (models.Dish, bool) {
	s.rlock()
	defer s.mu.RUnlock()
	dish, ok := s.selected[t]
	return dish, ok
}

// Snapshot returns a copy of the selection together with the version it was
// taken at.
func (s *Store) Snapshot() (Selection, uint64) {
	s.rlock()
	defer s.mu.RUnlock()
	return s.selected.Clone(), s.version
}

func (s *Store) Version() uint64 {
	s.rlock()
	defer s.mu.RUnlock()
	return s.version
}
