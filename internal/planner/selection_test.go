package planner

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"meal-planner/internal/models"
)

func TestToggleSelectsAndDeselects(t *testing.T) {
	c := testCatalog()
	store := NewStore()
	porridge := c.Dishes[models.Breakfast][0]

	if !store.Toggle(models.Breakfast, porridge) {
		t.Fatalf("expected first toggle to select")
	}
	got, ok := store.Get(models.Breakfast)
	if !ok || got.Name != porridge.Name {
		t.Fatalf("expected %q selected, got %q (ok=%v)", porridge.Name, got.Name, ok)
	}

	if store.Toggle(models.Breakfast, porridge) {
		t.Fatalf("expected second toggle to deselect")
	}
	if _, ok := store.Get(models.Breakfast); ok {
		t.Fatalf("expected breakfast to be empty after deselect")
	}
}

func TestToggleTwiceRestoresSelection(t *testing.T) {
	c := testCatalog()
	store := NewStore()
	store.Toggle(models.Lunch, c.Dishes[models.Lunch][0])
	store.Toggle(models.Dinner, c.Dishes[models.Dinner][1])

	cases := []struct {
		name string
		mt   models.MealType
		dish models.Dish
	}{
		{"empty slot", models.Breakfast, c.Dishes[models.Breakfast][1]},
		{"empty snack slot", models.Snack, c.Dishes[models.Snack][0]},
		{"slot holding the same dish", models.Lunch, c.Dishes[models.Lunch][0]},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before, _ := store.Snapshot()
			store.Toggle(tc.mt, tc.dish)
			store.Toggle(tc.mt, tc.dish)
			after, _ := store.Snapshot()
			if !reflect.DeepEqual(before, after) {
				t.Fatalf("expected selection %v after double toggle, got %v", before, after)
			}
		})
	}
}

func TestToggleReplacesWithinMealType(t *testing.T) {
	c := testCatalog()
	store := NewStore()
	first, second := c.Dishes[models.Dinner][0], c.Dishes[models.Dinner][1]

	store.Toggle(models.Dinner, first)
	if !store.Toggle(models.Dinner, second) {
		t.Fatalf("expected replacement to leave the new dish selected")
	}

	sel, _ := store.Snapshot()
	if len(sel) != 1 {
		t.Fatalf("expected 1 selected meal, got %d", len(sel))
	}
	if sel[models.Dinner].Name != second.Name {
		t.Fatalf("expected %q, got %q", second.Name, sel[models.Dinner].Name)
	}
}

func TestToggleSameNameAcrossMealTypes(t *testing.T) {
	store := NewStore()
	shared := dish("Oat Bowl", 300, 10, 50, 5)

	store.Toggle(models.Breakfast, shared)
	store.Toggle(models.Snack, shared)

	sel, _ := store.Snapshot()
	if len(sel) != 2 {
		t.Fatalf("expected dishes with the same name in two meal types, got %d selected", len(sel))
	}
}

func TestVersionAdvancesOnMutation(t *testing.T) {
	c := testCatalog()
	store := NewStore()
	v0 := store.Version()

	store.Toggle(models.Snack, c.Dishes[models.Snack][0])
	v1 := store.Version()
	if v1 <= v0 {
		t.Fatalf("expected version to advance after toggle, got %d -> %d", v0, v1)
	}

	store.Get(models.Snack)
	store.Snapshot()
	if store.Version() != v1 {
		t.Fatalf("expected reads to leave version at %d, got %d", v1, store.Version())
	}
}

func TestPlanAllReplacesSelection(t *testing.T) {
	c := testCatalog()
	store := NewStore()
	store.Toggle(models.Breakfast, c.Dishes[models.Breakfast][0])

	plan := Selection{}
	for _, mt := range models.MealTypes {
		plan[mt] = c.Dishes[mt][1]
	}
	if err := store.PlanAll(plan); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	sel, _ := store.Snapshot()
	if !reflect.DeepEqual(sel, plan) {
		t.Fatalf("expected %v, got %v", plan, sel)
	}

	// The store keeps its own copy.
	plan[models.Lunch] = c.Dishes[models.Lunch][0]
	if got, _ := store.Get(models.Lunch); got.Name != c.Dishes[models.Lunch][1].Name {
		t.Fatalf("expected store to be isolated from caller's map, got %q", got.Name)
	}
}

func TestStoreConcurrentToggleAndPlanAll(t *testing.T) {
	c := testCatalog()
	store := NewStore()

	plan := Selection{}
	for _, mt := range models.MealTypes {
		plan[mt] = c.Dishes[mt][0]
	}
	lunch := c.Dishes[models.Lunch][1]

	const rounds = 500
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			if err := store.PlanAll(plan); err != nil {
				t.Errorf("expected no error, got %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			store.Toggle(models.Lunch, lunch)
			store.Get(models.Lunch)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			store.Snapshot()
			store.Version()
		}
	}()
	wg.Wait()

	if got := store.Version(); got != 2*rounds {
		t.Fatalf("expected version %d, got %d", 2*rounds, got)
	}
}

func TestPlanAllRejectsIncompletePlan(t *testing.T) {
	c := testCatalog()
	store := NewStore()
	store.Toggle(models.Lunch, c.Dishes[models.Lunch][1])
	before, version := store.Snapshot()

	partial := Selection{
		models.Breakfast: c.Dishes[models.Breakfast][0],
		models.Lunch:     c.Dishes[models.Lunch][0],
	}
	err := store.PlanAll(partial)
	if !errors.Is(err, ErrIncompletePlan) {
		t.Fatalf("expected ErrIncompletePlan, got %v", err)
	}

	after, afterVersion := store.Snapshot()
	if !reflect.DeepEqual(before, after) || version != afterVersion {
		t.Fatalf("expected store untouched after rejected plan")
	}
}

func TestUninitializedStorePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero-value store")
		}
	}()
	var store Store
	store.Get(models.Breakfast)
}

func TestUninitializedStorePanicsOnPlanAll(t *testing.T) {
	c := testCatalog()
	plan := Selection{}
	for _, mt := range models.MealTypes {
		plan[mt] = c.Dishes[mt][0]
	}

	var store Store
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for zero-value store")
		}
	}()
	store.PlanAll(plan)
}

func TestToggleUnknownMealTypePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown meal type")
		}
	}()
	NewStore().Toggle(models.MealType("brunch"), dish("x", 1, 1, 1, 1))
}

func TestSelectionMealsOrder(t *testing.T) {
	c := testCatalog()
	sel := Selection{
		models.Snack:     c.Dishes[models.Snack][0],
		models.Breakfast: c.Dishes[models.Breakfast][0],
		models.Dinner:    c.Dishes[models.Dinner][0],
	}

	meals := sel.Meals()
	want := []models.MealType{models.Breakfast, models.Dinner, models.Snack}
	if len(meals) != len(want) {
		t.Fatalf("expected %d meals, got %d", len(want), len(meals))
	}
	for i, mt := range want {
		if meals[i].Type != mt {
			t.Fatalf("expected meal %d to be %s, got %s", i, mt, meals[i].Type)
		}
	}
}
