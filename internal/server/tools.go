// internal/server/tools.go
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/ThinkInAIXYZ/go-mcp/protocol"

	"meal-planner/internal/models"
	"meal-planner/internal/planner"
)

var (
	errInvalidParams = errors.New("invalid parameters")
	errNotFound      = errors.New("not found")
)

// Target bounds and defaults offered by the planner UI.
const (
	defaultCalorieTarget = 2000
	minCalorieTarget     = 1300
	maxCalorieTarget     = 2300
	defaultProteinTarget = 100
	minProteinTarget     = 50
	maxProteinTarget     = 150
)

type ToggleMealParams struct {
	MealType string `json:"meal_type" description:"One of breakfast, lunch, dinner, snack"`
	Dish     string `json:"dish" description:"Name of the dish within that meal type"`
}

type OptimizeMealsParams struct {
	CalorieTarget float64 `json:"calorie_target,omitempty" description:"Daily calorie target in kcal (1300-2300, default 2000)"`
	ProteinTarget float64 `json:"protein_target,omitempty" description:"Daily protein target in grams (50-150, default 100)"`
}

type ConfirmPlanParams struct {
	PlanID string `json:"plan_id" description:"Plan id returned by optimize_meals"`
}

type ToggleResult struct {
	MealType models.MealType `json:"meal_type"`
	Dish     string          `json:"dish"`
	Selected bool            `json:"selected"`
	View     planner.View    `json:"view"`
}

type ProposedPlan struct {
	PlanID       string                 `json:"plan_id"`
	Target       planner.Target         `json:"target"`
	Meals        []planner.SelectedMeal `json:"meals"`
	Nutrition    models.DailyNutrition  `json:"nutrition"`
	Score        float64                `json:"score"`
	InitialScore float64                `json:"initial_score"`
}

// extractParams safely extracts parameters from the request arguments
func extractParams(req *protocol.CallToolRequest, target interface{}) error {
	// Convert the Arguments map to JSON bytes, then unmarshal to target
	jsonBytes, err := json.Marshal(req.Arguments)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal arguments: %v", errInvalidParams, err)
	}

	if err := json.Unmarshal(jsonBytes, target); err != nil {
		return fmt.Errorf("%w: %v", errInvalidParams, err)
	}

	return nil
}

func (s *MealPlannerServer) handleGetCatalog(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return s.createJSONResponse(s.session.Catalog())
}

// handleToggleMeal selects, replaces or deselects a dish for one meal type
func (s *MealPlannerServer) handleToggleMeal(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ToggleMealParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	mealType, ok := models.ParseMealType(params.MealType)
	if !ok {
		return nil, fmt.Errorf("%w: unknown meal type %q", errInvalidParams, params.MealType)
	}
	if params.Dish == "" {
		return nil, fmt.Errorf("%w: dish is required", errInvalidParams)
	}

	dish, ok := s.session.Catalog().FindDish(mealType, params.Dish)
	if !ok {
		return nil, fmt.Errorf("%w: no %s dish named %q", errNotFound, mealType, params.Dish)
	}

	selected := s.session.Store().Toggle(mealType, dish)

	return s.createJSONResponse(ToggleResult{
		MealType: mealType,
		Dish:     dish.Name,
		Selected: selected,
		View:     s.session.View(),
	})
}

func (s *MealPlannerServer) handleGetSelection(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	return s.createJSONResponse(s.session.View())
}

func (s *MealPlannerServer) handleGetNutrition(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	view := s.session.View()
	return s.createJSONResponse(map[string]interface{}{
		"version":   view.Version,
		"nutrition": view.Nutrition,
	})
}

func (s *MealPlannerServer) handleGetShoppingList(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	view := s.session.View()
	return s.createJSONResponse(map[string]interface{}{
		"version":       view.Version,
		"ingredients":   view.Ingredients,
		"shopping_list": view.ShoppingList,
		"purchases":     view.Purchases,
	})
}

// handleOptimizeMeals proposes a full day of meals; it is only applied by confirm_plan
func (s *MealPlannerServer) handleOptimizeMeals(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params OptimizeMealsParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}

	target, err := targetFromParams(params)
	if err != nil {
		return nil, err
	}

	result, err := s.session.Optimize(target)
	if err != nil {
		return nil, fmt.Errorf("failed to optimize meals: %w", err)
	}

	planID := s.plans.add(result.Selection)

	return s.createJSONResponse(ProposedPlan{
		PlanID:       planID,
		Target:       target,
		Meals:        result.Selection.Meals(),
		Nutrition:    planner.Aggregate(result.Selection),
		Score:        result.Score,
		InitialScore: result.InitialScore,
	})
}

func targetFromParams(params OptimizeMealsParams) (planner.Target, error) {
	target := planner.Target{
		Calories: params.CalorieTarget,
		Protein:  params.ProteinTarget,
	}
	if target.Calories == 0 {
		target.Calories = defaultCalorieTarget
	}
	if target.Protein == 0 {
		target.Protein = defaultProteinTarget
	}

	if target.Calories < minCalorieTarget || target.Calories > maxCalorieTarget {
		return target, fmt.Errorf("%w: calorie_target must be between %d and %d", errInvalidParams, minCalorieTarget, maxCalorieTarget)
	}
	if target.Protein < minProteinTarget || target.Protein > maxProteinTarget {
		return target, fmt.Errorf("%w: protein_target must be between %d and %d", errInvalidParams, minProteinTarget, maxProteinTarget)
	}
	return target, nil
}

// handleConfirmPlan replaces the whole selection with a proposed plan
func (s *MealPlannerServer) handleConfirmPlan(req *protocol.CallToolRequest) (*protocol.CallToolResult, error) {
	var params ConfirmPlanParams
	if err := extractParams(req, &params); err != nil {
		return nil, err
	}
	if params.PlanID == "" {
		return nil, fmt.Errorf("%w: plan_id is required", errInvalidParams)
	}

	plan, ok := s.plans.take(params.PlanID)
	if !ok {
		return nil, fmt.Errorf("%w: no pending plan %q", errNotFound, params.PlanID)
	}

	if err := s.session.Store().PlanAll(plan); err != nil {
		return nil, fmt.Errorf("failed to apply plan: %w", err)
	}

	return s.createJSONResponse(s.session.View())
}

func (s *MealPlannerServer) registerTools() {
	s.tools = map[string]toolHandler{
		"get_catalog":       s.handleGetCatalog,
		"toggle_meal":       s.handleToggleMeal,
		"get_selection":     s.handleGetSelection,
		"get_nutrition":     s.handleGetNutrition,
		"get_shopping_list": s.handleGetShoppingList,
		"optimize_meals":    s.handleOptimizeMeals,
		"confirm_plan":      s.handleConfirmPlan,
	}

	names := make([]string, 0, len(s.tools))
	for name := range s.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		log.Printf("Registered tool: %s", name)
	}
}
