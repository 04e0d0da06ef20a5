// internal/server/plans.go
package server

import (
	"sync"

	"github.com/google/uuid"

	"meal-planner/internal/planner"
)

const maxPendingPlans = 16

// planRegistry holds optimizer proposals until they are confirmed. The oldest
// proposal is dropped once max are pending.
type planRegistry struct {
	mu    sync.Mutex
	plans map[string]planner.Selection
	order []string
	max   int
}

func newPlanRegistry(max int) *planRegistry {
	return &planRegistry{
		plans: make(map[string]planner.Selection),
		max:   max,
	}
}

func (r *planRegistry) add(sel planner.Selection) string {
	id := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.plans[id] = sel.Clone()
	r.order = append(r.order, id)
	for len(r.order) > r.max {
		delete(r.plans, r.order[0])
		r.order = r.order[1:]
	}
	return id
}

// take removes and returns a pending plan.
func (r *planRegistry) take(id string) (planner.Selection, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sel, ok := r.plans[id]
	if !ok {
		return nil, false
	}
	delete(r.plans, id)
	for i, pending := range r.order {
		if pending == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return sel, true
}
