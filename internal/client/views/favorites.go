// Package views holds the client-side view models that consume the
// favorites sync bus.
package views

import (
	stdsync "sync"

	"github.com/potluck/recipebook/internal/client/sync"
	"github.com/potluck/recipebook/internal/models"
)

// FavoritesView is a catalog view in favorites mode. While attached to
// the bus it applies favorite toggles to its local list, so it stays
// consistent with other views without refetching. Apply is idempotent
// in both directions.
type FavoritesView struct {
	mu          stdsync.Mutex
	recipes     []models.Recipe
	unsubscribe func()
}

func NewFavoritesView() *FavoritesView {
	return &FavoritesView{}
}

// Attach subscribes the view to the bus. Call Detach on teardown, or
// the subscription handle leaks.
func (v *FavoritesView) Attach(bus *sync.Bus) {
	v.Detach()
	v.unsubscribe = bus.Subscribe(v.apply)
}

func (v *FavoritesView) Detach() {
	if v.unsubscribe != nil {
		v.unsubscribe()
		v.unsubscribe = nil
	}
}

// SetRecipes installs the result of the view's initial fetch.
func (v *FavoritesView) SetRecipes(recipes []models.Recipe) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.recipes = append([]models.Recipe(nil), recipes...)
}

func (v *FavoritesView) Recipes() []models.Recipe {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]models.Recipe(nil), v.recipes...)
}

// Empty reports whether the favorites list has nothing to show.
func (v *FavoritesView) Empty() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.recipes) == 0
}

// Contains reports whether the view currently holds the recipe. The
// detail page uses this to derive its favorite toggle state.
func (v *FavoritesView) Contains(id string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, r := range v.recipes {
		if r.ID.Hex() == id {
			return true
		}
	}
	return false
}

func (v *FavoritesView) apply(e sync.Event) {
	v.mu.Lock()
	defer v.mu.Unlock()

	idx := -1
	for i, r := range v.recipes {
		if r.ID == e.Recipe.ID {
			idx = i
			break
		}
	}

	if e.Added {
		if idx == -1 {
			v.recipes = append(v.recipes, e.Recipe)
		}
		return
	}
	if idx != -1 {
		v.recipes = append(v.recipes[:idx], v.recipes[idx+1:]...)
	}
}
