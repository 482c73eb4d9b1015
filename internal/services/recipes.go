package services

import (
	"context"
	"errors"

	"github.com/potluck/recipebook/internal/httperr"
	"github.com/potluck/recipebook/internal/models"
	"github.com/potluck/recipebook/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecipeService exposes the catalog and per-user favorites. Favorite add
// and remove are deliberately idempotent: re-adding and removing a
// non-favorite are benign no-ops, not errors.
type RecipeService struct {
	recipes   store.RecipeStore
	favorites store.FavoriteStore
}

func NewRecipeService(recipes store.RecipeStore, favorites store.FavoriteStore) *RecipeService {
	return &RecipeService{recipes: recipes, favorites: favorites}
}

// List returns every recipe in the catalog.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipes.All(ctx)
	if err != nil {
		return nil, httperr.Upstream(err)
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

// Favorites returns the user's favorite snapshots, or an empty sequence
// if nothing has been favorited yet.
func (s *RecipeService) Favorites(ctx context.Context, userID string) ([]models.Recipe, error) {
	list, err := s.favorites.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []models.Recipe{}, nil
		}
		return nil, httperr.Upstream(err)
	}
	if list.Recipes == nil {
		return []models.Recipe{}, nil
	}
	return list.Recipes, nil
}

// AddFavorite appends a snapshot of the recipe to the user's list,
// creating the list lazily on first use. Unknown recipe ids are a 404.
func (s *RecipeService) AddFavorite(ctx context.Context, userID, recipeID string) (string, error) {
	recipe, err := s.resolveRecipe(ctx, recipeID)
	if err != nil {
		return "", err
	}

	list, err := s.favorites.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return "", httperr.Upstream(err)
		}
		list = models.FavoriteList{UserID: userID}
	}

	if list.Contains(recipe.ID) {
		return "The recipe has already been added to favorites.", nil
	}

	list.Recipes = append(list.Recipes, recipe)
	if err := s.favorites.Save(ctx, list); err != nil {
		return "", httperr.Upstream(err)
	}
	return "Added a favorite recipe!", nil
}

// RemoveFavorite drops the matching snapshot from the user's list. A
// missing list or a recipe that was never favorited is a benign no-op.
func (s *RecipeService) RemoveFavorite(ctx context.Context, userID, recipeID string) (string, error) {
	objID, err := primitive.ObjectIDFromHex(recipeID)
	if err != nil {
		return "", httperr.Upstream(err)
	}

	list, err := s.favorites.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "The user does not have favorite recipes!", nil
		}
		return "", httperr.Upstream(err)
	}

	idx := -1
	for i, r := range list.Recipes {
		if r.ID == objID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return "The user does not have this favorite recipe!", nil
	}

	list.Recipes = append(list.Recipes[:idx], list.Recipes[idx+1:]...)
	if err := s.favorites.Save(ctx, list); err != nil {
		return "", httperr.Upstream(err)
	}
	return "Favorite recipe deleted!", nil
}

func (s *RecipeService) resolveRecipe(ctx context.Context, recipeID string) (models.Recipe, error) {
	if _, err := primitive.ObjectIDFromHex(recipeID); err != nil {
		return models.Recipe{}, httperr.Upstream(err)
	}
	recipe, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Recipe{}, httperr.NotFound("The recipe id does not exist!")
		}
		return models.Recipe{}, httperr.Upstream(err)
	}
	return recipe, nil
}
