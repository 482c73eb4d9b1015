// Package memstore provides in-memory store implementations. They back
// the test suites and double as a storage mode for local runs without a
// database.
package memstore

import (
	"context"
	"sync"

	"github.com/potluck/recipebook/internal/models"
	"github.com/potluck/recipebook/internal/store"
)

type UserStore struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) Insert(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
	return nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (s *UserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

type RecipeStore struct {
	mu      sync.RWMutex
	recipes []models.Recipe
}

func NewRecipeStore() *RecipeStore {
	return &RecipeStore{}
}

func (s *RecipeStore) All(ctx context.Context) ([]models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Recipe, len(s.recipes))
	copy(out, s.recipes)
	return out, nil
}

func (s *RecipeStore) FindByID(ctx context.Context, id string) (models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.recipes {
		if r.ID.Hex() == id {
			return r, nil
		}
	}
	return models.Recipe{}, store.ErrNotFound
}

func (s *RecipeStore) Insert(ctx context.Context, recipe models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = append(s.recipes, recipe)
	return nil
}

type FavoriteStore struct {
	mu    sync.RWMutex
	lists map[string]models.FavoriteList
}

func NewFavoriteStore() *FavoriteStore {
	return &FavoriteStore{lists: make(map[string]models.FavoriteList)}
}

func (s *FavoriteStore) Get(ctx context.Context, userID string) (models.FavoriteList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.lists[userID]
	if !ok {
		return models.FavoriteList{}, store.ErrNotFound
	}
	out := list
	out.Recipes = make([]models.Recipe, len(list.Recipes))
	copy(out.Recipes, list.Recipes)
	return out, nil
}

func (s *FavoriteStore) Save(ctx context.Context, list models.FavoriteList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	saved := list
	saved.Recipes = make([]models.Recipe, len(list.Recipes))
	copy(saved.Recipes, list.Recipes)
	s.lists[list.UserID] = saved
	return nil
}

type imageBlob struct {
	contentType string
	data        []byte
}

type ImageStore struct {
	mu     sync.RWMutex
	images map[string]imageBlob
}

func NewImageStore() *ImageStore {
	return &ImageStore{images: make(map[string]imageBlob)}
}

func (s *ImageStore) Put(ctx context.Context, id, contentType string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[id] = imageBlob{contentType: contentType, data: data}
	return nil
}

func (s *ImageStore) Get(ctx context.Context, id string) ([]byte, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.images[id]
	if !ok {
		return nil, "", store.ErrNotFound
	}
	return blob.data, blob.contentType, nil
}
