// Package store defines the persistence interfaces behind the auth and
// catalog services. mongostore provides the production implementation,
// memstore an in-memory one for tests and local runs.
package store

import (
	"context"
	"errors"

	"github.com/potluck/recipebook/internal/models"
)

// ErrNotFound is returned by lookups that match nothing. Callers should
// test it with errors.Is.
var ErrNotFound = errors.New("not found")

type UserStore interface {
	Insert(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
}

type RecipeStore interface {
	All(ctx context.Context) ([]models.Recipe, error)
	FindByID(ctx context.Context, id string) (models.Recipe, error)
	Insert(ctx context.Context, recipe models.Recipe) error
}

// FavoriteStore holds one FavoriteList per user. Save upserts the whole
// document; there is no locking between a Get and the following Save, so
// concurrent toggles for the same user are last-write-wins.
type FavoriteStore interface {
	Get(ctx context.Context, userID string) (models.FavoriteList, error)
	Save(ctx context.Context, list models.FavoriteList) error
}

// ImageStore keeps recipe image blobs keyed by image id.
type ImageStore interface {
	Put(ctx context.Context, id, contentType string, data []byte) error
	Get(ctx context.Context, id string) ([]byte, string, error)
}
