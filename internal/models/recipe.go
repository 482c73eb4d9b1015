package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Recipe struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageID     string             `bson:"image_id,omitempty" json:"image_id,omitempty"`
}

// FavoriteList is the per-user list of favorited recipes. Entries are
// denormalized snapshots of the recipe at the time it was favorited, so
// later edits to the catalog do not propagate here.
type FavoriteList struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID  string             `bson:"user_id" json:"user_id"`
	Recipes []Recipe           `bson:"recipes" json:"recipes"`
}

// Contains reports whether the list already holds a snapshot of recipeID.
func (f *FavoriteList) Contains(recipeID primitive.ObjectID) bool {
	for _, r := range f.Recipes {
		if r.ID == recipeID {
			return true
		}
	}
	return false
}
