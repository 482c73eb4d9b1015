package mongostore

import (
	"context"
	"errors"

	"github.com/potluck/recipebook/internal/models"
	"github.com/potluck/recipebook/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RecipeStore struct {
	coll *mongo.Collection
}

func NewRecipeStore(db *mongo.Database) *RecipeStore {
	return &RecipeStore{coll: db.Collection("recipes")}
}

func (s *RecipeStore) All(ctx context.Context) ([]models.Recipe, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (s *RecipeStore) FindByID(ctx context.Context, id string) (models.Recipe, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Recipe{}, store.ErrNotFound
	}
	var recipe models.Recipe
	err = s.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Recipe{}, store.ErrNotFound
	}
	return recipe, err
}

func (s *RecipeStore) Insert(ctx context.Context, recipe models.Recipe) error {
	_, err := s.coll.InsertOne(ctx, recipe)
	return err
}

type FavoriteStore struct {
	coll *mongo.Collection
}

func NewFavoriteStore(db *mongo.Database) *FavoriteStore {
	return &FavoriteStore{coll: db.Collection("favorites")}
}

func (s *FavoriteStore) Get(ctx context.Context, userID string) (models.FavoriteList, error) {
	var list models.FavoriteList
	err := s.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.FavoriteList{}, store.ErrNotFound
	}
	return list, err
}

func (s *FavoriteStore) Save(ctx context.Context, list models.FavoriteList) error {
	_, err := s.coll.ReplaceOne(
		ctx,
		bson.M{"user_id": list.UserID},
		bson.M{"user_id": list.UserID, "recipes": list.Recipes},
		options.Replace().SetUpsert(true),
	)
	return err
}
