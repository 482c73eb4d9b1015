package mongostore

import (
	"context"
	"errors"

	"github.com/potluck/recipebook/internal/models"
	"github.com/potluck/recipebook/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection("users")}
}

func (s *UserStore) Insert(ctx context.Context, user models.User) error {
	_, err := s.coll.InsertOne(ctx, user)
	return err
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, store.ErrNotFound
	}
	return user, err
}

func (s *UserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, store.ErrNotFound
	}
	var user models.User
	err = s.coll.FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, store.ErrNotFound
	}
	return user, err
}
