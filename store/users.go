package store

import (
	"context"
	"errors"

	"cityserve-be/models"
	"cityserve-be/services"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Users is the MongoDB-backed user store
type Users struct {
	collection *mongo.Collection
}

// NewUsers returns a user store over db's "users" collection
func NewUsers(db *mongo.Database) *Users {
	return &Users{collection: db.Collection("users")}
}

// Collection exposes the underlying collection for index bootstrap
func (s *Users) Collection() *mongo.Collection {
	return s.collection
}

func (s *Users) Insert(ctx context.Context, u *models.User) error {
	_, err := s.collection.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return services.ErrEmailTaken
	}
	return err
}

func (s *Users) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *Users) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
