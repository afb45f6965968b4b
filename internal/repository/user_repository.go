package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openbid/auctiond/internal/db"
	"github.com/openbid/auctiond/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
}

type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository creates a new user repository.
func NewUserRepository(store *db.Store) UserRepository {
	return &userRepository{coll: store.Users()}
}

// Create inserts a new user. The unique email index surfaces duplicate
// registrations as a driver duplicate-key error.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	res, err := r.coll.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// FindByEmail finds a user by email.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by ID.
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}
