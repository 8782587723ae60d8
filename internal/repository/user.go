package repository

import (
	"context"
	"errors"
	"fmt"

	"planhub/internal/model"
	"planhub/pkg/docstore"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// IUserRepository defines user persistence
type IUserRepository interface {
	Create(ctx context.Context, user *model.User) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
}

// UserRepository implements user persistence over the users collection
type UserRepository struct {
	docs *docstore.Collection[model.User]
}

func NewUserRepository(db *mongo.Database) IUserRepository {
	return &UserRepository{docs: docstore.NewCollection[model.User](db, "users")}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	return r.docs.Create(ctx, user)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	var user model.User
	err := r.docs.Raw().FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
