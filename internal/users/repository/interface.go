package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the users data access contract.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, u User) (primitive.ObjectID, error)
	List(ctx context.Context, search string) ([]User, error)
	UpdateProfile(ctx context.Context, email string, set bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
