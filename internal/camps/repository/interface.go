package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the camps data access contract.
type Repository interface {
	List(ctx context.Context, params ListParams) ([]Camp, error)
	Popular(ctx context.Context, limit int64) ([]Camp, error)
	Get(ctx context.Context, id primitive.ObjectID) (Camp, error)
	Exists(ctx context.Context, id primitive.ObjectID) error
	Create(ctx context.Context, c Camp) (primitive.ObjectID, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	IncrementParticipants(ctx context.Context, id primitive.ObjectID, delta int64) (int64, error)
}
