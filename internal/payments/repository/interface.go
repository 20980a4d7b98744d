package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the payments data access contract.
type Repository interface {
	Create(ctx context.Context, p Payment) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]Payment, error)
}
