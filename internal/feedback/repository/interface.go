package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the feedback data access contract.
type Repository interface {
	Upsert(ctx context.Context, f Feedback) error
	GetByCampAndEmail(ctx context.Context, campID primitive.ObjectID, email string) (Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
}
