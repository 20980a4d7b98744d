package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the registrations data access contract.
type Repository interface {
	Create(ctx context.Context, reg Registration) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (Registration, error)
	ListAll(ctx context.Context, search string) ([]Registration, error)
	ListByEmail(ctx context.Context, email, search, paymentStatus string) ([]Registration, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	SetConfirmationStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
	SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
}
