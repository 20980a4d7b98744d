package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carecamp_backend/internal/store"
)

// StatusSucceeded marks a completed checkout. Payments are immutable
// once created.
const StatusSucceeded = "succeeded"

// Payment records one successful checkout for a registration. Amount is
// in minor currency units.
type Payment struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegistrationID   primitive.ObjectID `bson:"registrationId" json:"registrationId"`
	CampID           primitive.ObjectID `bson:"campId" json:"campId"`
	CampName         string             `bson:"campName" json:"campName"`
	ParticipantEmail string             `bson:"participantEmail" json:"participantEmail"`
	Amount           int64              `bson:"amount" json:"amount"`
	Currency         string             `bson:"currency" json:"currency"`
	TransactionID    string             `bson:"transactionId" json:"transactionId"`
	Status           string             `bson:"status" json:"status"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

// Repo implements the payments repository over the document store.
type Repo struct {
	store *store.Store
}

// New creates a new payments repository.
func New(st *store.Store) *Repo {
	return &Repo{store: st}
}

var _ Repository = (*Repo)(nil)

// Create inserts a payment record and returns its generated id.
func (r *Repo) Create(ctx context.Context, p Payment) (primitive.ObjectID, error) {
	return r.store.InsertOne(ctx, store.CollPayments, p)
}

// ListByEmail returns a participant's payments, newest first.
func (r *Repo) ListByEmail(ctx context.Context, email string) ([]Payment, error) {
	payments := []Payment{}
	opts := store.FindOptions{SortField: "createdAt", SortDesc: true}
	filter := bson.M{"participantEmail": email}
	if err := r.store.FindMany(ctx, store.CollPayments, filter, opts, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
