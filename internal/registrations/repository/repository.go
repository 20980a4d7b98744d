package repository

import (
	"context"
	"errors"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carecamp_backend/internal/store"
	"carecamp_backend/platform/apperr"
)

const registrationNotFoundMessage = "registration not found"

// Payment and confirmation states. Payment moves Unpaid→Paid only via a
// recorded payment; confirmation moves Pending→Confirmed only via admin
// action.
const (
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"

	ConfirmationPending   = "Pending"
	ConfirmationConfirmed = "Confirmed"
)

// Registration is a user's enrollment record for a specific camp. Camp
// name and fees are snapshotted at registration time so the record
// survives later listing edits.
type Registration struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampID             primitive.ObjectID `bson:"campId" json:"campId"`
	CampName           string             `bson:"campName" json:"campName"`
	Fees               int64              `bson:"fees" json:"fees"`
	ParticipantEmail   string             `bson:"participantEmail" json:"participantEmail"`
	ParticipantName    string             `bson:"participantName" json:"participantName"`
	Age                int                `bson:"age" json:"age"`
	Phone              string             `bson:"phone" json:"phone"`
	Gender             string             `bson:"gender" json:"gender"`
	EmergencyContact   string             `bson:"emergencyContact" json:"emergencyContact"`
	PaymentStatus      string             `bson:"paymentStatus" json:"paymentStatus"`
	ConfirmationStatus string             `bson:"confirmationStatus" json:"confirmationStatus"`
	CreatedAt          time.Time          `bson:"createdAt" json:"createdAt"`
}

// Repo implements the registrations repository over the document store.
type Repo struct {
	store *store.Store
}

// New creates a new registrations repository.
func New(st *store.Store) *Repo {
	return &Repo{store: st}
}

var _ Repository = (*Repo)(nil)

// Create inserts a registration and returns its generated id.
func (r *Repo) Create(ctx context.Context, reg Registration) (primitive.ObjectID, error) {
	return r.store.InsertOne(ctx, store.CollRegistrations, reg)
}

// Get fetches a registration by id.
func (r *Repo) Get(ctx context.Context, id primitive.ObjectID) (Registration, error) {
	var reg Registration
	err := r.store.FindOne(ctx, store.CollRegistrations, bson.M{"_id": id}, &reg)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Registration{}, apperr.NotFound(registrationNotFoundMessage)
		}
		return Registration{}, err
	}
	return reg, nil
}

func searchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	// Search terms are literal substrings, never regex syntax.
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"campName": pattern},
		bson.M{"participantName": pattern},
		bson.M{"participantEmail": pattern},
	}}
}

// ListAll returns every registration matching the optional search term,
// newest first.
func (r *Repo) ListAll(ctx context.Context, search string) ([]Registration, error) {
	regs := []Registration{}
	opts := store.FindOptions{SortField: "createdAt", SortDesc: true}
	if err := r.store.FindMany(ctx, store.CollRegistrations, searchFilter(search), opts, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// ListByEmail returns a participant's registrations, optionally filtered
// by search term and payment status, newest first.
func (r *Repo) ListByEmail(ctx context.Context, email, search, paymentStatus string) ([]Registration, error) {
	filter := searchFilter(search)
	filter["participantEmail"] = email
	if paymentStatus != "" {
		filter["paymentStatus"] = paymentStatus
	}

	regs := []Registration{}
	opts := store.FindOptions{SortField: "createdAt", SortDesc: true}
	if err := r.store.FindMany(ctx, store.CollRegistrations, filter, opts, &regs); err != nil {
		return nil, err
	}
	return regs, nil
}

// Delete removes a registration by id and returns the deleted count.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.store.DeleteOne(ctx, store.CollRegistrations, bson.M{"_id": id})
}

// SetConfirmationStatus updates a registration's confirmation status and
// returns the modified count.
func (r *Repo) SetConfirmationStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	return r.store.UpdateOne(ctx, store.CollRegistrations, bson.M{"_id": id}, bson.M{"confirmationStatus": status})
}

// SetPaymentStatus updates a registration's payment status and returns
// the modified count.
func (r *Repo) SetPaymentStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	return r.store.UpdateOne(ctx, store.CollRegistrations, bson.M{"_id": id}, bson.M{"paymentStatus": status})
}
