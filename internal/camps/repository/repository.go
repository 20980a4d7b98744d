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

const campNotFoundMessage = "camp not found"

// Camp is the stored camp listing document. Fees are whole currency
// units as shown on the listing; ParticipantCount is maintained by
// atomic increments only, never recomputed.
type Camp struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                   string             `bson:"name" json:"name"`
	Image                  string             `bson:"image" json:"image"`
	Location               string             `bson:"location" json:"location"`
	DateTime               time.Time          `bson:"dateTime" json:"dateTime"`
	Fees                   int64              `bson:"fees" json:"fees"`
	HealthcareProfessional string             `bson:"healthcareProfessional" json:"healthcareProfessional"`
	Description            string             `bson:"description" json:"description"`
	ParticipantCount       int64              `bson:"participantCount" json:"participantCount"`
	CreatedAt              time.Time          `bson:"createdAt" json:"createdAt"`
}

// ListParams controls camp listing: search is a case-insensitive
// substring match over name, location, and healthcare professional.
type ListParams struct {
	Search   string
	SortBy   string
	SortDesc bool
	Limit    int64
}

// Repo implements the camps repository over the document store.
type Repo struct {
	store *store.Store
}

// New creates a new camps repository.
func New(st *store.Store) *Repo {
	return &Repo{store: st}
}

var _ Repository = (*Repo)(nil)

func buildListFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	// Search terms are literal substrings, never regex syntax.
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"location": pattern},
		bson.M{"healthcareProfessional": pattern},
	}}
}

func sortField(sortBy string) string {
	switch sortBy {
	case "fees":
		return "fees"
	case "participants":
		return "participantCount"
	case "date":
		return "dateTime"
	default:
		return "createdAt"
	}
}

// List returns camps matching params.
func (r *Repo) List(ctx context.Context, params ListParams) ([]Camp, error) {
	camps := []Camp{}
	opts := store.FindOptions{
		SortField: sortField(params.SortBy),
		SortDesc:  params.SortDesc,
		Limit:     params.Limit,
	}
	if err := r.store.FindMany(ctx, store.CollCamps, buildListFilter(params.Search), opts, &camps); err != nil {
		return nil, err
	}
	return camps, nil
}

// Popular returns the camps with the highest participant counts.
func (r *Repo) Popular(ctx context.Context, limit int64) ([]Camp, error) {
	camps := []Camp{}
	opts := store.FindOptions{SortField: "participantCount", SortDesc: true, Limit: limit}
	if err := r.store.FindMany(ctx, store.CollCamps, bson.M{}, opts, &camps); err != nil {
		return nil, err
	}
	return camps, nil
}

// Get fetches a camp by id.
func (r *Repo) Get(ctx context.Context, id primitive.ObjectID) (Camp, error) {
	var c Camp
	err := r.store.FindOne(ctx, store.CollCamps, bson.M{"_id": id}, &c)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Camp{}, apperr.NotFound(campNotFoundMessage)
		}
		return Camp{}, err
	}
	return c, nil
}

// Exists reports whether a camp with the given id is stored.
func (r *Repo) Exists(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.Get(ctx, id)
	return err
}

// Create inserts a new camp and returns its generated id.
func (r *Repo) Create(ctx context.Context, c Camp) (primitive.ObjectID, error) {
	return r.store.InsertOne(ctx, store.CollCamps, c)
}

// Update applies a partial update to a camp and returns the modified
// count.
func (r *Repo) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	return r.store.UpdateOne(ctx, store.CollCamps, bson.M{"_id": id}, set)
}

// Delete removes a camp by id and returns the deleted count.
func (r *Repo) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.store.DeleteOne(ctx, store.CollCamps, bson.M{"_id": id})
}

// IncrementParticipants atomically adjusts a camp's participant count and
// returns the modified count.
func (r *Repo) IncrementParticipants(ctx context.Context, id primitive.ObjectID, delta int64) (int64, error) {
	return r.store.IncrementField(ctx, store.CollCamps, bson.M{"_id": id}, "participantCount", delta)
}
