package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"carecamp_backend/internal/store"
	"carecamp_backend/platform/apperr"
)

// Feedback is one participant's review of a camp. At most one feedback
// exists per (camp, participant) pair; resubmitting overwrites the
// rating and comment in place.
type Feedback struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampID           primitive.ObjectID `bson:"campId" json:"campId"`
	CampName         string             `bson:"campName" json:"campName"`
	ParticipantEmail string             `bson:"participantEmail" json:"participantEmail"`
	ParticipantName  string             `bson:"participantName" json:"participantName"`
	Rating           int                `bson:"rating" json:"rating"`
	Comment          string             `bson:"comment" json:"comment"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Repo implements the feedback repository over the document store.
type Repo struct {
	store *store.Store
}

// New creates a new feedback repository.
func New(st *store.Store) *Repo {
	return &Repo{store: st}
}

var _ Repository = (*Repo)(nil)

// Upsert writes a participant's feedback for a camp, inserting on first
// submission and overwriting rating and comment on later ones.
func (r *Repo) Upsert(ctx context.Context, f Feedback) error {
	now := time.Now().UTC()
	filter := bson.M{"campId": f.CampID, "participantEmail": f.ParticipantEmail}
	set := bson.M{
		"campName":        f.CampName,
		"participantName": f.ParticipantName,
		"rating":          f.Rating,
		"comment":         f.Comment,
		"updatedAt":       now,
	}
	setOnInsert := bson.M{"createdAt": now}
	return r.store.UpsertOne(ctx, store.CollFeedbacks, filter, set, setOnInsert)
}

// GetByCampAndEmail returns the feedback a participant left on a camp.
func (r *Repo) GetByCampAndEmail(ctx context.Context, campID primitive.ObjectID, email string) (Feedback, error) {
	var f Feedback
	filter := bson.M{"campId": campID, "participantEmail": email}
	if err := r.store.FindOne(ctx, store.CollFeedbacks, filter, &f); err != nil {
		if err == store.ErrNotFound {
			return Feedback{}, apperr.NotFound("feedback not found")
		}
		return Feedback{}, err
	}
	return f, nil
}

// List returns all feedback, newest first.
func (r *Repo) List(ctx context.Context) ([]Feedback, error) {
	feedbacks := []Feedback{}
	opts := store.FindOptions{SortField: "createdAt", SortDesc: true}
	if err := r.store.FindMany(ctx, store.CollFeedbacks, bson.M{}, opts, &feedbacks); err != nil {
		return nil, err
	}
	return feedbacks, nil
}
