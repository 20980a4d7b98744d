package service

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	campsrepo "carecamp_backend/internal/camps/repository"
	"carecamp_backend/internal/feedback/repository"
	"carecamp_backend/internal/feedback/transport"
	"carecamp_backend/platform/apperr"
	"carecamp_backend/platform/logger"
)

type feedbackKey struct {
	campID primitive.ObjectID
	email  string
}

type fakeFeedbackRepo struct {
	byKey map[feedbackKey]repository.Feedback
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{byKey: map[feedbackKey]repository.Feedback{}}
}

func (f *fakeFeedbackRepo) Upsert(_ context.Context, fb repository.Feedback) error {
	key := feedbackKey{campID: fb.CampID, email: fb.ParticipantEmail}
	now := time.Now().UTC()
	if existing, ok := f.byKey[key]; ok {
		existing.Rating = fb.Rating
		existing.Comment = fb.Comment
		existing.ParticipantName = fb.ParticipantName
		existing.CampName = fb.CampName
		existing.UpdatedAt = now
		f.byKey[key] = existing
		return nil
	}
	fb.ID = primitive.NewObjectID()
	fb.CreatedAt = now
	fb.UpdatedAt = now
	f.byKey[key] = fb
	return nil
}

func (f *fakeFeedbackRepo) GetByCampAndEmail(_ context.Context, campID primitive.ObjectID, email string) (repository.Feedback, error) {
	fb, ok := f.byKey[feedbackKey{campID: campID, email: email}]
	if !ok {
		return repository.Feedback{}, apperr.NotFound("feedback not found")
	}
	return fb, nil
}

func (f *fakeFeedbackRepo) List(_ context.Context) ([]repository.Feedback, error) {
	out := []repository.Feedback{}
	for _, fb := range f.byKey {
		out = append(out, fb)
	}
	return out, nil
}

var _ repository.Repository = (*fakeFeedbackRepo)(nil)

type fakeCampsRepo struct {
	camps map[primitive.ObjectID]campsrepo.Camp
}

func newFakeCampsRepo() *fakeCampsRepo {
	return &fakeCampsRepo{camps: map[primitive.ObjectID]campsrepo.Camp{}}
}

func (f *fakeCampsRepo) List(_ context.Context, _ campsrepo.ListParams) ([]campsrepo.Camp, error) {
	return nil, nil
}

func (f *fakeCampsRepo) Popular(_ context.Context, _ int64) ([]campsrepo.Camp, error) {
	return nil, nil
}

func (f *fakeCampsRepo) Get(_ context.Context, id primitive.ObjectID) (campsrepo.Camp, error) {
	c, ok := f.camps[id]
	if !ok {
		return campsrepo.Camp{}, apperr.NotFound("camp not found")
	}
	return c, nil
}

func (f *fakeCampsRepo) Exists(ctx context.Context, id primitive.ObjectID) error {
	_, err := f.Get(ctx, id)
	return err
}

func (f *fakeCampsRepo) Create(_ context.Context, c campsrepo.Camp) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	c.ID = id
	f.camps[id] = c
	return id, nil
}

func (f *fakeCampsRepo) Update(_ context.Context, _ primitive.ObjectID, _ bson.M) (int64, error) {
	return 1, nil
}

func (f *fakeCampsRepo) Delete(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return 1, nil
}

func (f *fakeCampsRepo) IncrementParticipants(_ context.Context, _ primitive.ObjectID, _ int64) (int64, error) {
	return 1, nil
}

var _ campsrepo.Repository = (*fakeCampsRepo)(nil)

func submitRequest(campID primitive.ObjectID, email string, rating int) transport.SubmitFeedbackRequest {
	return transport.SubmitFeedbackRequest{
		CampID:           campID.Hex(),
		ParticipantEmail: email,
		ParticipantName:  "Jo Smith",
		Rating:           rating,
		Comment:          "helpful staff",
	}
}

func TestSubmit_Success(t *testing.T) {
	camps := newFakeCampsRepo()
	campID, _ := camps.Create(context.Background(), campsrepo.Camp{Name: "Vision Care Camp"})
	svc := New(newFakeFeedbackRepo(), camps, logger.New("test"))

	resp, err := svc.Submit(context.Background(), "jo@example.com", submitRequest(campID, "jo@example.com", 4))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if resp.CampName != "Vision Care Camp" {
		t.Fatalf("expected snapshotted camp name, got %q", resp.CampName)
	}
	if resp.Rating != 4 {
		t.Fatalf("expected rating 4, got %d", resp.Rating)
	}
}

func TestSubmit_ForbidsOtherParticipant(t *testing.T) {
	camps := newFakeCampsRepo()
	campID, _ := camps.Create(context.Background(), campsrepo.Camp{Name: "Vision Care Camp"})
	svc := New(newFakeFeedbackRepo(), camps, logger.New("test"))

	_, err := svc.Submit(context.Background(), "jo@example.com", submitRequest(campID, "someone-else@example.com", 4))
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestSubmit_UnknownCamp(t *testing.T) {
	svc := New(newFakeFeedbackRepo(), newFakeCampsRepo(), logger.New("test"))

	_, err := svc.Submit(context.Background(), "jo@example.com", submitRequest(primitive.NewObjectID(), "jo@example.com", 4))
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubmit_ResubmitOverwrites(t *testing.T) {
	camps := newFakeCampsRepo()
	campID, _ := camps.Create(context.Background(), campsrepo.Camp{Name: "Vision Care Camp"})
	repo := newFakeFeedbackRepo()
	svc := New(repo, camps, logger.New("test"))

	first, err := svc.Submit(context.Background(), "jo@example.com", submitRequest(campID, "jo@example.com", 2))
	if err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	second, err := svc.Submit(context.Background(), "jo@example.com", submitRequest(campID, "jo@example.com", 5))
	if err != nil {
		t.Fatalf("second submit failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("expected resubmit to keep the same document")
	}
	if second.Rating != 5 {
		t.Fatalf("expected rating overwritten to 5, got %d", second.Rating)
	}

	all, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected a single feedback per camp and participant, got %d", len(all))
	}
}
