package service

import (
	"context"

	campsrepo "carecamp_backend/internal/camps/repository"
	"carecamp_backend/internal/feedback/repository"
	"carecamp_backend/internal/feedback/transport"
	"carecamp_backend/internal/store"
	"carecamp_backend/platform/apperr"
	"carecamp_backend/platform/logger"
)

// Service provides business logic for camp feedback.
type Service struct {
	repo  repository.Repository
	camps campsrepo.Repository
	log   *logger.Logger
}

// New creates a new feedback service.
func New(repo repository.Repository, camps campsrepo.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, camps: camps, log: log}
}

// Submit writes the caller's feedback for a camp. A participant holds at
// most one feedback per camp; resubmitting replaces the earlier one.
func (s *Service) Submit(ctx context.Context, callerEmail string, req transport.SubmitFeedbackRequest) (transport.FeedbackResponse, error) {
	if req.ParticipantEmail != callerEmail {
		return transport.FeedbackResponse{}, apperr.Forbidden("cannot leave feedback on behalf of another participant")
	}

	campID, err := store.ParseID(req.CampID)
	if err != nil {
		return transport.FeedbackResponse{}, err
	}

	camp, err := s.camps.Get(ctx, campID)
	if err != nil {
		return transport.FeedbackResponse{}, err
	}

	fb := repository.Feedback{
		CampID:           campID,
		CampName:         camp.Name,
		ParticipantEmail: req.ParticipantEmail,
		ParticipantName:  req.ParticipantName,
		Rating:           req.Rating,
		Comment:          req.Comment,
	}
	if err := s.repo.Upsert(ctx, fb); err != nil {
		s.log.StoreError("feedback.upsert", err)
		return transport.FeedbackResponse{}, apperr.Internal("could not save feedback")
	}

	stored, err := s.repo.GetByCampAndEmail(ctx, campID, callerEmail)
	if err != nil {
		s.log.StoreError("feedback.read_back", err)
		return transport.FeedbackResponse{}, apperr.Internal("could not save feedback")
	}
	return toFeedbackResponse(stored), nil
}

// List returns all feedback, newest first.
func (s *Service) List(ctx context.Context) ([]transport.FeedbackResponse, error) {
	feedbacks, err := s.repo.List(ctx)
	if err != nil {
		s.log.StoreError("feedback.list", err)
		return nil, apperr.Internal("could not list feedback")
	}

	out := make([]transport.FeedbackResponse, 0, len(feedbacks))
	for _, f := range feedbacks {
		out = append(out, toFeedbackResponse(f))
	}
	return out, nil
}

func toFeedbackResponse(f repository.Feedback) transport.FeedbackResponse {
	return transport.FeedbackResponse{
		ID:               f.ID.Hex(),
		CampID:           f.CampID.Hex(),
		CampName:         f.CampName,
		ParticipantEmail: f.ParticipantEmail,
		ParticipantName:  f.ParticipantName,
		Rating:           f.Rating,
		Comment:          f.Comment,
		CreatedAt:        f.CreatedAt,
		UpdatedAt:        f.UpdatedAt,
	}
}
