package service

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"carecamp_backend/internal/camps/repository"
	"carecamp_backend/internal/camps/transport"
	"carecamp_backend/internal/store"
	"carecamp_backend/platform/apperr"
	"carecamp_backend/platform/logger"
)

// popularLimit is the number of camps the popular listing serves.
const popularLimit = 6

// Service provides business logic for camp listings.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new camps service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List returns camps matching the search/sort/limit request.
func (s *Service) List(ctx context.Context, req transport.ListCampsRequest) ([]transport.CampResponse, error) {
	params := repository.ListParams{
		Search:   strings.TrimSpace(req.Search),
		SortBy:   req.SortBy,
		SortDesc: req.SortOrder == "desc",
		Limit:    req.Limit,
	}

	camps, err := s.repo.List(ctx, params)
	if err != nil {
		s.log.StoreError("camps.list", err)
		return nil, apperr.Internal("could not list camps")
	}
	return toCampResponses(camps), nil
}

// Popular returns the camps with the most participants.
func (s *Service) Popular(ctx context.Context) ([]transport.CampResponse, error) {
	camps, err := s.repo.Popular(ctx, popularLimit)
	if err != nil {
		s.log.StoreError("camps.popular", err)
		return nil, apperr.Internal("could not list camps")
	}
	return toCampResponses(camps), nil
}

// Get returns a single camp by id.
func (s *Service) Get(ctx context.Context, idHex string) (transport.CampResponse, error) {
	id, err := store.ParseID(idHex)
	if err != nil {
		return transport.CampResponse{}, err
	}

	camp, err := s.repo.Get(ctx, id)
	if err != nil {
		return transport.CampResponse{}, err
	}
	return toCampResponse(camp), nil
}

// Create stores a new camp listing.
func (s *Service) Create(ctx context.Context, req transport.CreateCampRequest) (transport.CampResponse, error) {
	camp := repository.Camp{
		Name:                   req.Name,
		Image:                  req.Image,
		Location:               req.Location,
		DateTime:               req.DateTime,
		Fees:                   *req.Fees,
		HealthcareProfessional: req.HealthcareProfessional,
		Description:            req.Description,
		ParticipantCount:       0,
		CreatedAt:              time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, camp)
	if err != nil {
		s.log.StoreError("camps.create", err)
		return transport.CampResponse{}, apperr.Internal("could not create camp")
	}
	camp.ID = id

	return toCampResponse(camp), nil
}

// Update applies a partial update to a camp.
func (s *Service) Update(ctx context.Context, idHex string, req transport.UpdateCampRequest) (transport.CampResponse, error) {
	id, err := store.ParseID(idHex)
	if err != nil {
		return transport.CampResponse{}, err
	}

	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.Image != nil {
		set["image"] = *req.Image
	}
	if req.Location != nil {
		set["location"] = *req.Location
	}
	if req.DateTime != nil {
		set["dateTime"] = *req.DateTime
	}
	if req.Fees != nil {
		set["fees"] = *req.Fees
	}
	if req.HealthcareProfessional != nil {
		set["healthcareProfessional"] = *req.HealthcareProfessional
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if len(set) == 0 {
		return transport.CampResponse{}, apperr.Validation("no fields to update")
	}

	if _, err := s.repo.Update(ctx, id, set); err != nil {
		s.log.StoreError("camps.update", err)
		return transport.CampResponse{}, apperr.Internal("could not update camp")
	}

	camp, err := s.repo.Get(ctx, id)
	if err != nil {
		return transport.CampResponse{}, err
	}
	return toCampResponse(camp), nil
}

// Delete removes a camp by id.
func (s *Service) Delete(ctx context.Context, idHex string) error {
	id, err := store.ParseID(idHex)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.StoreError("camps.delete", err)
		return apperr.Internal("could not delete camp")
	}
	if deleted == 0 {
		return apperr.NotFound("camp not found")
	}
	return nil
}

func toCampResponse(c repository.Camp) transport.CampResponse {
	return transport.CampResponse{
		ID:                     c.ID.Hex(),
		Name:                   c.Name,
		Image:                  c.Image,
		Location:               c.Location,
		DateTime:               c.DateTime,
		Fees:                   c.Fees,
		HealthcareProfessional: c.HealthcareProfessional,
		Description:            c.Description,
		ParticipantCount:       c.ParticipantCount,
		CreatedAt:              c.CreatedAt,
	}
}

func toCampResponses(camps []repository.Camp) []transport.CampResponse {
	out := make([]transport.CampResponse, 0, len(camps))
	for _, c := range camps {
		out = append(out, toCampResponse(c))
	}
	return out
}
