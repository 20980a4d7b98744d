package service

import (
	"context"
	"strings"
	"time"

	"carecamp_backend/internal/auth"
	campsrepo "carecamp_backend/internal/camps/repository"
	"carecamp_backend/internal/registrations/repository"
	"carecamp_backend/internal/registrations/transport"
	"carecamp_backend/internal/store"
	"carecamp_backend/platform/apperr"
	"carecamp_backend/platform/logger"
)

const msgNotRegistrationOwner = "registration belongs to another participant"

// Service provides business logic for camp registrations.
type Service struct {
	repo  repository.Repository
	camps campsrepo.Repository
	roles auth.RoleLookup
	log   *logger.Logger
}

// New creates a new registrations service. roles resolves the caller's
// stored role so admins can read registrations they do not own.
func New(repo repository.Repository, camps campsrepo.Repository, roles auth.RoleLookup, log *logger.Logger) *Service {
	return &Service{repo: repo, camps: camps, roles: roles, log: log}
}

// Create enrolls the caller in a camp. The participant email must equal
// the authenticated caller's email. On success the referenced camp's
// participant count is incremented; the created registration is only
// returned when the increment succeeds. The insert is not rolled back on
// increment failure.
func (s *Service) Create(ctx context.Context, callerEmail string, req transport.CreateRegistrationRequest) (transport.RegistrationResponse, error) {
	if req.ParticipantEmail != callerEmail {
		return transport.RegistrationResponse{}, apperr.Forbidden("cannot register on behalf of another participant")
	}

	campID, err := store.ParseID(req.CampID)
	if err != nil {
		return transport.RegistrationResponse{}, err
	}

	camp, err := s.camps.Get(ctx, campID)
	if err != nil {
		return transport.RegistrationResponse{}, err
	}

	reg := repository.Registration{
		CampID:             campID,
		CampName:           camp.Name,
		Fees:               camp.Fees,
		ParticipantEmail:   req.ParticipantEmail,
		ParticipantName:    req.ParticipantName,
		Age:                req.Age,
		Phone:              req.Phone,
		Gender:             req.Gender,
		EmergencyContact:   req.EmergencyContact,
		PaymentStatus:      repository.PaymentUnpaid,
		ConfirmationStatus: repository.ConfirmationPending,
		CreatedAt:          time.Now().UTC(),
	}

	id, err := s.repo.Create(ctx, reg)
	if err != nil {
		s.log.StoreError("registrations.create", err)
		return transport.RegistrationResponse{}, apperr.Internal("could not create registration")
	}
	reg.ID = id

	modified, err := s.camps.IncrementParticipants(ctx, campID, 1)
	if err != nil || modified == 0 {
		if err != nil {
			s.log.StoreError("registrations.increment_participants", err)
		}
		return transport.RegistrationResponse{}, apperr.Internal("registration saved but participant count not updated, contact admin")
	}

	return toRegistrationResponse(reg), nil
}

// ListAll returns every registration. Admin only.
func (s *Service) ListAll(ctx context.Context, req transport.ListRegistrationsRequest) ([]transport.RegistrationResponse, error) {
	regs, err := s.repo.ListAll(ctx, strings.TrimSpace(req.Search))
	if err != nil {
		s.log.StoreError("registrations.list_all", err)
		return nil, apperr.Internal("could not list registrations")
	}
	return toRegistrationResponses(regs), nil
}

// ListByEmail returns a participant's own registrations.
func (s *Service) ListByEmail(ctx context.Context, email string, req transport.ListRegistrationsRequest) ([]transport.RegistrationResponse, error) {
	regs, err := s.repo.ListByEmail(ctx, email, strings.TrimSpace(req.Search), req.PaymentStatus)
	if err != nil {
		s.log.StoreError("registrations.list_by_email", err)
		return nil, apperr.Internal("could not list registrations")
	}
	return toRegistrationResponses(regs), nil
}

// Get returns a single registration, visible to its participant and to
// admins.
func (s *Service) Get(ctx context.Context, callerEmail, idHex string) (transport.RegistrationResponse, error) {
	id, err := store.ParseID(idHex)
	if err != nil {
		return transport.RegistrationResponse{}, err
	}

	reg, err := s.repo.Get(ctx, id)
	if err != nil {
		return transport.RegistrationResponse{}, err
	}
	if reg.ParticipantEmail != callerEmail {
		role, err := s.roles.RoleByEmail(ctx, callerEmail)
		if err != nil || role != auth.RoleAdmin {
			return transport.RegistrationResponse{}, apperr.Forbidden(msgNotRegistrationOwner)
		}
	}
	return toRegistrationResponse(reg), nil
}

// Cancel removes the caller's own registration. Cancellation is
// unconditional on confirmation state and does not decrement the camp's
// participant count.
func (s *Service) Cancel(ctx context.Context, callerEmail, idHex string) error {
	reg, err := s.owned(ctx, callerEmail, idHex)
	if err != nil {
		return err
	}

	if _, err := s.repo.Delete(ctx, reg.ID); err != nil {
		s.log.StoreError("registrations.cancel", err)
		return apperr.Internal("could not cancel registration")
	}
	return nil
}

// Confirm moves a registration from Pending to Confirmed. Admin only.
func (s *Service) Confirm(ctx context.Context, idHex string) (transport.RegistrationResponse, error) {
	id, err := store.ParseID(idHex)
	if err != nil {
		return transport.RegistrationResponse{}, err
	}

	reg, err := s.repo.Get(ctx, id)
	if err != nil {
		return transport.RegistrationResponse{}, err
	}

	if reg.ConfirmationStatus != repository.ConfirmationConfirmed {
		if _, err := s.repo.SetConfirmationStatus(ctx, id, repository.ConfirmationConfirmed); err != nil {
			s.log.StoreError("registrations.confirm", err)
			return transport.RegistrationResponse{}, apperr.Internal("could not confirm registration")
		}
		reg.ConfirmationStatus = repository.ConfirmationConfirmed
	}

	return toRegistrationResponse(reg), nil
}

// Delete removes any registration by id. Admin only; does not decrement
// the camp's participant count.
func (s *Service) Delete(ctx context.Context, idHex string) error {
	id, err := store.ParseID(idHex)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.StoreError("registrations.delete", err)
		return apperr.Internal("could not delete registration")
	}
	if deleted == 0 {
		return apperr.NotFound("registration not found")
	}
	return nil
}

// owned fetches a registration and verifies the caller is its
// participant.
func (s *Service) owned(ctx context.Context, callerEmail, idHex string) (repository.Registration, error) {
	id, err := store.ParseID(idHex)
	if err != nil {
		return repository.Registration{}, err
	}

	reg, err := s.repo.Get(ctx, id)
	if err != nil {
		return repository.Registration{}, err
	}
	if reg.ParticipantEmail != callerEmail {
		return repository.Registration{}, apperr.Forbidden(msgNotRegistrationOwner)
	}
	return reg, nil
}

func toRegistrationResponse(reg repository.Registration) transport.RegistrationResponse {
	return transport.RegistrationResponse{
		ID:                 reg.ID.Hex(),
		CampID:             reg.CampID.Hex(),
		CampName:           reg.CampName,
		Fees:               reg.Fees,
		ParticipantEmail:   reg.ParticipantEmail,
		ParticipantName:    reg.ParticipantName,
		Age:                reg.Age,
		Phone:              reg.Phone,
		Gender:             reg.Gender,
		EmergencyContact:   reg.EmergencyContact,
		PaymentStatus:      reg.PaymentStatus,
		ConfirmationStatus: reg.ConfirmationStatus,
		CreatedAt:          reg.CreatedAt,
	}
}

func toRegistrationResponses(regs []repository.Registration) []transport.RegistrationResponse {
	out := make([]transport.RegistrationResponse, 0, len(regs))
	for _, reg := range regs {
		out = append(out, toRegistrationResponse(reg))
	}
	return out
}
