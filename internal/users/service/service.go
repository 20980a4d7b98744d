package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"carecamp_backend/internal/store"
	"carecamp_backend/internal/users/repository"
	"carecamp_backend/internal/users/transport"
	"carecamp_backend/platform/apperr"
	"carecamp_backend/platform/logger"
)

const (
	// RoleUser is assigned to every account on first sign-in.
	RoleUser = "user"
	// RoleAdmin marks platform administrators.
	RoleAdmin = "admin"
)

// Service provides business logic for user accounts.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new users service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Register stores a user on first sign-in. If the email already exists
// the stored record is returned unchanged; sign-in is repeatable.
func (s *Service) Register(ctx context.Context, req transport.CreateUserRequest) (transport.UserResponse, bool, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		return toUserResponse(existing), false, nil
	}
	if !apperr.Is(err, apperr.KindNotFound) {
		return transport.UserResponse{}, false, err
	}

	user := repository.User{
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Role:      RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	id, err := s.repo.Create(ctx, user)
	if err != nil {
		// Two first sign-ins can race the get-then-insert; the loser hits
		// the unique email index and the stored record wins.
		if store.IsDuplicateKey(err) {
			existing, getErr := s.repo.GetByEmail(ctx, req.Email)
			if getErr != nil {
				return transport.UserResponse{}, false, getErr
			}
			return toUserResponse(existing), false, nil
		}
		s.log.StoreError("users.create", err)
		return transport.UserResponse{}, false, apperr.Internal("could not create user")
	}
	user.ID = id

	return toUserResponse(user), true, nil
}

// List returns all users matching the optional search term.
func (s *Service) List(ctx context.Context, req transport.ListUsersRequest) ([]transport.UserResponse, error) {
	users, err := s.repo.List(ctx, req.Search)
	if err != nil {
		s.log.StoreError("users.list", err)
		return nil, apperr.Internal("could not list users")
	}

	out := make([]transport.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// UpdateProfile applies a partial profile update for the given email.
func (s *Service) UpdateProfile(ctx context.Context, email string, req transport.UpdateProfileRequest) (transport.UserResponse, error) {
	set := bson.M{}
	if req.Name != nil {
		set["name"] = *req.Name
	}
	if req.PhotoURL != nil {
		set["photoURL"] = *req.PhotoURL
	}
	if len(set) == 0 {
		return transport.UserResponse{}, apperr.Validation("no fields to update")
	}

	if _, err := s.repo.UpdateProfile(ctx, email, set); err != nil {
		s.log.StoreError("users.update_profile", err)
		return transport.UserResponse{}, apperr.Internal("could not update profile")
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return transport.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

// Delete removes a user by id.
func (s *Service) Delete(ctx context.Context, idHex string) error {
	id, err := store.ParseID(idHex)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.log.StoreError("users.delete", err)
		return apperr.Internal("could not delete user")
	}
	if deleted == 0 {
		return apperr.NotFound("user not found")
	}
	return nil
}

// IsAdmin reports whether the account with the given email has the admin
// role. An absent account is simply not an admin.
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	role, err := s.RoleByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return role == RoleAdmin, nil
}

// RoleByEmail resolves the stored role for an email. Satisfies the auth
// gate's RoleLookup.
func (s *Service) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		var domainErr *apperr.Error
		if errors.As(err, &domainErr) && domainErr.Kind == apperr.KindNotFound {
			return "", nil
		}
		return "", err
	}
	return user.Role, nil
}

func toUserResponse(u repository.User) transport.UserResponse {
	return transport.UserResponse{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Name:      u.Name,
		PhotoURL:  u.PhotoURL,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
