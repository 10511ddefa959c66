package users

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"logistics-service/pkg/apperr"
	"logistics-service/pkg/jwt"
	"logistics-service/pkg/password"
	"logistics-service/pkg/validation"
)

// Service contains user business logic.
type Service struct {
	repo   Repository
	hasher password.Hasher
	codec  *jwt.Codec
}

// NewService creates a user service.
func NewService(repo Repository, hasher password.Hasher, codec *jwt.Codec) *Service {
	return &Service{repo: repo, hasher: hasher, codec: codec}
}

// Register creates a new account and returns a JWT. Role defaults to USER.
// A duplicate email is rejected by the storage constraint and its error is
// returned as-is.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if err := validation.ValidateName(req.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = RoleUser
	}
	if role != RoleUser && role != RoleAdmin {
		return nil, apperr.Invalid("unknown role %q", role)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.codec.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

// Login authenticates a user and returns a JWT.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if !s.hasher.Verify(req.Password, u.PasswordHash) {
		return nil, errors.New("invalid credentials")
	}

	token, err := s.codec.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: u}, nil
}

// GetByID fetches a single user by primary key.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
