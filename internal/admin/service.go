package admin

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/palinaresort/resort-booking-backend/internal/auth"
)

type Service interface {
	// Login verifies the credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, *Admin, error)
	// Seed creates the bootstrap admin account when the table is empty.
	Seed(ctx context.Context, username, password string) error
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
	jwt    *auth.JWTManager
}

func NewService(repo Repository, hasher auth.PasswordHasher, jwt *auth.JWTManager) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
		jwt:    jwt,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (string, *Admin, error) {
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(a.ID, a.Username)
	if err != nil {
		return "", nil, err
	}
	return token, a, nil
}

func (s *service) Seed(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		log.Warn().Msg("admin seed skipped, no bootstrap credentials configured")
		return nil
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}
	a := &Admin{Username: username, PasswordHash: hash}
	if err := s.repo.Create(ctx, a); err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("bootstrap admin created")
	return nil
}
