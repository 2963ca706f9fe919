package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/server/auth"
)

// Service is the authentication gateway: it owns registration and login and
// is the only component that touches plaintext passwords.
type Service struct {
	repo   Repository
	hasher *auth.PasswordHasher
	tokens *auth.TokenService
}

func NewService(repo Repository, hasher *auth.PasswordHasher, tokens *auth.TokenService) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a user and returns a bearer token carrying the new user's
// id and username. The length of username and password is the router's
// validation concern; here only uniqueness is enforced. The early lookup
// gives a friendly answer for the common case, the store constraint closes
// the race between concurrent registrations: either way the caller sees
// common.ErrorUserExists and exactly one user row exists afterwards.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {

	_, err := s.repo.GetByUsername(ctx, username)
	if err == nil {
		return "", common.ErrorUserExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", common.ErrorInternal
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, &User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorUserExists) {
			return "", common.ErrorUserExists
		}
		return "", common.ErrorInternal
	}

	token, err := s.tokens.Issue(user.ID, username)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}

// Login verifies the credentials and returns a bearer token with the user id
// as subject. An unknown username and a wrong password are indistinguishable
// to the caller, so usernames cannot be enumerated. Read-only.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", common.ErrorInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, "")
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
