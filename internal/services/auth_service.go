package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/anonto42/inko/backend/internal/apperrors"
	"github.com/anonto42/inko/backend/internal/auth"
	"github.com/anonto42/inko/backend/internal/metrics"
	"github.com/anonto42/inko/backend/internal/models"
	"github.com/anonto42/inko/backend/internal/repositories"
	"github.com/anonto42/inko/backend/validators"
)

// AuthResult is returned by signup and login.
type AuthResult struct {
	User  models.UserPublic `json:"user"`
	Token string            `json:"token"`
}

type AuthService struct {
	users   repositories.UserRepository
	hasher  *auth.PasswordHasher
	tokens  *auth.TokenIssuer
	metrics *metrics.Metrics
}

func NewAuthService(users repositories.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenIssuer, m *metrics.Metrics) *AuthService {
	return &AuthService{users: users, hasher: hasher, tokens: tokens, metrics: m}
}

// Signup creates an account. Usernames are unique by exact match.
func (s *AuthService) Signup(ctx context.Context, req models.CredentialsRequest) (*AuthResult, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validators.Struct(&req); err != nil {
		return nil, err
	}

	if _, err := s.users.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.Conflict("Username already exists")
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, apperrors.Internal("Signup failed", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		if auth.IsTooLong(err) {
			return nil, apperrors.Validation("Password must be at most 72 bytes")
		}
		return nil, apperrors.Internal("Signup failed", err)
	}

	user := &models.User{Username: req.Username, Password: hash}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("Username already exists")
		}
		return nil, apperrors.Internal("Signup failed", err)
	}
	s.metrics.Signup()

	return s.result(user, "Signup failed")
}

// Login checks credentials. Unknown users and wrong passwords are reported identically.
func (s *AuthService) Login(ctx context.Context, req models.CredentialsRequest) (*AuthResult, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.Validation(validators.MissingFields)
	}

	user, err := s.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.Internal("Login failed", err)
		}
		s.hasher.Burn(req.Password)
		s.metrics.Login(false)
		return nil, apperrors.Unauthorized("Invalid credentials")
	}

	ok, rehash := s.hasher.Verify(user.Password, req.Password)
	if !ok {
		s.metrics.Login(false)
		return nil, apperrors.Unauthorized("Invalid credentials")
	}
	if rehash {
		s.upgradeHash(ctx, user, req.Password)
	}
	s.metrics.Login(true)

	return s.result(user, "Login failed")
}

// upgradeHash replaces a legacy or cheaper hash. Failure only costs another try next login.
func (s *AuthService) upgradeHash(ctx context.Context, user *models.User, password string) {
	hash, err := s.hasher.Hash(password)
	if err == nil {
		err = s.users.UpdatePassword(ctx, user.ID, hash)
	}
	if err != nil {
		slog.WarnContext(ctx, "password rehash failed", "user_id", user.ID, "error", err)
		return
	}
	user.Password = hash
}

func (s *AuthService) result(user *models.User, failMsg string) (*AuthResult, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		return nil, apperrors.Internal(failMsg, err)
	}
	return &AuthResult{User: user.ToPublic(), Token: token}, nil
}
