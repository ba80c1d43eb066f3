package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Simply-Coder-start/Medi-Triage/internal/session"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

// Service registers and authenticates accounts.
type Service struct {
	repo   Repository
	tokens *TokenIssuer
	logger *logging.Logger
}

// NewService constructs an identity service.
func NewService(repo Repository, tokens *TokenIssuer, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, tokens: tokens, logger: logger}
}

// Register creates an account and returns it with a fresh session token.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}
	username := strings.TrimSpace(req.Username)
	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, "", ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         req.Role,
		Name:         strings.TrimSpace(req.Name),
		CreatedAt:    time.Now().UTC(),
	}
	if req.Role == session.RoleDoctor {
		user.Specialty = strings.TrimSpace(req.Specialty)
		user.Location = strings.TrimSpace(req.Location)
		if user.Location == "" {
			user.Location = DefaultLocation
		}
		user.Bio = strings.TrimSpace(req.Bio)
		user.CertDataURL = req.CertDataURL
	}

	if err := s.repo.Insert(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(session.Session{Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user registered", "username", user.Username, "role", user.Role)
	return &user, token, nil
}

// Login checks credentials and role, returning the account and a token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if user.Role != req.Role {
		return nil, "", ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(session.Session{Username: user.Username, Role: user.Role})
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("user logged in", "username", user.Username, "role", user.Role)
	return user, token, nil
}

// Get returns the account for a username.
func (s *Service) Get(ctx context.Context, username string) (*User, error) {
	return s.repo.FindByUsername(ctx, username)
}

// UpdateDoctorProfile edits the bio and/or location of the doctor's own
// profile. Nil fields are left unchanged.
func (s *Service) UpdateDoctorProfile(ctx context.Context, sess session.Session, bio, location *string) (*User, error) {
	if !sess.IsDoctor() {
		return nil, ErrInvalidCredentials
	}
	user, err := s.repo.FindByUsername(ctx, sess.Username)
	if err != nil {
		return nil, err
	}
	if bio != nil {
		user.Bio = *bio
	}
	if location != nil {
		user.Location = *location
	}
	if err := s.repo.Update(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// DisplayName resolves a username to the account's display name. Dangling
// references are tolerated: an unknown username is rendered as itself.
func (s *Service) DisplayName(ctx context.Context, username string) string {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return username
	}
	return user.Name
}
