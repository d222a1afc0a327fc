package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"github.com/Diatessaron/Best-Course-Ever/internal/password"
	"github.com/Diatessaron/Best-Course-Ever/internal/repository"
	"github.com/google/uuid"
)

// passwordRule is surfaced verbatim when a signup password is too weak.
const passwordRule = "password must be at least 8 characters long, contain at least one uppercase letter, one lowercase letter, one number, and one special character"

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New(passwordRule)
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("credentials are not correct")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// passwordSymbols is the punctuation set a password must draw its special
// character from. Characters outside letters, digits and this set are
// rejected outright.
const passwordSymbols = "@$!%*?&"

// SignupRequest carries the fields of a new account.
type SignupRequest struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Name     string        `json:"name"`
	Roles    []models.Role `json:"roles"`
	Courses  []string      `json:"courses,omitempty"`
}

// TokenResponse is returned on successful signup or login.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// AuthService issues, and revokes, bearer credentials.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*TokenResponse, error)
	Login(ctx context.Context, email, pass string) (*TokenResponse, error)
	// Logout revokes the token until its natural expiry. Idempotent; an
	// already-expired token is a no-op.
	Logout(ctx context.Context, token string) error
}

type authService struct {
	users     repository.UserRepository
	tokens    TokenService
	blacklist repository.TokenBlacklist
	logger    *slog.Logger
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users repository.UserRepository, tokens TokenService, blacklist repository.TokenBlacklist, logger *slog.Logger) AuthService {
	return &authService{
		users:     users,
		tokens:    tokens,
		blacklist: blacklist,
		logger:    logger,
	}
}

func (s *authService) Signup(ctx context.Context, req SignupRequest) (*TokenResponse, error) {
	if req.Email == "" || req.Password == "" || len(req.Roles) == 0 {
		return nil, ErrMissingFields
	}
	if len(req.Roles) > models.MaxRoles {
		return nil, ErrMissingFields
	}
	for _, role := range req.Roles {
		if !role.Valid() {
			return nil, ErrMissingFields
		}
	}
	if !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if !isStrongPassword(req.Password) {
		return nil, ErrWeakPassword
	}

	salt, err := password.NewSalt()
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: password.Hash(req.Password, salt),
		Salt:         salt,
		Roles:        req.Roles,
		Courses:      req.Courses,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	s.logger.Info("user signed up", "user_id", user.ID, "roles", user.Roles)
	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, email, pass string) (*TokenResponse, error) {
	if !emailPattern.MatchString(email) || pass == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindCredentialsByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}
	if user.Salt == "" {
		return nil, ErrInvalidCredentials
	}
	if !password.Verify(pass, user.Salt, user.PasswordHash) {
		s.logger.Warn("login rejected", "user_id", user.ID)
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return ErrInvalidToken
	}
	if claims.ExpiresAt == nil {
		return nil
	}

	expiry := claims.ExpiresAt.Time
	if !expiry.After(time.Now()) {
		return nil
	}
	if err := s.blacklist.Revoke(ctx, token, expiry); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	s.logger.Info("token revoked", "user_id", claims.UserID, "expires_at", expiry)
	return nil
}

func (s *authService) issueToken(user *models.User) (*TokenResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &TokenResponse{
		Token:     token,
		ExpiresIn: int64(s.tokens.Expiry().Seconds()),
	}, nil
}

// isStrongPassword enforces the platform password rule: minimum 8
// characters, one lowercase, one uppercase, one digit and one symbol from
// passwordSymbols, with no characters outside those classes.
func isStrongPassword(pass string) bool {
	if len(pass) < 8 {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range pass {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}
