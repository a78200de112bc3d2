package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/ZanzyTHEbar/ai-adoption-score/internal/errors"
)

// DefaultSessionTTL is how long an issued session token stays valid
const DefaultSessionTTL = 24 * time.Hour

// ErrInvalidSession is returned for a token that fails verification or whose
// user has been deleted
var ErrInvalidSession = errors.New("invalid session")

// UserService issues and validates anonymous respondent sessions
type UserService struct {
	repo      *Repository
	jwtSecret []byte
	ttl       time.Duration
}

// Session is returned to a client that asks for a verified identity
type Session struct {
	UserID    string    `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewUserService creates a new user service
func NewUserService(repo *Repository, jwtSecret string) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: []byte(jwtSecret),
		ttl:       DefaultSessionTTL,
	}
}

// WithTTL overrides the session lifetime
func (s *UserService) WithTTL(ttl time.Duration) *UserService {
	s.ttl = ttl
	return s
}

// StartSession creates an anonymous user and a signed token for it
func (s *UserService) StartSession(ctx context.Context, ipHash, userAgent string) (*Session, error) {
	user, err := s.repo.CreateUser(ctx, ipHash, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	expiresAt := time.Now().Add(s.ttl)
	token, err := s.GenerateSessionToken(user.ID, expiresAt)
	if err != nil {
		return nil, err
	}

	return &Session{UserID: user.ID, Token: token, ExpiresAt: expiresAt.UTC()}, nil
}

// GenerateSessionToken signs an HS256 token for userID
func (s *UserService) GenerateSessionToken(userID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken validates a JWT token and returns the user ID
func (s *UserService) ValidateSessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithExpirationRequired())

	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userID, ok := claims["user_id"].(string)
		if !ok || userID == "" {
			return "", fmt.Errorf("user_id not found in token")
		}
		return userID, nil
	}

	return "", fmt.Errorf("invalid token")
}

// ResolveUser validates a token and confirms the user still exists
func (s *UserService) ResolveUser(ctx context.Context, tokenString string) (*User, error) {
	userID, err := s.ValidateSessionToken(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	user, err := s.repo.GetUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("%w: user no longer exists", ErrInvalidSession)
	}
	return user, err
}

// ResolveSession backs bearer authentication. Bad or orphaned tokens are
// unauthorized; lookup failures are storage errors.
func (s *UserService) ResolveSession(ctx context.Context, tokenString string) (string, error) {
	user, err := s.ResolveUser(ctx, tokenString)
	switch {
	case errors.Is(err, ErrInvalidSession):
		return "", apperrors.NewUnauthorizedError("invalid session token", err)
	case err != nil:
		return "", apperrors.NewStorageError("lookup session user", err)
	}
	return user.ID, nil
}
