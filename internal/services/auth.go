package services

import (
	"context"
	"fmt"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

// Authenticator talks to the account backend
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context, token string) (*models.Profile, error)
}

// AuthService handles login, logout and session tokens
type AuthService struct {
	store     *state.Store
	backend   Authenticator
	jwtSecret string
	jwtTTL    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(store *state.Store, backend Authenticator, jwtSecret string, ttlDays int) *AuthService {
	return &AuthService{
		store:     store,
		backend:   backend,
		jwtSecret: jwtSecret,
		jwtTTL:    time.Duration(ttlDays) * 24 * time.Hour,
	}
}

// LoginResult is returned to the client after a successful login
type LoginResult struct {
	Token string          `json:"token"`
	State models.AppState `json:"state"`
}

// Login authenticates against the backend, installs the session in the store
// and issues a session token for this service
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	bearer, err := s.backend.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	profile, err := s.backend.Profile(ctx, bearer)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	next := s.store.Dispatch(ctx, state.Login{
		User:    profile.User,
		Partner: profile.Partner,
		Token:   &bearer,
	})
	if profile.RelationshipStartDate != nil && *profile.RelationshipStartDate != "" {
		next = s.store.Dispatch(ctx, state.SetRelationshipStartDate{Date: *profile.RelationshipStartDate})
	}

	token, err := s.GenerateJWT(profile.User.ID)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("user_id", profile.User.ID).
		Bool("couple_full", next.Auth.IsCoupleFull).
		Msg("User logged in")

	return &LoginResult{Token: token, State: next}, nil
}

// Logout discards the whole state and its persisted snapshot
func (s *AuthService) Logout(ctx context.Context) {
	s.store.Dispatch(ctx, state.Logout{})
	log.Info().Msg("User logged out")
}

// GenerateJWT generates a session token for a user
func (s *AuthService) GenerateJWT(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     now.Add(s.jwtTTL).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT validates a session token and returns the user ID
func (s *AuthService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: user_id not found", ErrInvalidToken)
	}

	return userID, nil
}

// Authorize validates a session token and checks that its user still
// belongs to the current session
func (s *AuthService) Authorize(tokenString string) (string, error) {
	userID, err := s.ValidateJWT(tokenString)
	if err != nil {
		return "", err
	}

	auth := s.store.State().Auth
	if !auth.IsAuthenticated {
		return "", ErrNotAuthenticated
	}
	if auth.User != nil && auth.User.ID == userID {
		return userID, nil
	}
	if auth.Partner != nil && auth.Partner.ID == userID {
		return userID, nil
	}
	return "", ErrNotAuthenticated
}
