package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"
)

// ProfileService validates and applies profile and relationship changes
type ProfileService struct {
	store *state.Store
	now   func() time.Time
}

// NewProfileService creates a new profile service
func NewProfileService(store *state.Store) *ProfileService {
	return &ProfileService{store: store, now: time.Now}
}

// UpdateProfile replaces the record of the user or partner whose id matches.
// The record is replaced wholesale, so callers send every field.
func (s *ProfileService) UpdateProfile(ctx context.Context, user models.User) (*models.User, error) {
	if err := validateUser(user, s.now()); err != nil {
		return nil, err
	}

	auth := s.store.State().Auth
	if !auth.IsAuthenticated || auth.User == nil {
		return nil, ErrNotAuthenticated
	}

	switch {
	case auth.User.ID == user.ID:
		s.store.Dispatch(ctx, state.UpdateUserProfile{User: user})
	case auth.Partner != nil && auth.Partner.ID == user.ID:
		s.store.Dispatch(ctx, state.UpdatePartnerProfile{User: user})
	default:
		return nil, fmt.Errorf("%w: unknown user %s", ErrInvalidProfile, user.ID)
	}
	return &user, nil
}

// SetRelationshipStartDate records when the relationship began
func (s *ProfileService) SetRelationshipStartDate(ctx context.Context, date string) error {
	date = strings.TrimSpace(date)
	if date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	if _, err := ParseLocalDate(date, s.now().Location()); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	if !ValidateRelationshipDate(date, s.now()) {
		return ErrInvalidDate
	}

	s.store.Dispatch(ctx, state.SetRelationshipStartDate{Date: date})
	return nil
}

// RelationshipDuration describes how long the couple has been together
func (s *ProfileService) RelationshipDuration() (string, bool) {
	start := s.store.State().Auth.RelationshipStartDate
	if start == nil {
		return "", false
	}
	return CalculateRelationshipDuration(*start, s.now())
}

func validateUser(user models.User, now time.Time) error {
	if user.ID == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidProfile)
	}
	if strings.TrimSpace(user.FirstName) == "" {
		return fmt.Errorf("%w: firstName is required", ErrInvalidProfile)
	}
	if user.Gender != "" && !user.Gender.Valid() {
		return fmt.Errorf("%w: unknown gender %q", ErrInvalidProfile, user.Gender)
	}
	if user.DateOfBirth != nil && !ValidateAge(*user.DateOfBirth, now) {
		return ErrInvalidAge
	}
	return nil
}
