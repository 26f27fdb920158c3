package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"wemoment-backend/internal/models"
	"wemoment-backend/internal/state"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	inviteCodeLength = 8
	inviteCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	inviteCodeTTL    = 7 * 24 * time.Hour
)

// InviteAccepter confirms a redemption with the account backend
type InviteAccepter interface {
	AcceptInvite(ctx context.Context, token, code string) error
}

// InviteService is the only path that redeems invite codes.
// The reducer applies USE_INVITE_CODE blindly, so every check lives here.
type InviteService struct {
	mu       sync.Mutex
	store    *state.Store
	accepter InviteAccepter
	now      func() time.Time
}

// NewInviteService creates a new invite service. accepter may be nil.
func NewInviteService(store *state.Store, accepter InviteAccepter) *InviteService {
	return &InviteService{
		store:    store,
		accepter: accepter,
		now:      time.Now,
	}
}

// Generate issues a new code for the authenticated user
func (s *InviteService) Generate(ctx context.Context) (*models.InviteCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.State()
	if !current.Auth.IsAuthenticated || current.Auth.User == nil {
		return nil, ErrNotAuthenticated
	}
	if current.Auth.Partner != nil {
		return nil, ErrCoupleFull
	}

	code, err := generateUniqueInviteCode(current.InviteCodes)
	if err != nil {
		return nil, err
	}

	now := s.now()
	invite := models.InviteCode{
		ID:        uuid.New().String(),
		Code:      code,
		CreatedBy: current.Auth.User.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(inviteCodeTTL),
	}
	s.store.Dispatch(ctx, state.GenerateInviteCode{InviteCode: invite})

	log.Info().
		Str("user_id", invite.CreatedBy).
		Time("expires_at", invite.ExpiresAt).
		Msg("Invite code generated")

	return &invite, nil
}

// ValidateInviteCode finds a redeemable code matching the submitted value
func ValidateInviteCode(code string, codes []models.InviteCode, now time.Time) (models.InviteCode, error) {
	normalized := normalizeInviteCode(code)
	if normalized == "" {
		return models.InviteCode{}, ErrInviteNotFound
	}

	var found *models.InviteCode
	for i := range codes {
		if normalizeInviteCode(codes[i].Code) != normalized {
			continue
		}
		if codes[i].Redeemable(now) {
			return codes[i], nil
		}
		found = &codes[i]
	}

	if found == nil {
		return models.InviteCode{}, ErrInviteNotFound
	}
	if found.Used {
		return models.InviteCode{}, ErrInviteUsed
	}
	return models.InviteCode{}, ErrInviteExpired
}

// Redeem validates the code and links partner to the couple. When partner is
// nil a placeholder record is created for the redeeming side.
func (s *InviteService) Redeem(ctx context.Context, code string, partner *models.User) (*models.InviteCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.store.State()
	now := s.now()

	invite, err := ValidateInviteCode(code, current.InviteCodes, now)
	if err != nil {
		return nil, err
	}

	if partner == nil {
		partner = placeholderPartner(now)
	}
	if partner.ID == invite.CreatedBy {
		return nil, ErrOwnInviteCode
	}

	if s.accepter != nil {
		token := ""
		if current.Auth.Token != nil {
			token = *current.Auth.Token
		}
		if err := s.accepter.AcceptInvite(ctx, token, invite.Code); err != nil {
			return nil, fmt.Errorf("backend rejected invite code: %w", err)
		}
	}

	next := s.store.Dispatch(ctx, state.UseInviteCode{
		Code:   invite.Code,
		User:   *partner,
		UsedAt: now,
	})

	for _, c := range next.InviteCodes {
		if c.ID == invite.ID {
			log.Info().Str("partner_id", partner.ID).Msg("Invite code redeemed")
			return &c, nil
		}
	}
	return &invite, nil
}

// Invalidate removes a code so it can no longer be redeemed
func (s *InviteService) Invalidate(ctx context.Context, code string) error {
	normalized := normalizeInviteCode(code)
	for _, c := range s.store.State().InviteCodes {
		if normalizeInviteCode(c.Code) == normalized {
			s.store.Dispatch(ctx, state.InvalidateInviteCode{Code: c.Code})
			return nil
		}
	}
	return ErrInviteNotFound
}

func normalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func placeholderPartner(now time.Time) *models.User {
	return &models.User{
		ID:        uuid.New().String(),
		FirstName: "Parceiro(a)",
		Gender:    models.GenderFemale,
		CreatedAt: now,
	}
}

// generateUniqueInviteCode avoids codes already present in state
func generateUniqueInviteCode(existing []models.InviteCode) (string, error) {
	taken := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		taken[normalizeInviteCode(c.Code)] = struct{}{}
	}

	maxAttempts := 10
	for i := 0; i < maxAttempts; i++ {
		code, err := generateInviteCode()
		if err != nil {
			return "", err
		}
		if _, ok := taken[code]; !ok {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to generate unique code after %d attempts", maxAttempts)
}

// generateInviteCode generates a random 8-character code
func generateInviteCode() (string, error) {
	code := make([]byte, inviteCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(inviteCodeChars))))
		if err != nil {
			return "", fmt.Errorf("failed to generate invite code: %w", err)
		}
		code[i] = inviteCodeChars[n.Int64()]
	}
	return string(code), nil
}
