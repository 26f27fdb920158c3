package services

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrCoupleFull       = errors.New("couple already has a partner")
	ErrInviteNotFound   = errors.New("invite code not found")
	ErrInviteUsed       = errors.New("invite code already used")
	ErrInviteExpired    = errors.New("invite code expired")
	ErrOwnInviteCode    = errors.New("cannot redeem your own invite code")
	ErrInvalidAge       = errors.New("user must be at least 18 years old")
	ErrInvalidDate      = errors.New("date cannot be in the future")
	ErrInvalidProfile   = errors.New("invalid profile")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTravelNotFound   = errors.New("travel not found")
	ErrChecklistMissing = errors.New("checklist item not found")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrStorageDisabled  = errors.New("photo storage is not configured")
	ErrItemRequired     = errors.New("item is required")
	ErrUnsupportedMedia = errors.New("unsupported content type")
)
