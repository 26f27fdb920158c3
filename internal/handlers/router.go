package handlers

import (
	"net/http"

	"wemoment-backend/internal/middleware"
	"wemoment-backend/internal/services"
	"wemoment-backend/internal/state"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// Dependencies holds everything the HTTP layer calls into
type Dependencies struct {
	Store          *state.Store
	AuthService    *services.AuthService
	InviteService  *services.InviteService
	ProfileService *services.ProfileService
	PhotoService   *services.PhotoService
	TravelService  *services.TravelService
	Hub            *services.WSHub
}

// NewRouter builds the HTTP routes
func NewRouter(deps Dependencies) http.Handler {
	sessionHandler := NewSessionHandler(deps.AuthService)
	stateHandler := NewStateHandler(deps.Store)
	inviteHandler := NewInviteHandler(deps.InviteService)
	profileHandler := NewProfileHandler(deps.ProfileService)
	photoHandler := NewPhotoHandler(deps.PhotoService)
	travelHandler := NewTravelHandler(deps.TravelService)
	wsHandler := NewWebSocketHandler(deps.Hub, deps.AuthService, deps.Store)

	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(middleware.RequestLogger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/session/login", sessionHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(deps.AuthService))

			r.Post("/session/logout", sessionHandler.Logout)

			r.Get("/state", stateHandler.GetState)
			r.Post("/actions", stateHandler.Dispatch)

			r.Post("/invites", inviteHandler.Generate)
			r.Post("/invites/redeem", inviteHandler.Redeem)
			r.Delete("/invites/{code}", inviteHandler.Invalidate)

			r.Put("/profile", profileHandler.UpdateProfile)
			r.Put("/relationship", profileHandler.SetRelationship)
			r.Get("/relationship/duration", profileHandler.Duration)

			r.Get("/photos", photoHandler.GetPhotos)
			r.Post("/photos/upload", photoHandler.UploadPhoto)
			r.Delete("/photos/{photo_id}", photoHandler.DeletePhoto)

			r.Post("/travels/{travel_id}/checklist", travelHandler.AddChecklistItem)
			r.Patch("/travels/{travel_id}/checklist/{item_id}", travelHandler.ToggleChecklistItem)
			r.Post("/travels/{travel_id}/expenses", travelHandler.AddExpense)
			r.Get("/travels/{travel_id}/summary", travelHandler.Summary)
		})
	})

	// WebSocket route
	r.Get("/ws", wsHandler.HandleWebSocket)

	return r
}
