package state

import (
	"context"
	"reflect"
	"sync"

	"wemoment-backend/internal/models"

	"github.com/rs/zerolog/log"
)

// Persistence stores the whole state tree under a single key
type Persistence interface {
	Load(ctx context.Context) (*models.AppState, error)
	Save(ctx context.Context, state models.AppState) error
	Clear(ctx context.Context) error
}

// Listener is called after every dispatch that changed the state, in commit
// order. Listeners must not dispatch.
type Listener func(prev, next models.AppState, action Action)

// Store owns the application state tree. All mutations go through Dispatch.
type Store struct {
	mu        sync.Mutex
	state     models.AppState
	persist   Persistence
	seedDemo  bool
	listeners []listenerEntry
	nextID    int
	committed uint64

	// commits are published in the order they were reduced; a commit
	// waits on turn until every earlier one has been saved and announced
	turnMu    sync.Mutex
	turn      *sync.Cond
	published uint64
}

type listenerEntry struct {
	id int
	fn Listener
}

// Option configures a Store
type Option func(*Store)

// WithDemoSeed controls whether an empty store is seeded with demo photos
func WithDemoSeed(enabled bool) Option {
	return func(s *Store) {
		s.seedDemo = enabled
	}
}

// NewStore creates a store holding the empty state
func NewStore(persist Persistence, opts ...Option) *Store {
	s := &Store{
		state:    models.NewAppState(),
		persist:  persist,
		seedDemo: true,
	}
	s.turn = sync.NewCond(&s.turnMu)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bootstrap restores the persisted snapshot, or seeds demo content when
// nothing usable is stored. It never fails.
func (s *Store) Bootstrap(ctx context.Context) models.AppState {
	var snapshot *models.AppState
	if s.persist != nil {
		loaded, err := s.persist.Load(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load state snapshot, starting fresh")
		} else {
			snapshot = loaded
		}
	}

	if snapshot != nil && !snapshot.IsEmpty() {
		log.Info().
			Int("events", len(snapshot.Events)).
			Int("photos", len(snapshot.Photos)).
			Bool("authenticated", snapshot.Auth.IsAuthenticated).
			Msg("State restored from snapshot")
		return s.Dispatch(ctx, LoadData{Snapshot: *snapshot})
	}

	if s.seedDemo {
		log.Info().Msg("No stored state, seeding demo content")
		return s.Dispatch(ctx, LoadMockData{})
	}
	return s.State()
}

// State returns the current state tree
func (s *Store) State() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies an action and persists the result.
// The store lock covers only the reduction: saving and listeners run after it
// is released, one commit at a time in commit order, so listeners may read
// State. Persistence failures are logged and never block the in-memory transition.
func (s *Store) Dispatch(ctx context.Context, action Action) models.AppState {
	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	s.state = next

	_, logout := deref(action).(Logout)
	if !logout && reflect.DeepEqual(prev, next) {
		s.mu.Unlock()
		return next
	}

	s.committed++
	seq := s.committed
	listeners := make([]listenerEntry, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.waitTurn(seq)
	defer s.endTurn(seq)

	s.save(ctx, next, logout)

	log.Debug().Str("action", string(action.Type())).Msg("State updated")
	for _, l := range listeners {
		l.fn(prev, next, action)
	}
	return next
}

func (s *Store) waitTurn(seq uint64) {
	s.turnMu.Lock()
	for s.published != seq-1 {
		s.turn.Wait()
	}
	s.turnMu.Unlock()
}

func (s *Store) endTurn(seq uint64) {
	s.turnMu.Lock()
	s.published = seq
	s.turnMu.Unlock()
	s.turn.Broadcast()
}

func (s *Store) save(ctx context.Context, next models.AppState, logout bool) {
	if s.persist == nil {
		return
	}

	if logout {
		if err := s.persist.Clear(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to clear state snapshot")
		}
		return
	}

	if err := s.persist.Save(ctx, next); err != nil {
		log.Error().Err(err).Msg("Failed to save state snapshot")
	}
}

// Subscribe registers a listener and returns a function removing it
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listenerEntry{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}
