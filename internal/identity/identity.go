// Package identity owns the ambient session state: which identity, if any,
// a request belongs to, how anonymous identities come into being, and how
// Google sign-ins are exchanged for a session.
package identity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/mdobak/go-xerrors"
	"github.com/mishaello/re-blog/internal/utils/collectionutils"
)

const (
	ProviderGoogle    = "google"
	ProviderAnonymous = "anonymous"
)

const sessionKeyIdentityID = "identity_id"

var (
	ErrNoIdentity       = xerrors.Message("No identity found")
	ErrIdentityCreation = xerrors.Message("Could not create an identity")
)

// Identity is a backend-managed auth identity. Provider distinguishes
// anonymous visitors from Google sign-ins.
type Identity struct {
	ID        string    `json:"id"`
	Provider  string    `json:"provider"`
	Email     *string   `json:"email,omitempty"`
	Name      *string   `json:"name,omitempty"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	Subject   string    `json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (i *Identity) IsAnonymous() bool {
	return i.Provider == ProviderAnonymous
}

// Store is the identity row contract against the data backend.
type Store interface {
	InsertIdentity(ctx context.Context, identity *Identity) (*Identity, error)
	IdentityByID(ctx context.Context, id string) (*Identity, error)
	IdentityBySubject(ctx context.Context, subject string) (*Identity, error)
}

// Listener observes session changes. It receives the new identity, or nil
// on sign-out.
type Listener func(*Identity)

type Service struct {
	log      *slog.Logger
	store    Store
	Sessions *scs.SessionManager
	google   *GoogleConfig
	cache    *collectionutils.SafeMap[string, *Identity]

	mu        sync.Mutex
	nextID    int
	listeners map[int]Listener
}

func NewService(store Store, google *GoogleConfig, log *slog.Logger) *Service {
	sessions := scs.New()
	sessions.Lifetime = 30 * 24 * time.Hour
	sessions.Cookie.HttpOnly = true

	return &Service{
		log:       log,
		store:     store,
		Sessions:  sessions,
		google:    google,
		cache:     collectionutils.NewSafeMap[string, *Identity](),
		listeners: make(map[int]Listener),
	}
}

// Current returns the identity attached to the request context session, if
// any.
func (s *Service) Current(ctx context.Context) (*Identity, bool) {
	id := s.Sessions.GetString(ctx, sessionKeyIdentityID)
	if id == "" {
		return nil, false
	}

	if cached, ok := s.cache.Get(id); ok {
		return cached, true
	}

	ident, err := s.store.IdentityByID(ctx, id)
	if err != nil {
		s.log.Error("loading session identity failed", "identity_id", id, "error", err)
		return nil, false
	}

	s.cache.Store(id, ident)
	return ident, true
}

// Ensure resolves the current identity, creating and signing in an anonymous
// one when the session carries none. It either returns a definite identity
// or fails; callers never have to deal with a half-created session.
func (s *Service) Ensure(ctx context.Context) (*Identity, error) {
	if ident, ok := s.Current(ctx); ok {
		return ident, nil
	}

	ident, err := s.store.InsertIdentity(ctx, &Identity{
		ID:        uuid.NewString(),
		Provider:  ProviderAnonymous,
		CreatedAt: time.Now(),
	})
	if err != nil {
		s.log.Error("creating anonymous identity failed", "error", err)
		return nil, xerrors.New(ErrIdentityCreation)
	}
	if ident == nil || ident.ID == "" {
		return nil, xerrors.New(ErrIdentityCreation)
	}

	s.signIn(ctx, ident)
	return ident, nil
}

// SignOut destroys the session and notifies listeners.
func (s *Service) SignOut(ctx context.Context) error {
	if id := s.Sessions.GetString(ctx, sessionKeyIdentityID); id != "" {
		s.cache.Delete(id)
	}

	if err := s.Sessions.Destroy(ctx); err != nil {
		return xerrors.New(err)
	}

	s.notify(nil)
	return nil
}

// OnChange registers a session-change listener and returns its teardown.
// Listeners registered by a discarded consumer must be unsubscribed, or they
// keep firing.
func (s *Service) OnChange(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Service) signIn(ctx context.Context, ident *Identity) {
	s.Sessions.Put(ctx, sessionKeyIdentityID, ident.ID)
	s.cache.Store(ident.ID, ident)
	s.notify(ident)
}

func (s *Service) notify(ident *Identity) {
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, fn := range s.listeners {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(ident)
	}
}
