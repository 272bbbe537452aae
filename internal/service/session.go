package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/relaymarket/relay-go/internal/domain/identity"
	apperrors "github.com/relaymarket/relay-go/internal/errors"
	"github.com/relaymarket/relay-go/internal/ports"
)

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	Auth   ports.AuthAPI
	Store  ports.CredentialStore
	Logger *slog.Logger
}

// SessionManager is the single source of truth for who is logged in and as
// what kind. It owns the persisted credential lifecycle; everything else
// reads derived state through Snapshot.
type SessionManager struct {
	auth   ports.AuthAPI
	store  ports.CredentialStore
	logger *slog.Logger

	mu      sync.RWMutex
	session identity.Session
	loading bool
}

// NewSessionManager constructs a SessionManager in the logged-out state.
func NewSessionManager(opts SessionManagerOptions) *SessionManager {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		auth:    opts.Auth,
		store:   opts.Store,
		logger:  logger,
		session: identity.LoggedOut(),
	}
}

// Snapshot is the derived session state consumed by guards and screens.
type Snapshot struct {
	IsLoading       bool
	IsAuthenticated bool
	IsStaff         bool
	StaffRole       identity.StaffRole
	Principal       identity.Principal
}

// Snapshot returns the current derived state.
func (m *SessionManager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	principal, _ := m.session.Principal()
	return Snapshot{
		IsLoading:       m.loading,
		IsAuthenticated: m.session.IsAuthenticated(),
		IsStaff:         m.session.IsStaff(),
		StaffRole:       m.session.StaffRole(),
		Principal:       principal,
	}
}

// LoginShopper authenticates against the shopper login endpoint and resolves
// the principal. On success the credential is persisted with the shopper kind.
func (m *SessionManager) LoginShopper(ctx context.Context, email, password string) error {
	return m.login(ctx, identity.KindShopper, email, password)
}

// LoginStaff authenticates against the staff login endpoint and resolves the
// principal. On success the credential is persisted with the staff kind.
func (m *SessionManager) LoginStaff(ctx context.Context, email, password string) error {
	return m.login(ctx, identity.KindStaff, email, password)
}

// login replaces whatever session was active before; at most one principal
// kind is ever active.
func (m *SessionManager) login(ctx context.Context, kind identity.PrincipalKind, email, password string) error {
	if email == "" || password == "" {
		return apperrors.Authentication("email and password are required")
	}

	token, err := m.auth.Login(ctx, kind, ports.LoginInput{Email: email, Password: password})
	if err != nil {
		return err
	}

	cred := identity.Credential{AccessToken: token, Kind: kind}
	if err := m.store.SaveCredential(ctx, cred); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "persist credential")
	}

	// A credential without a resolved principal is provisional: one
	// resolution attempt, then discard on failure.
	if err := m.ResolvePrincipal(ctx); err != nil {
		return err
	}

	m.logger.InfoContext(ctx, "logged in", "kind", string(kind))
	return nil
}

// Signup registers a new shopper account. It does not authenticate; the
// caller logs in separately afterward.
func (m *SessionManager) Signup(ctx context.Context, in ports.SignupInput) error {
	if in.Email == "" || in.Password == "" || in.DisplayName == "" {
		return apperrors.Validation("email, password and display name are required")
	}
	return m.auth.Signup(ctx, in)
}

// ResolvePrincipal resolves the persisted credential into a principal via the
// kind-appropriate self-lookup and replaces the in-memory principal
// wholesale. It is idempotent and safe to call repeatedly (session bootstrap,
// after every login, and after role-changing mutations). On failure the
// credential is discarded atomically and a session_resolution error returned.
func (m *SessionManager) ResolvePrincipal(ctx context.Context) error {
	cred, err := m.store.LoadCredential(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			m.setSession(identity.LoggedOut())
			return apperrors.New(apperrors.ErrCodeSessionResolution, "no credential to resolve")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "load credential")
	}

	principal, err := m.auth.Self(ctx, cred.Kind)
	if err != nil {
		m.discard(ctx)
		return apperrors.Wrap(err, apperrors.ErrCodeSessionResolution, "resolve principal")
	}

	if cred.Kind == identity.KindStaff {
		m.setSession(identity.StaffSession(principal))
	} else {
		m.setSession(identity.ShopperSession(principal))
	}
	return nil
}

// Logout best-effort revokes the server-side session, then tears down local
// state. The local teardown always happens: the user's intent is to stop
// being logged in on this device even if the server call fails.
func (m *SessionManager) Logout(ctx context.Context) error {
	kind := identity.KindShopper
	m.mu.RLock()
	if m.session.IsStaff() {
		kind = identity.KindStaff
	}
	m.mu.RUnlock()

	if err := m.auth.Logout(ctx, kind); err != nil {
		m.logger.WarnContext(ctx, "remote logout failed, clearing local session anyway", "error", err)
	}

	m.discard(ctx)
	return nil
}

// Bootstrap runs once per application load. If a credential survived the last
// run it is resolved; on failure the session is torn down and the application
// continues unauthenticated. Bootstrap never propagates an error.
func (m *SessionManager) Bootstrap(ctx context.Context) {
	m.mu.Lock()
	m.loading = true
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.loading = false
		m.mu.Unlock()
	}()

	_, err := m.store.LoadCredential(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			m.logger.WarnContext(ctx, "load persisted credential", "error", err)
		}
		m.setSession(identity.LoggedOut())
		return
	}

	if err := m.ResolvePrincipal(ctx); err != nil {
		m.logger.InfoContext(ctx, "session restore failed, continuing unauthenticated", "error", err)
	}
}

// discard atomically clears the credential, any draft state, and the
// in-memory principal.
func (m *SessionManager) discard(ctx context.Context) {
	if err := m.store.ClearSession(ctx); err != nil {
		m.logger.WarnContext(ctx, "clear persisted session", "error", err)
	}
	m.setSession(identity.LoggedOut())
}

func (m *SessionManager) setSession(s identity.Session) {
	m.mu.Lock()
	m.session = s
	m.mu.Unlock()
}
