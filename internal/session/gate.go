package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"phonekart/internal/auth"
	"phonekart/internal/logger"

	"go.uber.org/zap"
)

// Gate decides what the signed-in state is. It is read from network
// goroutines (the bearer token) and written from the event loop, so it is
// guarded.
type Gate struct {
	store Store

	mu      sync.RWMutex
	current *Session
}

func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// Start restores the persisted session. A missing or unreadable document
// leaves the user signed out.
func (g *Gate) Start(ctx context.Context) error {
	log := logger.FromCtx(ctx).With(zap.String("layer", "session"))

	data, err := g.store.Load(ctx, Key)
	if errors.Is(err, ErrNotFound) {
		g.set(nil)
		return nil
	}
	if err != nil {
		g.set(nil)
		return err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		log.Warn("stored session is corrupt, signing out", zap.Error(err))
		g.set(nil)
		return nil
	}

	g.set(&s)
	log.Debug("session restored", zap.String("user_id", s.ID))
	return nil
}

func (g *Gate) set(s *Session) {
	g.mu.Lock()
	g.current = s
	g.mu.Unlock()
}

func (g *Gate) LoggedIn() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.current != nil
}

// Current returns a copy of the session.
func (g *Gate) Current() (Session, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.current == nil {
		return Session{}, false
	}
	return *g.current, true
}

// SignIn persists s and marks the user signed in.
func (g *Gate) SignIn(ctx context.Context, s Session) error {
	if s.Token == "" {
		return ErrInvalidSession
	}
	if err := g.persist(ctx, s); err != nil {
		return err
	}
	g.set(&s)
	logger.FromCtx(ctx).Info("signed in",
		zap.String("layer", "session"),
		zap.String("user_id", s.ID),
	)
	return nil
}

// SignOut forgets the session. The in-memory state is cleared even when the
// store fails.
func (g *Gate) SignOut(ctx context.Context) error {
	g.set(nil)
	if err := g.store.Delete(ctx, Key); err != nil {
		return err
	}
	logger.FromCtx(ctx).Info("signed out", zap.String("layer", "session"))
	return nil
}

// Update applies fn to the stored session, e.g. after a profile edit.
func (g *Gate) Update(ctx context.Context, fn func(*Session)) error {
	cur, ok := g.Current()
	if !ok {
		return ErrNotLoggedIn
	}
	fn(&cur)
	if err := g.persist(ctx, cur); err != nil {
		return err
	}
	g.set(&cur)
	return nil
}

func (g *Gate) persist(ctx context.Context, s Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedSaveState, err)
	}
	return g.store.Save(ctx, Key, data)
}

// Token is the bearer credential, or "" when signed out.
func (g *Gate) Token() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.current == nil {
		return ""
	}
	return g.current.Token
}

// IsAdmin decides whether admin screens are offered. It falls back to the
// role claim of the token, decoded without verification; the backend still
// authorizes every admin call.
func (g *Gate) IsAdmin() bool {
	s, ok := g.Current()
	if !ok {
		return false
	}
	if s.Role != "" {
		return s.Role == RoleAdmin
	}
	claims, err := auth.ParseUnverified(s.Token)
	if err != nil {
		return false
	}
	return claims.Role == RoleAdmin || claims.IsAdmin
}

// NavLinks lists the account menu entries for the current state.
func (g *Gate) NavLinks() []NavLink {
	if !g.LoggedIn() {
		return []NavLink{{Label: "Login", Path: "/login"}}
	}
	links := []NavLink{{Label: "Profile", Path: "/profile"}}
	if g.IsAdmin() {
		links = append(links, NavLink{Label: "Admin Dashboard", Path: "/admin/dashboard"})
	}
	return append(links,
		NavLink{Label: "My Orders", Path: "/my-orders"},
		NavLink{Label: "Logout", Path: "/logout"},
	)
}
