package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/ports"
)

// SessionManager is the one session context of the process. The backend
// client reads the token through it at dispatch time, the guard reads the
// authentication state, and the auth service writes it.
type SessionManager struct {
	store ports.SessionStore
	log   zerolog.Logger
}

var _ ports.TokenSource = (*SessionManager)(nil)

func NewSessionManager(store ports.SessionStore, log zerolog.Logger) *SessionManager {
	return &SessionManager{store: store, log: log}
}

// Current reads the whole session. Missing keys yield zero values.
func (m *SessionManager) Current(ctx context.Context) (domain.Session, error) {
	var s domain.Session

	token, _, err := m.store.Get(ctx, domain.KeyToken)
	if err != nil {
		return s, err
	}
	user, _, err := m.store.Get(ctx, domain.KeyUser)
	if err != nil {
		return s, err
	}
	staff, _, err := m.store.Get(ctx, domain.KeyIsStaff)
	if err != nil {
		return s, err
	}

	s.Token = token
	s.UserID = user
	s.IsAdmin, _ = strconv.ParseBool(staff)
	return s, nil
}

// Token implements ports.TokenSource.
func (m *SessionManager) Token(ctx context.Context) (string, error) {
	token, _, err := m.store.Get(ctx, domain.KeyToken)
	return token, err
}

// Save writes every session key. The admin flag is stored as "true"/"false".
func (m *SessionManager) Save(ctx context.Context, s domain.Session) error {
	if err := m.store.Set(ctx, domain.KeyToken, s.Token); err != nil {
		return err
	}
	if err := m.store.Set(ctx, domain.KeyUser, s.UserID); err != nil {
		return err
	}
	return m.store.Set(ctx, domain.KeyIsStaff, strconv.FormatBool(s.IsAdmin))
}

func (m *SessionManager) Clear(ctx context.Context) error {
	return m.store.Clear(ctx)
}

// IsAuthenticated reports whether a token is stored. A store that cannot be
// read counts as logged out.
func (m *SessionManager) IsAuthenticated(ctx context.Context) bool {
	token, err := m.Token(ctx)
	if err != nil {
		m.log.Warn().Err(err).Msg("session store read failed")
		return false
	}
	return token != ""
}

func (m *SessionManager) IsAdmin(ctx context.Context) bool {
	staff, _, err := m.store.Get(ctx, domain.KeyIsStaff)
	if err != nil {
		m.log.Warn().Err(err).Msg("session store read failed")
		return false
	}
	admin, _ := strconv.ParseBool(staff)
	return admin
}

// Ping checks the backing store when it supports it.
func (m *SessionManager) Ping(ctx context.Context) error {
	if p, ok := m.store.(ports.Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}
