package service

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/labreserve/switch-console/internal/core/apierror"
	"github.com/labreserve/switch-console/internal/core/domain"
	"github.com/labreserve/switch-console/internal/core/endpoint"
	"github.com/labreserve/switch-console/internal/core/ports"
)

const (
	ctxLogin  = "log in"
	ctxSignup = "sign up"
	ctxLogout = "log out"
)

// AuthService implements login, signup and logout against the backend and
// keeps the local session in step with the outcome.
type AuthService struct {
	backend ports.Dispatcher
	session *SessionManager
	log     zerolog.Logger
}

func NewAuthService(backend ports.Dispatcher, session *SessionManager, log zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, session: session, log: log}
}

func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return s.session.IsAuthenticated(ctx)
}

func (s *AuthService) IsAdmin(ctx context.Context) bool {
	return s.session.IsAdmin(ctx)
}

// Login stores the returned token, user id and admin flag. A 2xx response
// without a token is a failure and leaves the session untouched.
func (s *AuthService) Login(ctx context.Context, username, password string) domain.Result[domain.Account] {
	raw := s.backend.Dispatch(ctx, credentialsRequest(endpoint.Login, ctxLogin, username, password))
	if !raw.Success {
		return domain.Recast[json.RawMessage, domain.Account](raw)
	}
	return s.establish(ctx, raw, ctxLogin)
}

// Signup registers and logs in. Only a 201 counts as success.
func (s *AuthService) Signup(ctx context.Context, username, password string) domain.Result[domain.Account] {
	raw := s.backend.Dispatch(ctx, credentialsRequest(endpoint.Signup, ctxSignup, username, password))
	if !raw.Success {
		return domain.Recast[json.RawMessage, domain.Account](raw)
	}
	if raw.Status != http.StatusCreated {
		return domain.Fail[domain.Account](serverDetail(raw.Data, ctxSignup), raw.Status)
	}
	return s.establish(ctx, raw, ctxSignup)
}

// Logout asks the backend to drop the token. The local session is cleared on
// every path, including a panic further down. Success requires a 200.
func (s *AuthService) Logout(ctx context.Context) (res domain.Result[string]) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("logout request panicked")
			res = domain.Fail[string](apierror.Fallback(ctxLogout), http.StatusInternalServerError)
		}
		if err := s.session.Clear(context.WithoutCancel(ctx)); err != nil {
			s.log.Error().Err(err).Msg("failed to clear session on logout")
		}
	}()

	raw := s.backend.Dispatch(ctx, request(endpoint.Logout, ctxLogout, nil))
	if !raw.Success {
		return domain.Recast[json.RawMessage, string](raw)
	}
	if raw.Status != http.StatusOK {
		return domain.Fail[string](serverDetail(raw.Data, ctxLogout), raw.Status)
	}
	return detailOf(raw)
}

func (s *AuthService) establish(ctx context.Context, raw domain.Result[json.RawMessage], op string) domain.Result[domain.Account] {
	sess, ok := parseAuthResponse(raw.Data)
	if !ok {
		s.log.Warn().Int("status", raw.Status).Str("context", op).Msg("auth response without token")
		return domain.Fail[domain.Account](serverDetail(raw.Data, op), raw.Status)
	}
	if err := s.session.Save(ctx, sess); err != nil {
		s.log.Error().Err(err).Str("context", op).Msg("failed to store session")
		if cerr := s.session.Clear(context.WithoutCancel(ctx)); cerr != nil {
			s.log.Error().Err(cerr).Msg("failed to roll back partial session")
		}
		return domain.Fail[domain.Account](apierror.Fallback(op), http.StatusInternalServerError)
	}
	return domain.OK(sess.Account(), raw.Status)
}

func credentialsRequest(name endpoint.Name, op, username, password string) ports.BackendRequest {
	return request(name, op, domain.Credentials{Username: username, Password: password})
}

// authResponse covers both shapes the backend sends: "user" is a bare id on
// login and a serialized user on signup. is_staff may sit at either level.
type authResponse struct {
	Token   string          `json:"token"`
	User    json.RawMessage `json:"user"`
	IsStaff *bool           `json:"is_staff"`
}

type authUser struct {
	ID      json.RawMessage `json:"id"`
	IsStaff *bool           `json:"is_staff"`
}

func parseAuthResponse(data json.RawMessage) (domain.Session, bool) {
	var body authResponse
	if err := json.Unmarshal(data, &body); err != nil || body.Token == "" {
		return domain.Session{}, false
	}

	sess := domain.Session{Token: body.Token}
	if body.IsStaff != nil {
		sess.IsAdmin = *body.IsStaff
	}

	var nested authUser
	if err := json.Unmarshal(body.User, &nested); err == nil && nested.ID != nil {
		sess.UserID = scalarString(nested.ID)
		if body.IsStaff == nil && nested.IsStaff != nil {
			sess.IsAdmin = *nested.IsStaff
		}
	} else {
		sess.UserID = scalarString(body.User)
	}
	return sess, true
}

// scalarString renders a JSON string or number as a plain string.
func scalarString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func serverDetail(data json.RawMessage, op string) string {
	return apierror.Message(apierror.FromResponse(0, data), apierror.Fallback(op))
}
