package domain

// Session store keys. The names are local to this client and not part of
// the backend contract.
const (
	KeyToken   = "token"
	KeyUser    = "user"
	KeyIsStaff = "is_staff"
)

// Session is the client-held proof of authentication plus the cached user
// attributes returned at login. There is no expiry tracking.
type Session struct {
	Token   string `json:"-"`
	UserID  string `json:"user_id,omitempty"`
	IsAdmin bool   `json:"is_admin"`
}

// IsAuthenticated reports whether a token is present.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// Account is the non-secret part of a session handed back to callers after
// login or signup.
type Account struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// Account strips the token.
func (s Session) Account() Account {
	return Account{UserID: s.UserID, IsAdmin: s.IsAdmin}
}
