package domain

import "time"

// User is a backend account as listed by the admin endpoints.
type User struct {
	ID         int        `json:"id"          yaml:"id"`
	Username   string     `json:"username"    yaml:"username"`
	Email      string     `json:"email"       yaml:"email,omitempty"`
	FirstName  string     `json:"first_name"  yaml:"first_name,omitempty"`
	LastName   string     `json:"last_name"   yaml:"last_name,omitempty"`
	IsStaff    bool       `json:"is_staff"    yaml:"is_staff"`
	IsActive   bool       `json:"is_active"   yaml:"is_active"`
	DateJoined time.Time  `json:"date_joined" yaml:"date_joined"`
	LastLogin  *time.Time `json:"last_login"  yaml:"last_login,omitempty"`
}

// Credentials is what login and signup send to the backend.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
