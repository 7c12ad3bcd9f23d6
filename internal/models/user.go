package models

import "time"

// User is the profile cached alongside a session. The backend owns the
// authoritative record; this copy exists so a profile fetch failure never
// logs the user out.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Session binds a gateway session to the backend token obtained at login.
// It is the server-side analog of the browser's persisted token/user pair.
type Session struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	BackendToken string    `json:"backendToken"`
	User         User      `json:"user"`
	CreatedAt    time.Time `json:"createdAt"`
}
