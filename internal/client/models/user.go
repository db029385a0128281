// Package models holds the data structures exchanged with the backend
// functions and the view-only types the home screen renders.
package models

// User is a registered account record as returned by the auth and admin
// functions. The client never mutates it directly; it issues commands and
// re-fetches (see services).
//
// CreatedAt is kept as the raw ISO-8601 string from the wire: the backend
// emits both zoned ("2023-01-15T10:30:00Z") and naive timestamps, and the
// client only displays and sorts them.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email,omitempty"`
	FullName  string `json:"full_name"`
	Bio       string `json:"bio,omitempty"`
	IsOnline  bool   `json:"is_online,omitempty"`
	IsBanned  bool   `json:"is_banned,omitempty"`
	IsAdmin   bool   `json:"is_admin,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}
