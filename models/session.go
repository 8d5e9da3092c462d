package models

// Session is the currently authenticated identity, cached outside the
// account table so it can be reconstructed across application restarts.
// It is set at login and registration and cleared at logout.
//
// A session is a pointer, not a copy of record ownership: profile updates
// to the referenced account must refresh the session so the cached identity
// never drifts out of sync with the account table.
type Session struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the session belongs to an administrator.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
