package models

// Role is the authorization tier of a user account.
type Role string

const (
	// RoleUser is the default, non-privileged tier.
	RoleUser Role = "user"
	// RoleAdmin can manage the catalog and booking lifecycle. Admin
	// accounts are not creatable through the public registration path.
	RoleAdmin Role = "admin"
)

// User represents an account entity used for authentication.
// It contains identity attributes and credential-related data.
type User struct {
	// ID is the opaque account identifier.
	ID string `json:"id"`

	// Email is the unique login key. Stored lowercased; lookups are
	// case-insensitive.
	Email string `json:"email"`

	// Name is the display name of the user. Non-sensitive, shown in UI.
	Name string `json:"name"`

	// Role is the authorization tier.
	Role Role `json:"role"`

	// PasswordChecksum stores the demo credential transform of the user's
	// password. It is one-way but NOT cryptographically secure; this
	// application is a demo and must never hold real credentials.
	PasswordChecksum string `json:"passwordHash"`
}

// AccountPatch carries a partial profile update. Nil fields are left
// untouched. Role and credentials are not updatable through this path.
type AccountPatch struct {
	Name  *string
	Email *string
}
