package models

import "time"

// DefaultRole is assigned to users created without an explicit role
const DefaultRole = "user"

// User represents a registered user of the waste service
type User struct {
	ID           int64          `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	FullName     string         `json:"fullName"`
	PasswordHash string         `json:"-"` // Not serialized
	Role         string         `json:"role"`
	Preferences  map[string]any `json:"preferences"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// UserPatch lists the profile fields a user may change. Nil fields are left untouched.
type UserPatch struct {
	Username *string
	Email    *string
	FullName *string
}

// Apply merges the patch into u and reports whether anything changed.
func (p UserPatch) Apply(u *User) bool {
	changed := false
	if p.Username != nil && *p.Username != u.Username {
		u.Username = *p.Username
		changed = true
	}
	if p.Email != nil && *p.Email != u.Email {
		u.Email = *p.Email
		changed = true
	}
	if p.FullName != nil && *p.FullName != u.FullName {
		u.FullName = *p.FullName
		changed = true
	}
	return changed
}

// MergePreferences returns a copy of base with every key of patch written over it.
func MergePreferences(base, patch map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}
