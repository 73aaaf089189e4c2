package entity

import "strings"

// UserRole is the stored access level of a user. Roles are recorded but
// not enforced anywhere in this service.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleMember UserRole = "member"
)

func UserRoleValues() []string {
	return []string{string(RoleAdmin), string(RoleMember)}
}

// ParseUserRole matches a role string case-insensitively and returns the
// canonical value.
func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(strings.ToLower(s)) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleMember:
		return RoleMember, true
	}
	return "", false
}

// User is the aggregate root for the user domain.
// Email is stored as supplied; uniqueness is checked against the
// normalized form only.
type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}

// NormalizeEmail lowercases and trims an email for identity comparison.
// Two addresses differing only in case or surrounding whitespace are the
// same identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
