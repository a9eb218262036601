package domain

import "context"

type CtxKey string

const (
	KeyUserID   CtxKey = "UserID"
	KeyUsername CtxKey = "Username"
	KeyUserRole CtxKey = "Role"
)

// UserIDFromContext extracts the authenticated user ID set by the auth
// middleware. Returns false when the request is anonymous.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(KeyUserID).(int64)
	return id, ok
}

// RoleFromContext extracts the authenticated user's role.
func RoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(KeyUserRole).(string)
	return role, ok
}
