package domain

import "context"

// contextKey is a private type to avoid context key collisions.
type contextKey string

const userIDKey contextKey = "userId"

// WithUserID returns a copy of ctx carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID uint) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFrom reports the authenticated user's id, if any.
func UserIDFrom(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// RequireUserID is UserIDFrom that fails with ErrUnauthenticated.
func RequireUserID(ctx context.Context) (uint, error) {
	id, ok := UserIDFrom(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}
	return id, nil
}
