package middleware

import "context"

// userCtxKey is the key used to store the authenticated username in the context.
const userCtxKey = contextKey("user")

// WithUser stores the authenticated username in ctx.
func WithUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userCtxKey, username)
}

// GetUserFromCtx retrieves the authenticated username from ctx.
// It returns the username and a boolean indicating if it was found.
func GetUserFromCtx(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(userCtxKey).(string)
	if !ok || username == "" {
		return "", false
	}
	return username, true
}
