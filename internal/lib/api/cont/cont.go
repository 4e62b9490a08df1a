package cont

import (
	"ClassLedger/entity"
	"context"
)

type contextKey string

const userKey contextKey = "user"

// PutUser stores the authenticated caller in the request context.
func PutUser(ctx context.Context, user *entity.UserAuth) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser returns the authenticated caller, or nil for anonymous requests.
func GetUser(ctx context.Context) *entity.UserAuth {
	user, ok := ctx.Value(userKey).(*entity.UserAuth)
	if !ok {
		return nil
	}
	return user
}
