package api

import (
	"context"
)

type keyType string

const roleKey keyType = "role"

// ctxWithRole adds the authenticated role to the context
func ctxWithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// ctxGetRole retrieves the authenticated role from the context
func ctxGetRole(ctx context.Context) string {
	if value, ok := ctx.Value(roleKey).(string); ok {
		return value
	}
	return ""
}
