package web

import (
	"context"
	"net/http"
)

type contextKey string

// IdentityCtxKey carries the resolved identity of an authenticated request.
const IdentityCtxKey contextKey = "identity"

func AddValueToContext(r *http.Request, key contextKey, value any) *http.Request {
	ctx := context.WithValue(r.Context(), key, value)
	return r.WithContext(ctx)
}

func GetValueFromContext[T any](r *http.Request, key contextKey) (T, bool) {
	val := r.Context().Value(key)
	if val == nil {
		var zero T
		return zero, false
	}
	tVal, ok := val.(T)
	if !ok {
		var zero T
		return zero, false
	}

	return tVal, true
}
