package middleware

import (
	"context"
	"net/http"
	"strconv"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ActorIDKey is the context key for the back-office user acting on the request
	ActorIDKey ContextKey = "actor_id"

	// ActorHeader carries the acting user's id. Authentication happens upstream
	// of this service.
	ActorHeader = "X-User-ID"
)

// Actor stores the X-User-ID header value in the request context when it is
// a positive integer. Requests without it are anonymous.
func Actor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := r.Header.Get(ActorHeader); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				r = r.WithContext(WithActorID(r.Context(), id))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// WithActorID returns a copy of ctx carrying the actor id
func WithActorID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, ActorIDKey, id)
}

// GetActorID extracts the actor id from the request context
func GetActorID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(ActorIDKey).(int64)
	return id, ok
}

// ActorIDPtr returns the actor id or nil for anonymous requests
func ActorIDPtr(ctx context.Context) *int64 {
	if id, ok := GetActorID(ctx); ok {
		return &id
	}
	return nil
}
