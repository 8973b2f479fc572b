package middleware

import (
	"context"
	"net/http"
)

// UserIDHeader carries the caller identity. Requests without it are rejected.
const UserIDHeader = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

// Identity extracts the caller identity from the request headers and stores
// it in the request context.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"missing ` + UserIDHeader + ` header"}`))
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext returns the caller identity stored by Identity.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
