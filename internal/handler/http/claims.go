package http

import (
	"net/http"

	"github.com/attendhub/attendance-backend-go/internal/domain/auth"
	"github.com/attendhub/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// userIDFromRequest extracts the authenticated user's ID from the JWT
// claims. Writes an error response and returns false when absent.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return "", false
	}

	userID, ok := claims["uid"].(string)
	if !ok || userID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return "", false
	}

	return userID, true
}

// isAdminRequest reports whether the authenticated user carries the admin
// role. Missing claims count as non-admin.
func isAdminRequest(r *http.Request) bool {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return false
	}
	role, ok := claims["role"].(string)
	return ok && role == "admin"
}
