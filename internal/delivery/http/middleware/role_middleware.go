package middleware

import (
	"net/http"

	"go-hostel-pms/internal/domain/entity"
	"go-hostel-pms/pkg/response"
)

// RequireAdmin allows only admin users through
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		roleID, ok := GetRoleIDFromContext(r.Context())
		if !ok || roleID != entity.RoleIDAdmin {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireFrontDesk allows admin and reception users through
func RequireFrontDesk(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		roleID, ok := GetRoleIDFromContext(r.Context())
		if !ok || (roleID != entity.RoleIDAdmin && roleID != entity.RoleIDReception) {
			response.Forbidden(w, "Front desk access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
