package httpapi

import (
	"context"
	"net/http"

	"github.com/tranndt/purchaseportal/internal/domain"
)

// Аутентификация живёт во внешнем identity-сервисе; сюда запрос приходит
// уже с проверенными заголовками X-User-Id и X-User-Role.
const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
)

type contextKey string

const userContextKey contextKey = "portal-user"

// identityMiddleware извлекает актора запроса из заголовков.
// Запросы без полной и валидной identity отклоняются с 401.
func identityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerUserID)
		role := domain.Role(r.Header.Get(headerUserRole))
		if id == "" || !role.Valid() {
			writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing or invalid identity"})
			return
		}

		user := domain.User{ID: id, Role: role}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userContextKey, user)))
	})
}

// userFrom достаёт актора, положенного identityMiddleware.
func userFrom(r *http.Request) domain.User {
	user, _ := r.Context().Value(userContextKey).(domain.User)
	return user
}
