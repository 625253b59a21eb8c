package middleware

import (
	"net/http"

	"seoblog/internal/reqctx"
)

// OnlyRole пускает дальше только запросы с нужной ролью в claims.
// Та же проверка идентичности, что и везде — без параллельной схемы.
func OnlyRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userRole, ok := reqctx.GetRole(r.Context())
			if !ok || userRole != role {
				http.Error(w, "Доступ запрещён", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
