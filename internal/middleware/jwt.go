package middleware

import (
	"net/http"
	"strings"

	"seoblog/internal/logger"
	"seoblog/internal/reqctx"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// JWTOptional разбирает токен, если он есть и валиден, но не требует его:
// анонимный запрос проходит дальше без claims в контексте.
func JWTOptional(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			if email, ok := claims["email"].(string); ok && email != "" {
				ctx = reqctx.WithUserEmail(ctx, email)
			}
			if name, ok := claims["name"].(string); ok && name != "" {
				ctx = reqctx.WithUserName(ctx, name)
			}
			if role, ok := claims["role"].(string); ok {
				ctx = reqctx.WithRole(ctx, role)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// JWTAuth проверяет токен внешнего провайдера идентичности и кладёт claims
// (email, name, role) в контекст. Сам токен здесь не выпускается — логина
// у сервиса нет.
func JWTAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				logger.WithCtx(r.Context()).Warn("JWTAuth: отсутствует access token")
				http.Error(w, "Отсутствует access token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			})

			if err != nil || !token.Valid {
				logger.WithCtx(r.Context()).Warn("JWTAuth: неверный или просроченный токен",
					zap.Error(err))
				http.Error(w, "Неверный или просроченный токен", http.StatusUnauthorized)
				return
			}

			email, ok := claims["email"].(string)
			if !ok || strings.TrimSpace(email) == "" {
				logger.WithCtx(r.Context()).Warn("JWTAuth: недопустимый payload",
					zap.Any("claims", claims))
				http.Error(w, "Недопустимый payload", http.StatusUnauthorized)
				return
			}

			ctx := reqctx.WithUserEmail(r.Context(), email)
			if name, ok := claims["name"].(string); ok && name != "" {
				ctx = reqctx.WithUserName(ctx, name)
			}
			if role, ok := claims["role"].(string); ok {
				ctx = reqctx.WithRole(ctx, role)
			}

			logger.WithCtx(ctx).Debug("JWTAuth: токен валиден", zap.String("email", email))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
