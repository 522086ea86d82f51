package middleware

import (
	"net/http"

	"bagstore/internal/auth"
	"bagstore/internal/logger"
	"bagstore/internal/utils"

	"go.uber.org/zap"
)

// AuthMiddleware attaches the caller's subject and role when a valid token is
// presented. Requests without a token pass through anonymously; a token that
// fails validation is rejected with 401.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := auth.ExtractAccessToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.Parse(secret, token)
			if err != nil {
				logger.FromCtx(r.Context()).Warn("rejected access token",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := utils.SetAuthContext(r.Context(), claims.Subject, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin lets through callers authenticated with the admin role and
// requests the limiter marked as coming from a trusted internal service.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.IsInternalRequest(r.Context()) {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := utils.GetSubjectFromContext(r.Context()); !ok {
			utils.WriteJSONError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !utils.IsAdmin(r.Context()) {
			utils.WriteJSONError(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
