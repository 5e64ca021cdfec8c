package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"todos/infras/jwt"
	"todos/infras/otel"
	"todos/shared/constant"
	"todos/shared/failure"
	"todos/transport/http/response"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	extractor *jwt.Extractor
	otel      otel.Otel
}

func NewAuthMiddleware(extractor *jwt.Extractor, otel otel.Otel) Auth {
	return &authImpl{
		extractor: extractor,
		otel:      otel,
	}
}

// denialMessage is what the caller sees; the underlying reason stays in the logs.
func denialMessage(reason error) string {
	switch {
	case errors.Is(reason, jwt.ErrMissingCredential):
		return "Missing authorization header"
	case errors.Is(reason, jwt.ErrInvalidScheme):
		return "Invalid authorization header format"
	case errors.Is(reason, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(reason, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Invalid token"
	}
}

// Auth resolves the caller from the bearer token and stores the subject in the
// request context. The raw credential is never logged.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		result := m.extractor.Extract(ctx, request.Header.Get(constant.RequestHeaderAuthorization))
		if !result.Authenticated() {
			log.Warn().Err(result.Reason).Str("path", request.URL.Path).Msg("request denied")

			err := failure.Unauthorized(denialMessage(result.Reason))
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.SetAttribute("user_id", result.Identity.UserID)
		scope.End()

		ctx = context.WithValue(request.Context(), constant.ContextKeyUserID, result.Identity.UserID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}
