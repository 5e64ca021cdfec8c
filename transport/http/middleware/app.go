package middleware

import (
	"fmt"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"todos/config"
	"todos/infras/otel"
	"todos/shared/constant"
)

const (
	otelHTTPScopeName = "http"
)

type App interface {
	Tracing(next http.Handler) http.Handler
	CORS(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cors   func(http.Handler) http.Handler
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) App {
	corsConfig := config.App.CORS

	return &appMiddleware{
		otel:   otel,
		config: config,
		cors: cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}),
	}
}

// Tracing opens one span per request and records the final status code.
func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		spanName := fmt.Sprintf("%s %s", request.Method, request.URL.Path)

		ctx, scope := a.otel.NewScope(request.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
			"http.user_agent": request.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       request.Host,
			"http.source":     request.RemoteAddr,
		})

		wrapped := chiMiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(wrapped, request.WithContext(ctx))

		attrs := map[string]any{"http.status_code": wrapped.Status()}
		if rctx := chi.RouteContext(ctx); rctx != nil && rctx.RoutePattern() != "" {
			attrs["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attrs)
	})
}

// CORS answers preflight requests and, when every origin is allowed, stamps
// the wildcard origin on every response whether or not the client sent Origin.
func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	wildcard := slices.Contains(a.config.App.CORS.AllowedOrigins, constant.Asterix)
	handler := a.cors(next)

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if wildcard {
			writer.Header().Set(constant.RequestHeaderAllowOrigin, constant.Asterix)
		}

		handler.ServeHTTP(writer, request)
	})
}
