package authorizer

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"todos/infras/otel"
	"todos/internal/domains/authorizer"
	"todos/shared/constant"
	"todos/transport/http/response"
)

type Handler struct {
	authorizer authorizer.Authorizer
	otel       otel.Otel
}

func New(authorizer authorizer.Authorizer, otel otel.Otel) Handler {
	return Handler{
		authorizer: authorizer,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/authorize", handler.Authorize)
}

// Authorize evaluates a gateway authorization token.
// @Summary Authorize a token
// @Description Returns an Allow policy for a valid bearer token and a Deny policy otherwise. Never fails.
// @Tags Authorizer
// @Accept json
// @Produce json
// @Param request body authorizer.Request true "Authorizer Request"
// @Success 200 {object} authorizer.Response
// @Router /v1/authorize [post]
func (handler *Handler) Authorize(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Authorize")
	defer scope.End()

	req := authorizer.Request{}

	if err := json.NewDecoder(request.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("malformed authorizer request")
		response.WithJSON(writer, http.StatusOK, authorizer.Deny())

		return
	}

	response.WithJSON(writer, http.StatusOK, handler.authorizer.Authorize(ctx, req))
}
