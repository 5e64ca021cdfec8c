// Package authorizer turns a gateway authorization token into an IAM style
// policy document that allows or denies invoking the API.
package authorizer

import (
	"context"

	"github.com/rs/zerolog/log"

	"todos/infras/jwt"
	"todos/infras/otel"
	"todos/shared/constant"
)

const (
	PolicyVersion      = "2012-10-17"
	ActionInvoke       = "execute-api:Invoke"
	EffectAllow        = "Allow"
	EffectDeny         = "Deny"
	DeniedPrincipalID  = "user"
	resourceEverything = "*"
)

type Request struct {
	AuthorizationToken string `json:"authorizationToken"`
}

type Statement struct {
	Action   string `json:"Action"`
	Effect   string `json:"Effect"`
	Resource string `json:"Resource"`
}

type PolicyDocument struct {
	Version   string      `json:"Version"`
	Statement []Statement `json:"Statement"`
}

type Response struct {
	PrincipalID    string         `json:"principalId"`
	PolicyDocument PolicyDocument `json:"policyDocument"`
}

func policy(principalID, effect string) Response {
	return Response{
		PrincipalID: principalID,
		PolicyDocument: PolicyDocument{
			Version: PolicyVersion,
			Statement: []Statement{{
				Action:   ActionInvoke,
				Effect:   effect,
				Resource: resourceEverything,
			}},
		},
	}
}

// Deny is the document returned for every rejected token.
func Deny() Response {
	return policy(DeniedPrincipalID, EffectDeny)
}

type Authorizer interface {
	Authorize(ctx context.Context, req Request) Response
}

type authorizerImpl struct {
	extractor *jwt.Extractor
	otel      otel.Otel
}

func New(extractor *jwt.Extractor, otel otel.Otel) Authorizer {
	return &authorizerImpl{
		extractor: extractor,
		otel:      otel,
	}
}

// Authorize never fails: any problem with the token yields the Deny document.
func (a *authorizerImpl) Authorize(ctx context.Context, req Request) Response {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authorize")
	defer scope.End()

	result := a.extractor.Extract(ctx, req.AuthorizationToken)
	if !result.Authenticated() {
		log.Warn().Err(result.Reason).Msg("user not authorized")
		scope.SetAttribute("effect", EffectDeny)

		return Deny()
	}

	log.Info().Str("user_id", result.Identity.UserID).Msg("user was authorized")
	scope.SetAttribute("effect", EffectAllow)

	return policy(result.Identity.UserID, EffectAllow)
}
