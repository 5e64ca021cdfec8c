// Package mocks provides no-op tracing for unit tests.
package mocks

import (
	"context"

	"todos/infras/otel"
)

type noopOtel struct{}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func NewOtel() otel.Otel {
	return noopOtel{}
}

type noopScope struct{}

func (noopScope) End()                           {}
func (noopScope) TraceError(_ error)             {}
func (noopScope) TraceIfError(_ error)           {}
func (noopScope) AddEvent(_ string)              {}
func (noopScope) SetAttribute(_ string, _ any)   {}
func (noopScope) SetAttributes(_ map[string]any) {}

func NewScope() otel.Scope {
	return noopScope{}
}
