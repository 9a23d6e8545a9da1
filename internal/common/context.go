package common

import (
	"context"

	"github.com/dfgiraldo/pqr-pipeline/constants"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyCompany   contextKey = "company"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithCompany tags the context with the company a flow is running for
func WithCompany(ctx context.Context, c constants.Company) context.Context {
	return context.WithValue(ctx, ContextKeyCompany, c)
}

// CompanyFromContext extracts the company from context
func CompanyFromContext(ctx context.Context) constants.Company {
	if c, ok := ctx.Value(ContextKeyCompany).(constants.Company); ok {
		return c
	}
	return ""
}
