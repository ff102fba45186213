package model

import "context"

// ContextManager stores and retrieves the authenticated subject of a call.
type ContextManager interface {
	SetSubjectToContext(ctx context.Context, subject Subject) context.Context
	GetSubjectFromContext(ctx context.Context) (Subject, bool)
}
