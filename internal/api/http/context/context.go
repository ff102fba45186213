package context

import (
	"context"

	"github.com/dtroode/sessionkeeper/internal/model"
)

type subjectKey struct{}

// Manager keeps the authenticated subject in the request context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetSubjectToContext returns a copy of ctx carrying subject.
func (m *Manager) SetSubjectToContext(ctx context.Context, subject model.Subject) context.Context {
	return context.WithValue(ctx, subjectKey{}, subject)
}

// GetSubjectFromContext returns the subject set by the authentication
// middleware, if any.
func (m *Manager) GetSubjectFromContext(ctx context.Context) (model.Subject, bool) {
	subject, ok := ctx.Value(subjectKey{}).(model.Subject)
	if !ok || subject.ID == 0 {
		return model.Subject{}, false
	}
	return subject, true
}
