package context

import (
	"context"
	"strconv"

	"google.golang.org/grpc/metadata"

	"github.com/dtroode/sessionkeeper/internal/model"
)

// Metadata keys the authenticated subject is stored under. The
// authentication interceptor overwrites whatever the client sent.
const (
	subjectIDKey    = "x-subject-id"
	subjectEmailKey = "x-subject-email"
	subjectRoleKey  = "x-subject-role"
)

// Manager keeps the authenticated subject in incoming gRPC metadata.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetSubjectToContext returns a context whose incoming metadata carries subject.
func (m *Manager) SetSubjectToContext(ctx context.Context, subject model.Subject) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(nil)
	} else {
		md = md.Copy()
	}
	md.Set(subjectIDKey, strconv.FormatInt(subject.ID, 10))
	md.Set(subjectEmailKey, subject.Email)
	md.Set(subjectRoleKey, subject.Role.String())

	return metadata.NewIncomingContext(ctx, md)
}

// GetSubjectFromContext parses the subject from incoming metadata.
func (m *Manager) GetSubjectFromContext(ctx context.Context) (model.Subject, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return model.Subject{}, false
	}

	id, err := strconv.ParseInt(first(md, subjectIDKey), 10, 64)
	if err != nil || id <= 0 {
		return model.Subject{}, false
	}

	role := model.Role(first(md, subjectRoleKey))
	if !role.IsValid() {
		return model.Subject{}, false
	}

	return model.Subject{ID: id, Email: first(md, subjectEmailKey), Role: role}, true
}

func first(md metadata.MD, key string) string {
	values := md.Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
