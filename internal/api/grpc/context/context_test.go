package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"

	"github.com/dtroode/sessionkeeper/internal/model"
)

func TestManager_SetAndGetSubject(t *testing.T) {
	m := NewManager()
	subject := model.Subject{ID: 5, Email: "a@b.c", Role: model.RoleAdmin}

	ctx := m.SetSubjectToContext(stdctx.Background(), subject)

	got, ok := m.GetSubjectFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, subject, got)
}

func TestManager_GetSubject_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetSubjectFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_SetSubject_OverwritesClientMetadata(t *testing.T) {
	m := NewManager()
	base := metadata.New(map[string]string{
		"x-trace-id":     "t",
		"x-subject-id":   "99",
		"x-subject-role": "admin",
	})
	ctxWithMD := metadata.NewIncomingContext(stdctx.Background(), base)

	ctx := m.SetSubjectToContext(ctxWithMD, model.Subject{ID: 1, Email: "a@b.c", Role: model.RoleUser})

	got, ok := m.GetSubjectFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, model.RoleUser, got.Role)

	md, _ := metadata.FromIncomingContext(ctx)
	assert.Equal(t, []string{"t"}, md.Get("x-trace-id"))
	assert.Equal(t, []string{"99"}, base.Get("x-subject-id"))
}

func TestManager_GetSubject_Malformed(t *testing.T) {
	m := NewManager()

	tests := []struct {
		name string
		md   metadata.MD
	}{
		{name: "bad id", md: metadata.Pairs("x-subject-id", "nope", "x-subject-role", "user")},
		{name: "zero id", md: metadata.Pairs("x-subject-id", "0", "x-subject-role", "user")},
		{name: "unknown role", md: metadata.Pairs("x-subject-id", "1", "x-subject-role", "root")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := m.GetSubjectFromContext(metadata.NewIncomingContext(stdctx.Background(), tt.md))
			assert.False(t, ok)
		})
	}
}
