package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// Authorize gates methods by role. Methods missing from the table are not
// checked. It must run after authentication.
type Authorize struct {
	roles          map[string]model.Roles
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthorize takes a table from full method name to allowed roles.
func NewAuthorize(roles map[string]model.Roles, contextManager model.ContextManager, logger *logger.Logger) *Authorize {
	return &Authorize{roles: roles, contextManager: contextManager, logger: logger}
}

// HandleGRPC is a unary interceptor applying the role table.
func (a *Authorize) HandleGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	allowed, ok := a.roles[info.FullMethod]
	if !ok {
		return handler(ctx, req)
	}

	subject, ok := a.contextManager.GetSubjectFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, model.ErrAuthenticationRequired.Error())
	}

	if !allowed.Contains(subject.Role) {
		a.logger.Info("gRPC authorize: access denied",
			"method", info.FullMethod,
			"user_id", subject.ID,
			"role", subject.Role)
		return nil, status.Error(codes.PermissionDenied, model.ErrForbidden.Error())
	}

	return handler(ctx, req)
}
