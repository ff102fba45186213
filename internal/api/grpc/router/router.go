package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/sessionkeeper/internal/api/grpc/handler"
	"github.com/dtroode/sessionkeeper/internal/api/grpc/middleware"
	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// Methods callable without an access token.
var publicMethods = map[string]bool{
	handler.SessionsRefreshMethod: true,
	handler.SessionsLogoutMethod:  true,
}

// Roles required per method; unlisted authenticated methods admit any role.
var methodRoles = map[string]model.Roles{
	handler.SessionsRevokeSessionsMethod: {model.RoleAdmin},
}

// Router represents a gRPC router for session operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	session        handler.SessionService
	authenticator  middleware.Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	session handler.SessionService,
	authenticator middleware.Authenticator,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		session:        session,
		authenticator:  authenticator,
		contextManager: contextManager,
		logger:         logger,
	}
}

func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	method := c.FullMethod()
	if publicMethods[method] {
		return false
	}
	return !strings.HasPrefix(method, "/grpc.health.v1.Health/") &&
		!strings.HasPrefix(method, "/grpc.reflection.")
}

// Register registers all gRPC services and middleware.
// It sets up the gRPC server with request logging, authentication and
// role interceptors, plus health and reflection services.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.authenticator, r.contextManager, r.logger)
	authorize := middleware.NewAuthorize(methodRoles, r.contextManager, r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
			authorize.HandleGRPC,
		),
		grpc.ChainStreamInterceptor(
			selector.StreamServerInterceptor(
				auth.StreamServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(requiresAuth),
			),
		),
	)

	handler.RegisterSessionsServer(s, handler.NewSessions(r.session, r.contextManager, r.logger))

	healthServer := health.NewServer()
	healthServer.SetServingStatus(handler.SessionsServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, healthServer)

	reflection.Register(s)

	return s
}
