package middleware

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// Authenticator resolves the subject behind an access token.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Subject, error)
}

// Authenticate validates bearer tokens and injects the subject into context.
type Authenticate struct {
	authenticator  Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(authenticator Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{authenticator: authenticator, contextManager: contextManager, logger: logger}
}

// AuthFunc parses the authorization metadata, validates the token and
// returns a context carrying the subject.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			scheme, token, found := strings.Cut(authHeaders[0], " ")
			if found && strings.EqualFold(scheme, "Bearer") {
				tokenString = strings.TrimSpace(token)
			}
		}
	}

	if tokenString == "" {
		return nil, status.Error(codes.Unauthenticated, model.ErrAuthenticationRequired.Error())
	}

	subject, err := m.authenticator.Authenticate(ctx, tokenString)
	if err != nil {
		if errors.Is(err, model.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, model.ErrTokenExpired.Error())
		}
		m.logger.Debug("gRPC authenticate: token rejected",
			"error", err.Error())
		return nil, status.Error(codes.Unauthenticated, model.ErrTokenInvalid.Error())
	}

	return m.contextManager.SetSubjectToContext(ctx, subject), nil
}
