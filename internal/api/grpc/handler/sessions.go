package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/sessionkeeper/internal/logger"
	"github.com/dtroode/sessionkeeper/internal/model"
)

// SessionService rotates and ends sessions.
type SessionService interface {
	Rotate(ctx context.Context, presentedRefresh string) (model.TokenPair, model.Subject, error)
	End(ctx context.Context, refreshToken string) error
	RevokeAllForSubject(ctx context.Context, subjectID int64) error
}

var _ SessionsServer = (*Sessions)(nil)

// Sessions implements sessions.v1.Sessions for bearer-token clients.
type Sessions struct {
	session        SessionService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewSessions creates a new Sessions handler.
func NewSessions(session SessionService, contextManager model.ContextManager, logger *logger.Logger) *Sessions {
	return &Sessions{session: session, contextManager: contextManager, logger: logger}
}

// Refresh rotates the presented refresh token.
func (h *Sessions) Refresh(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error) {
	if in.GetValue() == "" {
		return nil, status.Error(codes.Unauthenticated, "refresh token required")
	}

	pair, subject, err := h.session.Rotate(ctx, in.GetValue())
	if err != nil {
		return nil, h.handleError(err)
	}

	return structpb.NewStruct(map[string]interface{}{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
		"user":          subjectFields(subject),
	})
}

// Logout revokes the presented refresh token. Unknown tokens succeed.
func (h *Sessions) Logout(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if in.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token required")
	}

	if err := h.session.End(ctx, in.GetValue()); err != nil {
		return nil, h.handleError(err)
	}
	return &emptypb.Empty{}, nil
}

// WhoAmI returns the subject of the caller's access token.
func (h *Sessions) WhoAmI(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	subject, ok := h.contextManager.GetSubjectFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, model.ErrAuthenticationRequired.Error())
	}
	return structpb.NewStruct(subjectFields(subject))
}

// RevokeSessions ends every session of the given user.
func (h *Sessions) RevokeSessions(ctx context.Context, in *wrapperspb.Int64Value) (*emptypb.Empty, error) {
	if in.GetValue() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "invalid user id")
	}

	if err := h.session.RevokeAllForSubject(ctx, in.GetValue()); err != nil {
		return nil, h.handleError(err)
	}

	admin, _ := h.contextManager.GetSubjectFromContext(ctx)
	h.logger.Info("gRPC sessions handler: sessions revoked",
		"user_id", in.GetValue(),
		"admin_id", admin.ID)

	return &emptypb.Empty{}, nil
}

func (h *Sessions) handleError(err error) error {
	if !errors.Is(err, model.ErrRefreshRejected) {
		h.logger.Error("gRPC sessions handler: request failed",
			"error", err.Error())
	}
	return handleError(err)
}

func subjectFields(subject model.Subject) map[string]interface{} {
	return map[string]interface{}{
		"id":    subject.ID,
		"email": subject.Email,
		"role":  subject.Role.String(),
	}
}
