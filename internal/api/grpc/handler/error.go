package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/sessionkeeper/internal/model"
)

func handleError(err error) error {
	switch {
	case errors.Is(err, model.ErrRefreshRejected):
		return status.Error(codes.Unauthenticated, model.ErrRefreshRejected.Error())
	case errors.Is(err, model.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, model.ErrTokenExpired.Error())
	case errors.Is(err, model.ErrTokenInvalid):
		return status.Error(codes.Unauthenticated, model.ErrTokenInvalid.Error())
	case errors.Is(err, model.ErrAuthenticationRequired):
		return status.Error(codes.Unauthenticated, model.ErrAuthenticationRequired.Error())
	case errors.Is(err, model.ErrForbidden):
		return status.Error(codes.PermissionDenied, model.ErrForbidden.Error())
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, model.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, "service unavailable")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
