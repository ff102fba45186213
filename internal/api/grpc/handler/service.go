package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Full method names of the sessions.v1.Sessions service.
const (
	SessionsServiceName          = "sessions.v1.Sessions"
	SessionsRefreshMethod        = "/sessions.v1.Sessions/Refresh"
	SessionsLogoutMethod         = "/sessions.v1.Sessions/Logout"
	SessionsWhoAmIMethod         = "/sessions.v1.Sessions/WhoAmI"
	SessionsRevokeSessionsMethod = "/sessions.v1.Sessions/RevokeSessions"
)

// SessionsServer is the server API for the sessions.v1.Sessions service.
// Messages are protobuf well-known types.
type SessionsServer interface {
	Refresh(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Struct, error)
	Logout(ctx context.Context, in *wrapperspb.StringValue) (*emptypb.Empty, error)
	WhoAmI(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error)
	RevokeSessions(ctx context.Context, in *wrapperspb.Int64Value) (*emptypb.Empty, error)
}

// RegisterSessionsServer registers srv on s.
func RegisterSessionsServer(s grpc.ServiceRegistrar, srv SessionsServer) {
	s.RegisterService(&SessionsServiceDesc, srv)
}

// SessionsServiceDesc describes sessions.v1.Sessions for grpc.Server.
var SessionsServiceDesc = grpc.ServiceDesc{
	ServiceName: SessionsServiceName,
	HandlerType: (*SessionsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Refresh", Handler: refreshHandler},
		{MethodName: "Logout", Handler: logoutHandler},
		{MethodName: "WhoAmI", Handler: whoAmIHandler},
		{MethodName: "RevokeSessions", Handler: revokeSessionsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sessions/v1/sessions.proto",
}

func refreshHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServer).Refresh(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SessionsRefreshMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServer).Refresh(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func logoutHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServer).Logout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SessionsLogoutMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServer).Logout(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func whoAmIHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServer).WhoAmI(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SessionsWhoAmIMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServer).WhoAmI(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func revokeSessionsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.Int64Value)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SessionsServer).RevokeSessions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SessionsRevokeSessionsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SessionsServer).RevokeSessions(ctx, req.(*wrapperspb.Int64Value))
	}
	return interceptor(ctx, in, info, handler)
}
