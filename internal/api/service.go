// Package api defines the Profiler gRPC service: message types, the
// service descriptor, and the JSON codec that carries them.
package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "svcprofile.v1.Profiler"

// Method names.
const (
	MethodLogin      = "Login"
	MethodLogout     = "Logout"
	MethodSubmitForm = "SubmitForm"
	MethodAnswer     = "Answer"
	MethodRestart    = "Restart"
	MethodView       = "View"
)

// FullMethod returns "/svcprofile.v1.Profiler/<method>".
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// ProfilerServer is the server API for the Profiler service.
type ProfilerServer interface {
	Login(context.Context, *LoginRequest) (*SessionReply, error)
	Logout(context.Context, *SessionRequest) (*SessionReply, error)
	SubmitForm(context.Context, *FormRequest) (*ComputeReply, error)
	Answer(context.Context, *AnswerRequest) (*DialogueReply, error)
	Restart(context.Context, *SessionRequest) (*DialogueReply, error)
	View(context.Context, *SessionRequest) (*DialogueReply, error)
}

// UnimplementedProfilerServer returns Unimplemented for every method.
type UnimplementedProfilerServer struct{}

func (UnimplementedProfilerServer) Login(context.Context, *LoginRequest) (*SessionReply, error) {
	return nil, status.Error(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedProfilerServer) Logout(context.Context, *SessionRequest) (*SessionReply, error) {
	return nil, status.Error(codes.Unimplemented, "method Logout not implemented")
}
func (UnimplementedProfilerServer) SubmitForm(context.Context, *FormRequest) (*ComputeReply, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitForm not implemented")
}
func (UnimplementedProfilerServer) Answer(context.Context, *AnswerRequest) (*DialogueReply, error) {
	return nil, status.Error(codes.Unimplemented, "method Answer not implemented")
}
func (UnimplementedProfilerServer) Restart(context.Context, *SessionRequest) (*DialogueReply, error) {
	return nil, status.Error(codes.Unimplemented, "method Restart not implemented")
}
func (UnimplementedProfilerServer) View(context.Context, *SessionRequest) (*DialogueReply, error) {
	return nil, status.Error(codes.Unimplemented, "method View not implemented")
}

// RegisterProfilerServer registers srv with s.
func RegisterProfilerServer(s grpc.ServiceRegistrar, srv ProfilerServer) {
	s.RegisterService(&profilerServiceDesc, srv)
}

var profilerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ProfilerServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodLogin, ProfilerServer.Login),
		unary(MethodLogout, ProfilerServer.Logout),
		unary(MethodSubmitForm, ProfilerServer.SubmitForm),
		unary(MethodAnswer, ProfilerServer.Answer),
		unary(MethodRestart, ProfilerServer.Restart),
		unary(MethodView, ProfilerServer.View),
	},
	Streams: []grpc.StreamDesc{},
}

// unary builds the method descriptor for one request/response RPC.
func unary[Req, Resp any](method string, call func(ProfilerServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ProfilerServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(method)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ProfilerServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
