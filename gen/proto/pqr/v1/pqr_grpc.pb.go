// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: pqr/v1/pqr.proto

package pqrv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	PQRFlowService_RunFlow_FullMethodName      = "/pqr.v1.PQRFlowService/RunFlow"
	PQRFlowService_GetFlowRun_FullMethodName   = "/pqr.v1.PQRFlowService/GetFlowRun"
	PQRFlowService_ListFlowRuns_FullMethodName = "/pqr.v1.PQRFlowService/ListFlowRuns"
)

// PQRFlowServiceClient is the client API for PQRFlowService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// PQRFlowService triggers and inspects per-company pipeline runs.
type PQRFlowServiceClient interface {
	// RunFlow executes the full consolidate -> load -> reconcile -> upload
	// pipeline for one company, synchronously.
	RunFlow(ctx context.Context, in *RunFlowRequest, opts ...grpc.CallOption) (*RunFlowResponse, error)
	GetFlowRun(ctx context.Context, in *GetFlowRunRequest, opts ...grpc.CallOption) (*GetFlowRunResponse, error)
	ListFlowRuns(ctx context.Context, in *ListFlowRunsRequest, opts ...grpc.CallOption) (*ListFlowRunsResponse, error)
}

type pQRFlowServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPQRFlowServiceClient(cc grpc.ClientConnInterface) PQRFlowServiceClient {
	return &pQRFlowServiceClient{cc}
}

func (c *pQRFlowServiceClient) RunFlow(ctx context.Context, in *RunFlowRequest, opts ...grpc.CallOption) (*RunFlowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunFlowResponse)
	err := c.cc.Invoke(ctx, PQRFlowService_RunFlow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pQRFlowServiceClient) GetFlowRun(ctx context.Context, in *GetFlowRunRequest, opts ...grpc.CallOption) (*GetFlowRunResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFlowRunResponse)
	err := c.cc.Invoke(ctx, PQRFlowService_GetFlowRun_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *pQRFlowServiceClient) ListFlowRuns(ctx context.Context, in *ListFlowRunsRequest, opts ...grpc.CallOption) (*ListFlowRunsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFlowRunsResponse)
	err := c.cc.Invoke(ctx, PQRFlowService_ListFlowRuns_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PQRFlowServiceServer is the server API for PQRFlowService service.
// All implementations must embed UnimplementedPQRFlowServiceServer
// for forward compatibility.
//
// PQRFlowService triggers and inspects per-company pipeline runs.
type PQRFlowServiceServer interface {
	// RunFlow executes the full consolidate -> load -> reconcile -> upload
	// pipeline for one company, synchronously.
	RunFlow(context.Context, *RunFlowRequest) (*RunFlowResponse, error)
	GetFlowRun(context.Context, *GetFlowRunRequest) (*GetFlowRunResponse, error)
	ListFlowRuns(context.Context, *ListFlowRunsRequest) (*ListFlowRunsResponse, error)
	mustEmbedUnimplementedPQRFlowServiceServer()
}

// UnimplementedPQRFlowServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPQRFlowServiceServer struct{}

func (UnimplementedPQRFlowServiceServer) RunFlow(context.Context, *RunFlowRequest) (*RunFlowResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method RunFlow not implemented")
}
func (UnimplementedPQRFlowServiceServer) GetFlowRun(context.Context, *GetFlowRunRequest) (*GetFlowRunResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetFlowRun not implemented")
}
func (UnimplementedPQRFlowServiceServer) ListFlowRuns(context.Context, *ListFlowRunsRequest) (*ListFlowRunsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListFlowRuns not implemented")
}
func (UnimplementedPQRFlowServiceServer) mustEmbedUnimplementedPQRFlowServiceServer() {}
func (UnimplementedPQRFlowServiceServer) testEmbeddedByValue()                        {}

// UnsafePQRFlowServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PQRFlowServiceServer will
// result in compilation errors.
type UnsafePQRFlowServiceServer interface {
	mustEmbedUnimplementedPQRFlowServiceServer()
}

func RegisterPQRFlowServiceServer(s grpc.ServiceRegistrar, srv PQRFlowServiceServer) {
	// If the following call panics, it indicates UnimplementedPQRFlowServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PQRFlowService_ServiceDesc, srv)
}

func _PQRFlowService_RunFlow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunFlowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PQRFlowServiceServer).RunFlow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PQRFlowService_RunFlow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PQRFlowServiceServer).RunFlow(ctx, req.(*RunFlowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PQRFlowService_GetFlowRun_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFlowRunRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PQRFlowServiceServer).GetFlowRun(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PQRFlowService_GetFlowRun_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PQRFlowServiceServer).GetFlowRun(ctx, req.(*GetFlowRunRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PQRFlowService_ListFlowRuns_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFlowRunsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PQRFlowServiceServer).ListFlowRuns(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PQRFlowService_ListFlowRuns_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PQRFlowServiceServer).ListFlowRuns(ctx, req.(*ListFlowRunsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PQRFlowService_ServiceDesc is the grpc.ServiceDesc for PQRFlowService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PQRFlowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pqr.v1.PQRFlowService",
	HandlerType: (*PQRFlowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunFlow",
			Handler:    _PQRFlowService_RunFlow_Handler,
		},
		{
			MethodName: "GetFlowRun",
			Handler:    _PQRFlowService_GetFlowRun_Handler,
		},
		{
			MethodName: "ListFlowRuns",
			Handler:    _PQRFlowService_ListFlowRuns_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pqr/v1/pqr.proto",
}
