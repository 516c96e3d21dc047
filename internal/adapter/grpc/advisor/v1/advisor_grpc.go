// Package advisorv1 declares the advisor.v1.AdvisorService RPC contract.
//
// Messages are google.protobuf.Struct documents so the service needs no
// generated message types; field names are documented on each method.
package advisorv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	AdvisorService_Recommend_FullMethodName        = "/advisor.v1.AdvisorService/Recommend"
	AdvisorService_Project_FullMethodName          = "/advisor.v1.AdvisorService/Project"
	AdvisorService_ListAssetClasses_FullMethodName = "/advisor.v1.AdvisorService/ListAssetClasses"
)

// AdvisorServiceServer is the server API for AdvisorService
type AdvisorServiceServer interface {
	// Recommend takes {capital: string|number, risk: string}
	Recommend(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// Project takes {capital, risk, years: number, scenario: string, seed: string|number}
	Project(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// ListAssetClasses returns the reference table
	ListAssetClasses(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedAdvisorServiceServer must be embedded for forward compatibility
type UnimplementedAdvisorServiceServer struct{}

func (UnimplementedAdvisorServiceServer) Recommend(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Recommend not implemented")
}

func (UnimplementedAdvisorServiceServer) Project(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Project not implemented")
}

func (UnimplementedAdvisorServiceServer) ListAssetClasses(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListAssetClasses not implemented")
}

// RegisterAdvisorServiceServer registers srv on s
func RegisterAdvisorServiceServer(s grpc.ServiceRegistrar, srv AdvisorServiceServer) {
	s.RegisterService(&AdvisorService_ServiceDesc, srv)
}

func _AdvisorService_Recommend_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdvisorServiceServer).Recommend(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdvisorService_Recommend_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdvisorServiceServer).Recommend(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdvisorService_Project_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdvisorServiceServer).Project(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdvisorService_Project_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdvisorServiceServer).Project(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func _AdvisorService_ListAssetClasses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdvisorServiceServer).ListAssetClasses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdvisorService_ListAssetClasses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdvisorServiceServer).ListAssetClasses(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// AdvisorService_ServiceDesc is the grpc.ServiceDesc for AdvisorService
var AdvisorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "advisor.v1.AdvisorService",
	HandlerType: (*AdvisorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Recommend",
			Handler:    _AdvisorService_Recommend_Handler,
		},
		{
			MethodName: "Project",
			Handler:    _AdvisorService_Project_Handler,
		},
		{
			MethodName: "ListAssetClasses",
			Handler:    _AdvisorService_ListAssetClasses_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "advisor/v1/advisor.proto",
}

// AdvisorServiceClient is the client API for AdvisorService
type AdvisorServiceClient interface {
	Recommend(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Project(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListAssetClasses(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type advisorServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewAdvisorServiceClient creates a client bound to cc
func NewAdvisorServiceClient(cc grpc.ClientConnInterface) AdvisorServiceClient {
	return &advisorServiceClient{cc}
}

func (c *advisorServiceClient) Recommend(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, AdvisorService_Recommend_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *advisorServiceClient) Project(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, AdvisorService_Project_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *advisorServiceClient) ListAssetClasses(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, AdvisorService_ListAssetClasses_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
