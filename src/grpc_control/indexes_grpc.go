package grpc_control

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service only exchanges well-known types, so its descriptor is declared
// here instead of being generated from indexes.proto.

const (
	IndexesQuery_ServiceName                     = "indexes.v1.IndexesQuery"
	IndexesQuery_GetStockQuote_FullMethodName    = "/indexes.v1.IndexesQuery/GetStockQuote"
	IndexesQuery_GetStockIndexes_FullMethodName  = "/indexes.v1.IndexesQuery/GetStockIndexes"
	IndexesQuery_GetExchangeRates_FullMethodName = "/indexes.v1.IndexesQuery/GetExchangeRates"
	IndexesQuery_GetStatus_FullMethodName        = "/indexes.v1.IndexesQuery/GetStatus"
)

// -----------------------------------------------------------------------------
// Server
// -----------------------------------------------------------------------------

type IndexesQueryServer interface {
	GetStockQuote(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetStockIndexes(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetExchangeRates(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetStatus(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedIndexesQueryServer can be embedded to stay forward compatible
type UnimplementedIndexesQueryServer struct{}

func (UnimplementedIndexesQueryServer) GetStockQuote(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStockQuote not implemented")
}
func (UnimplementedIndexesQueryServer) GetStockIndexes(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStockIndexes not implemented")
}
func (UnimplementedIndexesQueryServer) GetExchangeRates(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetExchangeRates not implemented")
}
func (UnimplementedIndexesQueryServer) GetStatus(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStatus not implemented")
}

// -----------------------------------------------------------------------------

func RegisterIndexesQueryServer(s grpc.ServiceRegistrar, srv IndexesQueryServer) {
	s.RegisterService(&IndexesQuery_ServiceDesc, srv)
}

// -----------------------------------------------------------------------------

func _IndexesQuery_GetStockQuote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexesQueryServer).GetStockQuote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IndexesQuery_GetStockQuote_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IndexesQueryServer).GetStockQuote(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _IndexesQuery_GetStockIndexes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexesQueryServer).GetStockIndexes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IndexesQuery_GetStockIndexes_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IndexesQueryServer).GetStockIndexes(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _IndexesQuery_GetExchangeRates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexesQueryServer).GetExchangeRates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IndexesQuery_GetExchangeRates_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IndexesQueryServer).GetExchangeRates(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _IndexesQuery_GetStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IndexesQueryServer).GetStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: IndexesQuery_GetStatus_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IndexesQueryServer).GetStatus(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// IndexesQuery_ServiceDesc describes the indexes.v1.IndexesQuery service
var IndexesQuery_ServiceDesc = grpc.ServiceDesc{
	ServiceName: IndexesQuery_ServiceName,
	HandlerType: (*IndexesQueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetStockQuote", Handler: _IndexesQuery_GetStockQuote_Handler},
		{MethodName: "GetStockIndexes", Handler: _IndexesQuery_GetStockIndexes_Handler},
		{MethodName: "GetExchangeRates", Handler: _IndexesQuery_GetExchangeRates_Handler},
		{MethodName: "GetStatus", Handler: _IndexesQuery_GetStatus_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "indexes.proto",
}

// -----------------------------------------------------------------------------
// Client
// -----------------------------------------------------------------------------

type IndexesQueryClient interface {
	GetStockQuote(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetStockIndexes(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetExchangeRates(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type indexesQueryClient struct {
	cc grpc.ClientConnInterface
}

func NewIndexesQueryClient(cc grpc.ClientConnInterface) IndexesQueryClient {
	return &indexesQueryClient{cc}
}

func (c *indexesQueryClient) GetStockQuote(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, IndexesQuery_GetStockQuote_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexesQueryClient) GetStockIndexes(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, IndexesQuery_GetStockIndexes_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexesQueryClient) GetExchangeRates(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, IndexesQuery_GetExchangeRates_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *indexesQueryClient) GetStatus(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, IndexesQuery_GetStatus_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
