package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// The meter service exchanges google.protobuf.Struct payloads so devices need no generated stubs.
const (
	MeterServiceName = "logify.meter.v1.MeterService"

	MeterServiceAddReadingMethod   = "/" + MeterServiceName + "/AddReading"
	MeterServiceListReadingsMethod = "/" + MeterServiceName + "/ListReadings"
	MeterServiceSetLimiterMethod   = "/" + MeterServiceName + "/SetLimiter"
)

type MeterServiceServer interface {
	AddReading(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListReadings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func unaryHandler(fullMethod string, call func(MeterServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MeterServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MeterServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var MeterServiceDesc = grpc.ServiceDesc{
	ServiceName: MeterServiceName,
	HandlerType: (*MeterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddReading",
			Handler:    unaryHandler(MeterServiceAddReadingMethod, MeterServiceServer.AddReading),
		},
		{
			MethodName: "ListReadings",
			Handler:    unaryHandler(MeterServiceListReadingsMethod, MeterServiceServer.ListReadings),
		},
		{
			MethodName: "SetLimiter",
			Handler:    unaryHandler(MeterServiceSetLimiterMethod, MeterServiceServer.SetLimiter),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "logify/meter/v1/meter.proto",
}

func RegisterMeterServiceServer(s grpc.ServiceRegistrar, srv MeterServiceServer) {
	s.RegisterService(&MeterServiceDesc, srv)
}

type MeterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMeterServiceClient(cc grpc.ClientConnInterface) *MeterServiceClient {
	return &MeterServiceClient{cc: cc}
}

func (c *MeterServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MeterServiceClient) AddReading(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MeterServiceAddReadingMethod, in, opts...)
}

func (c *MeterServiceClient) ListReadings(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MeterServiceListReadingsMethod, in, opts...)
}

func (c *MeterServiceClient) SetLimiter(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MeterServiceSetLimiterMethod, in, opts...)
}
