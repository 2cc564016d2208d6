package grpc

// proto.go defines the gRPC server interface derived from pricing/v1/pricing.proto.
// This file serves as a stand-in for buf-generated code. Once `buf generate` is run,
// replace this file with the import from github.com/sajinavi2006/julomvp-sub044/api/gen/go/pricing/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// PricingServiceServer is the server API for PricingService.
// It mirrors the proto-generated interface from pricing.v1.PricingService.
type PricingServiceServer interface {
	GenerateOffers(context.Context, *GenerateOffersRequest) (*GenerateOffersResponse, error)
	GetRateCard(context.Context, *GetRateCardRequest) (*GetRateCardResponse, error)
	mustEmbedUnimplementedPricingServiceServer()
}

// UnimplementedPricingServiceServer provides forward-compatible default implementations.
type UnimplementedPricingServiceServer struct{}

func (UnimplementedPricingServiceServer) GenerateOffers(context.Context, *GenerateOffersRequest) (*GenerateOffersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GenerateOffers not implemented")
}
func (UnimplementedPricingServiceServer) GetRateCard(context.Context, *GetRateCardRequest) (*GetRateCardResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRateCard not implemented")
}
func (UnimplementedPricingServiceServer) mustEmbedUnimplementedPricingServiceServer() {}

// RegisterPricingServiceServer registers the PricingServiceServer with the gRPC server.
func RegisterPricingServiceServer(s *grpclib.Server, srv PricingServiceServer) {
	s.RegisterService(&_PricingService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _PricingService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "pricing.v1.PricingService",
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "GenerateOffers", Handler: _PricingService_GenerateOffers_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetRateCard", Handler: _PricingService_GetRateCard_Handler},       //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _PricingService_GenerateOffers_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GenerateOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).GenerateOffers(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/pricing.v1.PricingService/GenerateOffers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).GenerateOffers(ctx, req.(*GenerateOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _PricingService_GetRateCard_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetRateCardRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).GetRateCard(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/pricing.v1.PricingService/GetRateCard",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).GetRateCard(ctx, req.(*GetRateCardRequest))
	}
	return interceptor(ctx, in, info, handler)
}
