package latentv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	plannerServiceName = "latent.v1.Planner"

	plannerPlanLatentMethod   = "/latent.v1.Planner/PlanLatent"
	plannerListModelsMethod   = "/latent.v1.Planner/ListModels"
	plannerSweepPresetsMethod = "/latent.v1.Planner/SweepPresets"
	plannerHealthMethod       = "/latent.v1.Planner/Health"
)

// PlannerClient is the client API for the Planner service.
type PlannerClient interface {
	PlanLatent(ctx context.Context, in *PlanRequest, opts ...grpc.CallOption) (*PlanResponse, error)
	ListModels(ctx context.Context, in *ListModelsRequest, opts ...grpc.CallOption) (*ListModelsResponse, error)
	SweepPresets(ctx context.Context, in *SweepRequest, opts ...grpc.CallOption) (Planner_SweepPresetsClient, error)
	Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error)
}

type plannerClient struct {
	cc grpc.ClientConnInterface
}

func NewPlannerClient(cc grpc.ClientConnInterface) PlannerClient {
	return &plannerClient{cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *plannerClient) PlanLatent(ctx context.Context, in *PlanRequest, opts ...grpc.CallOption) (*PlanResponse, error) {
	out := new(PlanResponse)
	if err := c.cc.Invoke(ctx, plannerPlanLatentMethod, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plannerClient) ListModels(ctx context.Context, in *ListModelsRequest, opts ...grpc.CallOption) (*ListModelsResponse, error) {
	out := new(ListModelsResponse)
	if err := c.cc.Invoke(ctx, plannerListModelsMethod, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plannerClient) SweepPresets(ctx context.Context, in *SweepRequest, opts ...grpc.CallOption) (Planner_SweepPresetsClient, error) {
	stream, err := c.cc.NewStream(ctx, &PlannerServiceDesc.Streams[0], plannerSweepPresetsMethod, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &plannerSweepPresetsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

type Planner_SweepPresetsClient interface {
	Recv() (*SweepEvent, error)
	grpc.ClientStream
}

type plannerSweepPresetsClient struct {
	grpc.ClientStream
}

func (x *plannerSweepPresetsClient) Recv() (*SweepEvent, error) {
	m := new(SweepEvent)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *plannerClient) Health(ctx context.Context, in *HealthRequest, opts ...grpc.CallOption) (*HealthResponse, error) {
	out := new(HealthResponse)
	if err := c.cc.Invoke(ctx, plannerHealthMethod, in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

// PlannerServer is the server API for the Planner service. Implementations
// should embed UnimplementedPlannerServer for forward compatibility.
type PlannerServer interface {
	PlanLatent(context.Context, *PlanRequest) (*PlanResponse, error)
	ListModels(context.Context, *ListModelsRequest) (*ListModelsResponse, error)
	SweepPresets(*SweepRequest, Planner_SweepPresetsServer) error
	Health(context.Context, *HealthRequest) (*HealthResponse, error)
}

type UnimplementedPlannerServer struct{}

func (UnimplementedPlannerServer) PlanLatent(context.Context, *PlanRequest) (*PlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PlanLatent not implemented")
}

func (UnimplementedPlannerServer) ListModels(context.Context, *ListModelsRequest) (*ListModelsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListModels not implemented")
}

func (UnimplementedPlannerServer) SweepPresets(*SweepRequest, Planner_SweepPresetsServer) error {
	return status.Errorf(codes.Unimplemented, "method SweepPresets not implemented")
}

func (UnimplementedPlannerServer) Health(context.Context, *HealthRequest) (*HealthResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Health not implemented")
}

func RegisterPlannerServer(s grpc.ServiceRegistrar, srv PlannerServer) {
	s.RegisterService(&PlannerServiceDesc, srv)
}

func plannerPlanLatentHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(PlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlannerServer).PlanLatent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: plannerPlanLatentMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlannerServer).PlanLatent(ctx, req.(*PlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func plannerListModelsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListModelsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlannerServer).ListModels(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: plannerListModelsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlannerServer).ListModels(ctx, req.(*ListModelsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func plannerSweepPresetsHandler(srv any, stream grpc.ServerStream) error {
	m := new(SweepRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(PlannerServer).SweepPresets(m, &plannerSweepPresetsServer{stream})
}

type Planner_SweepPresetsServer interface {
	Send(*SweepEvent) error
	grpc.ServerStream
}

type plannerSweepPresetsServer struct {
	grpc.ServerStream
}

func (x *plannerSweepPresetsServer) Send(m *SweepEvent) error {
	return x.ServerStream.SendMsg(m)
}

func plannerHealthHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(HealthRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlannerServer).Health(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: plannerHealthMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PlannerServer).Health(ctx, req.(*HealthRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PlannerServiceDesc is the grpc.ServiceDesc for the Planner service.
var PlannerServiceDesc = grpc.ServiceDesc{
	ServiceName: plannerServiceName,
	HandlerType: (*PlannerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "PlanLatent", Handler: plannerPlanLatentHandler},
		{MethodName: "ListModels", Handler: plannerListModelsHandler},
		{MethodName: "Health", Handler: plannerHealthHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "SweepPresets", Handler: plannerSweepPresetsHandler, ServerStreams: true},
	},
}
