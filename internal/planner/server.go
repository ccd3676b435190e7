package planner

import (
	"context"
	"log"

	"github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/latent"
	latentv1 "github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/rpc/latentv1"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements the Planner gRPC service. The service is stateless; every
// call is a pure computation over the request.
type Server struct {
	latentv1.UnimplementedPlannerServer
}

func NewServer() *Server {
	return &Server{}
}

func (s *Server) PlanLatent(ctx context.Context, req *latentv1.PlanRequest) (*latentv1.PlanResponse, error) {
	plan, err := latent.Solve(toRequest(req))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	log.Printf("planned model=%s base=%dx%d latent=%dx%d grid=%dx%d tile=%dx%d",
		plan.Model, plan.Width, plan.Height,
		plan.Latent.Width, plan.Latent.Height,
		plan.Tiles.Cols, plan.Tiles.Rows,
		plan.Tiles.TileWidth, plan.Tiles.TileHeight)

	return toResponse(plan), nil
}

func (s *Server) ListModels(ctx context.Context, req *latentv1.ListModelsRequest) (*latentv1.ListModelsResponse, error) {
	models := latent.Models()
	infos := make([]*latentv1.ModelInfo, 0, len(models))
	for _, model := range models {
		infos = append(infos, &latentv1.ModelInfo{
			Name:     string(model),
			Channels: model.Channels(),
			Stride:   model.Stride(),
		})
	}
	return &latentv1.ListModelsResponse{Models: infos}, nil
}

func (s *Server) SweepPresets(req *latentv1.SweepRequest, stream latentv1.Planner_SweepPresetsServer) error {
	for _, preset := range latent.Presets() {
		plan, err := latent.Solve(latent.Request{
			AspectRatio: req.AspectRatio,
			Preset:      preset,
			UpscaleBy:   req.UpscaleBy,
			Model:       req.ModelType,
			BatchSize:   req.BatchSize,
		})
		if err != nil {
			return status.Error(codes.InvalidArgument, err.Error())
		}

		event := &latentv1.SweepEvent{
			Preset: preset,
			Area:   int64(latent.PresetArea(preset)),
			Plan:   toResponse(plan),
		}
		if err := stream.Send(event); err != nil {
			return err
		}
		if err := stream.Context().Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Server) Health(ctx context.Context, req *latentv1.HealthRequest) (*latentv1.HealthResponse, error) {
	return &latentv1.HealthResponse{Status: "ok"}, nil
}

func toRequest(req *latentv1.PlanRequest) latent.Request {
	if req == nil {
		return latent.Request{}
	}
	return latent.Request{
		AspectRatio: req.AspectRatio,
		Preset:      req.Preset,
		Megapixels:  req.Megapixels,
		UpscaleBy:   req.UpscaleBy,
		Model:       req.ModelType,
		BatchSize:   req.BatchSize,
	}
}

func toResponse(plan latent.Plan) *latentv1.PlanResponse {
	dims := plan.Latent.Dims()
	shape := make([]int64, len(dims))
	for i, d := range dims {
		shape[i] = int64(d)
	}

	tiles := plan.Tiles
	return &latentv1.PlanResponse{
		ModelType:      string(plan.Model),
		Width:          plan.Width,
		Height:         plan.Height,
		LatentShape:    shape,
		LatentChannels: plan.Latent.Channels,
		Elements:       int64(plan.Latent.Elements()),
		UpscaleBy:      plan.UpscaleBy,
		Tiles: &latentv1.TilePlan{
			Cols:           tiles.Cols,
			Rows:           tiles.Rows,
			TileWidth:      tiles.TileWidth,
			TileHeight:     tiles.TileHeight,
			UpscaledWidth:  tiles.UpscaledWidth,
			UpscaledHeight: tiles.UpscaledHeight,
		},
	}
}
