package planner

import (
	"context"
	"testing"

	latentv1 "github.com/BobsBlazed/Bobs-Latent-Optimizer/internal/rpc/latentv1"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func TestPlanLatent(t *testing.T) {
	server := NewServer()
	resp, err := server.PlanLatent(context.Background(), &latentv1.PlanRequest{
		AspectRatio: "16:9",
		Preset:      "1",
		ModelType:   "FLUX",
		UpscaleBy:   2,
	})
	if err != nil {
		t.Fatalf("plan latent: %v", err)
	}
	if resp.Width != 1344 || resp.Height != 768 {
		t.Fatalf("unexpected base dims: %dx%d", resp.Width, resp.Height)
	}
	if len(resp.LatentShape) != 4 {
		t.Fatalf("unexpected shape rank: %v", resp.LatentShape)
	}
	if resp.LatentShape[1] != 16 {
		t.Fatalf("unexpected channel dim: %v", resp.LatentShape)
	}
	if resp.Tiles == nil || resp.Tiles.Cols != 2 || resp.Tiles.Rows != 2 {
		t.Fatalf("unexpected tile plan: %+v", resp.Tiles)
	}
	if resp.UpscaleBy != 2 {
		t.Fatalf("upscale factor not passed through: %v", resp.UpscaleBy)
	}
}

func TestPlanLatentInvalidArgument(t *testing.T) {
	server := NewServer()
	_, err := server.PlanLatent(context.Background(), &latentv1.PlanRequest{AspectRatio: "16:0"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("unexpected code: %v", status.Code(err))
	}
}

func TestListModels(t *testing.T) {
	server := NewServer()
	resp, err := server.ListModels(context.Background(), &latentv1.ListModelsRequest{})
	if err != nil {
		t.Fatalf("list models: %v", err)
	}
	if len(resp.Models) != 5 {
		t.Fatalf("unexpected model count: %d", len(resp.Models))
	}
	byName := map[string]*latentv1.ModelInfo{}
	for _, info := range resp.Models {
		byName[info.Name] = info
	}
	if info := byName["FLUX"]; info == nil || info.Channels != 16 || info.Stride != 64 {
		t.Fatalf("unexpected FLUX policy: %+v", info)
	}
	if info := byName["QWEN"]; info == nil || info.Channels != 4 || info.Stride != 28 {
		t.Fatalf("unexpected QWEN policy: %+v", info)
	}
}

func TestSweepPresets(t *testing.T) {
	server := NewServer()
	stream := &fakeSweepStream{ctx: context.Background()}

	err := server.SweepPresets(&latentv1.SweepRequest{AspectRatio: "1:1", ModelType: "SDXL"}, stream)
	if err != nil {
		t.Fatalf("sweep presets: %v", err)
	}
	if len(stream.events) != 10 {
		t.Fatalf("expected 10 events, got %d", len(stream.events))
	}
	for i := 1; i < len(stream.events); i++ {
		if stream.events[i-1].Area >= stream.events[i].Area {
			t.Fatalf("areas not ascending at %d", i)
		}
	}
	if stream.events[0].Preset != "0.25" {
		t.Fatalf("unexpected first preset: %s", stream.events[0].Preset)
	}
	if plan := stream.events[0].Plan; plan == nil || plan.Width != 512 {
		t.Fatalf("unexpected first plan: %+v", plan)
	}
}

func TestSweepPresetsInvalidArgument(t *testing.T) {
	server := NewServer()
	stream := &fakeSweepStream{ctx: context.Background()}

	err := server.SweepPresets(&latentv1.SweepRequest{AspectRatio: "bad"}, stream)
	if err == nil {
		t.Fatalf("expected error")
	}
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("unexpected code: %v", status.Code(err))
	}
}

func TestHealth(t *testing.T) {
	server := NewServer()
	resp, err := server.Health(context.Background(), &latentv1.HealthRequest{})
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("unexpected status: %s", resp.Status)
	}
}

type fakeSweepStream struct {
	ctx    context.Context
	events []*latentv1.SweepEvent
}

func (f *fakeSweepStream) Send(event *latentv1.SweepEvent) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeSweepStream) SetHeader(metadata.MD) error  { return nil }
func (f *fakeSweepStream) SendHeader(metadata.MD) error { return nil }
func (f *fakeSweepStream) SetTrailer(metadata.MD)       {}
func (f *fakeSweepStream) Context() context.Context     { return f.ctx }
func (f *fakeSweepStream) SendMsg(any) error            { return nil }
func (f *fakeSweepStream) RecvMsg(any) error            { return nil }
