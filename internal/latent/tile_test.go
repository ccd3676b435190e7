package latent

import "testing"

func TestPlanTilesDefaultGrid(t *testing.T) {
	plan := planTiles(1024, 1024, 2)
	if plan.Cols != 2 || plan.Rows != 2 {
		t.Fatalf("expected 2x2 grid, got %dx%d", plan.Cols, plan.Rows)
	}
	if plan.TileWidth != 1024 || plan.TileHeight != 1024 {
		t.Fatalf("unexpected tile size: %dx%d", plan.TileWidth, plan.TileHeight)
	}
	if plan.UpscaledWidth != 2048 || plan.UpscaledHeight != 2048 {
		t.Fatalf("unexpected upscaled size: %dx%d", plan.UpscaledWidth, plan.UpscaledHeight)
	}
	if plan.Tiles() != 4 {
		t.Fatalf("unexpected tile count: %d", plan.Tiles())
	}
}

func TestPlanTilesAtCeiling(t *testing.T) {
	// 4096/2 = 2048 sits exactly at the ceiling, so 2x2 holds.
	plan := planTiles(2048, 2048, 2)
	if plan.Cols != 2 || plan.Rows != 2 {
		t.Fatalf("expected 2x2 grid, got %dx%d", plan.Cols, plan.Rows)
	}
	if plan.TileWidth != MaxTileEdge {
		t.Fatalf("unexpected tile width: %d", plan.TileWidth)
	}
}

func TestPlanTilesEscalatesPastCeiling(t *testing.T) {
	// 2048 * 2.5 = 5120; half of that exceeds 2048 on both axes.
	plan := planTiles(2048, 2048, 2.5)
	if plan.Cols != 3 || plan.Rows != 3 {
		t.Fatalf("expected 3x3 grid, got %dx%d", plan.Cols, plan.Rows)
	}
	if plan.TileWidth != 1707 || plan.TileHeight != 1707 {
		t.Fatalf("unexpected tile size: %dx%d", plan.TileWidth, plan.TileHeight)
	}
	if plan.TileWidth > MaxTileEdge || plan.TileHeight > MaxTileEdge {
		t.Fatalf("tile exceeds ceiling: %dx%d", plan.TileWidth, plan.TileHeight)
	}
}

func TestPlanTilesEscalatesPerAxis(t *testing.T) {
	plan := planTiles(1344, 768, 4)
	if plan.UpscaledWidth != 5376 || plan.UpscaledHeight != 3072 {
		t.Fatalf("unexpected upscaled size: %dx%d", plan.UpscaledWidth, plan.UpscaledHeight)
	}
	if plan.Cols != 3 || plan.Rows != 2 {
		t.Fatalf("expected 3x2 grid, got %dx%d", plan.Cols, plan.Rows)
	}
	if plan.TileWidth != 1792 || plan.TileHeight != 1536 {
		t.Fatalf("unexpected tile size: %dx%d", plan.TileWidth, plan.TileHeight)
	}
}

func TestPlanTilesNoUpscale(t *testing.T) {
	plan := planTiles(1024, 1024, 1)
	if plan.Cols != 2 || plan.Rows != 2 {
		t.Fatalf("expected 2x2 grid, got %dx%d", plan.Cols, plan.Rows)
	}
	if plan.TileWidth != 512 || plan.TileHeight != 512 {
		t.Fatalf("unexpected tile size: %dx%d", plan.TileWidth, plan.TileHeight)
	}
}

func TestPlanTilesTinyInput(t *testing.T) {
	plan := planTiles(0, 0, 2)
	if plan.TileWidth < 1 || plan.TileHeight < 1 {
		t.Fatalf("tile dims must stay positive: %dx%d", plan.TileWidth, plan.TileHeight)
	}
}
