package latent

// MaxTileEdge caps tile width and height for the tiled-upscale pass.
const MaxTileEdge = 2048

// TilePlan describes how the upscaled output should be split for tiled
// upscaling: a Cols x Rows grid of tiles no larger than TileWidth x
// TileHeight pixels each.
type TilePlan struct {
	Cols           int
	Rows           int
	TileWidth      int
	TileHeight     int
	UpscaledWidth  int
	UpscaledHeight int
}

// Tiles returns the total tile count.
func (p TilePlan) Tiles() int {
	return p.Cols * p.Rows
}

// planTiles finds the per-axis split keeping every tile edge at or below
// MaxTileEdge. A 2x2 grid is the default; an axis only gains tiles once its
// half exceeds the ceiling.
func planTiles(baseWidth, baseHeight int, upscaleBy float64) TilePlan {
	upscaledW := int(float64(baseWidth) * upscaleBy)
	upscaledH := int(float64(baseHeight) * upscaleBy)

	cols, rows := 2, 2
	if ceilDiv(upscaledW, cols) > MaxTileEdge {
		cols = ceilDiv(upscaledW, MaxTileEdge)
	}
	if ceilDiv(upscaledH, rows) > MaxTileEdge {
		rows = ceilDiv(upscaledH, MaxTileEdge)
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	tileW := ceilDiv(upscaledW, cols)
	tileH := ceilDiv(upscaledH, rows)
	if tileW < 1 {
		tileW = 1
	}
	if tileH < 1 {
		tileH = 1
	}

	return TilePlan{
		Cols:           cols,
		Rows:           rows,
		TileWidth:      tileW,
		TileHeight:     tileH,
		UpscaledWidth:  upscaledW,
		UpscaledHeight: upscaledH,
	}
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
