package imaging

// PreviewOptions describes a plan preview: the upscaled output frame with its
// tile grid drawn on top, scaled down to a thumbnail.
type PreviewOptions struct {
	Model          string
	BaseWidth      int
	BaseHeight     int
	UpscaledWidth  int
	UpscaledHeight int
	TileCols       int
	TileRows       int
	TileWidth      int
	TileHeight     int
}

// RenderPreview renders the preview as a PNG.
func RenderPreview(opts PreviewOptions) ([]byte, error) {
	return renderPreview(opts)
}
