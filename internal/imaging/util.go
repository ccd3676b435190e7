package imaging

import "fmt"

// previewMaxEdge caps the long side of rendered thumbnails.
const previewMaxEdge = 768

// previewSize scales the upscaled output down to fit previewMaxEdge on its
// long side. Degenerate inputs fall back to a square canvas.
func previewSize(width, height int) (int, int) {
	if width <= 0 || height <= 0 {
		return 512, 512
	}
	long := width
	if height > long {
		long = height
	}
	if long <= previewMaxEdge {
		return width, height
	}
	scale := float64(previewMaxEdge) / float64(long)
	w := int(float64(width) * scale)
	h := int(float64(height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// caption builds the two label lines drawn under the preview.
func caption(opts PreviewOptions) (string, string) {
	top := fmt.Sprintf("model: %s  base: %dx%d", opts.Model, opts.BaseWidth, opts.BaseHeight)
	bottom := fmt.Sprintf("grid: %dx%d  tile: %dx%d", opts.TileCols, opts.TileRows, opts.TileWidth, opts.TileHeight)
	return trimText(top, 72), trimText(bottom, 72)
}

func trimText(text string, max int) string {
	if len(text) <= max {
		return text
	}
	if max < 3 {
		return text[:max]
	}
	return text[:max-3] + "..."
}
