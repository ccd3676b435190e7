//go:build !imagick

package imaging

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRenderPreviewPNG(t *testing.T) {
	payload, err := RenderPreview(PreviewOptions{
		Model:          "FLUX",
		BaseWidth:      1024,
		BaseHeight:     1024,
		UpscaledWidth:  2048,
		UpscaledHeight: 2048,
		TileCols:       2,
		TileRows:       2,
		TileWidth:      1024,
		TileHeight:     1024,
	})
	if err != nil {
		t.Fatalf("render preview: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != previewMaxEdge || bounds.Dy() != previewMaxEdge {
		t.Fatalf("unexpected thumbnail size: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPreviewKeepsAspect(t *testing.T) {
	payload, err := RenderPreview(PreviewOptions{
		UpscaledWidth:  4096,
		UpscaledHeight: 2048,
		TileCols:       2,
		TileRows:       2,
	})
	if err != nil {
		t.Fatalf("render preview: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 768 || bounds.Dy() != 384 {
		t.Fatalf("unexpected thumbnail size: %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestRenderPreviewDefaults(t *testing.T) {
	payload, err := RenderPreview(PreviewOptions{})
	if err != nil {
		t.Fatalf("render preview: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 512 || bounds.Dy() != 512 {
		t.Fatalf("unexpected default size: %dx%d", bounds.Dx(), bounds.Dy())
	}
}
