//go:build imagick

package imaging

import (
	"bytes"

	"github.com/gographics/imagick/imagick"
)

func renderPreview(opts PreviewOptions) ([]byte, error) {
	width, height := previewSize(opts.UpscaledWidth, opts.UpscaledHeight)

	imagick.Initialize()
	defer imagick.Terminate()

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	bg := imagick.NewPixelWand()
	bg.SetColor("#10151b")
	if err := mw.NewImage(uint(width), uint(height), bg); err != nil {
		return nil, err
	}
	if err := mw.SetImageFormat("png"); err != nil {
		return nil, err
	}

	accent := imagick.NewPixelWand()
	accent.SetColor("#ffb454")

	grid := imagick.NewDrawingWand()
	defer grid.Destroy()
	grid.SetStrokeColor(accent)
	grid.SetStrokeWidth(1)

	for i := 1; i < opts.TileCols; i++ {
		x := float64(i * width / opts.TileCols)
		grid.Line(x, 0, x, float64(height))
	}
	for i := 1; i < opts.TileRows; i++ {
		y := float64(i * height / opts.TileRows)
		grid.Line(0, y, float64(width), y)
	}
	if err := mw.DrawImage(grid); err != nil {
		return nil, err
	}

	label := imagick.NewDrawingWand()
	defer label.Destroy()
	label.SetFillColor(accent)
	label.SetFontSize(14)

	topLine, bottomLine := caption(opts)
	_ = mw.AnnotateImage(label, 8, float64(height-26), 0, topLine)
	_ = mw.AnnotateImage(label, 8, float64(height-10), 0, bottomLine)

	blob := mw.GetImageBlob()
	return bytes.Clone(blob), nil
}
