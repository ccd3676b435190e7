//go:build !imagick

package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

func renderPreview(opts PreviewOptions) ([]byte, error) {
	width, height := previewSize(opts.UpscaledWidth, opts.UpscaledHeight)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := uint8(16 + (x*48)/width)
			g := uint8(21 + (y*48)/height)
			b := uint8(27 + ((x+y)*48)/(width+height))
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}

	grid := color.RGBA{R: 255, G: 180, B: 84, A: 255}
	for i := 1; i < opts.TileCols; i++ {
		drawVLine(img, i*width/opts.TileCols, height, grid)
	}
	for i := 1; i < opts.TileRows; i++ {
		drawHLine(img, i*height/opts.TileRows, width, grid)
	}

	overlay := image.NewUniform(color.RGBA{R: 12, G: 14, B: 18, A: 200})
	draw.Draw(img, image.Rect(0, height-44, width, height), overlay, image.Point{}, draw.Over)

	topLine, bottomLine := caption(opts)
	drawLabel(img, 8, height-26, topLine)
	drawLabel(img, 8, height-10, bottomLine)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawVLine(img *image.RGBA, x, height int, c color.RGBA) {
	for y := 0; y < height; y++ {
		img.SetRGBA(x, y, c)
	}
}

func drawHLine(img *image.RGBA, y, width int, c color.RGBA) {
	for x := 0; x < width; x++ {
		img.SetRGBA(x, y, c)
	}
}

func drawLabel(img *image.RGBA, x, y int, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 240, G: 196, B: 120, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
