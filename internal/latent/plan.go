// Package latent computes empty latent buffer shapes and tiling hints for
// diffusion pipelines. Given an aspect ratio, an approximate pixel-area
// budget and a model family it solves base dimensions compatible with the
// family's stride, picks the latent channel depth, and plans a tile grid for
// a later tiled-upscale pass.
package latent

import (
	"fmt"
	"math"
)

const (
	minBatch   = 1
	maxBatch   = 64
	minUpscale = 1.0
	maxUpscale = 10.0

	minMegapixels = 0.01
	maxMegapixels = 4.0
)

// Request carries the knobs of a latent plan. Preset selects a discrete size
// option; when empty, Megapixels is used instead. Zero values fall back to
// the defaults: 1:1, FLUX, 1MP, 2x upscale, batch 1.
type Request struct {
	AspectRatio string
	Preset      string
	Megapixels  float64
	UpscaleBy   float64
	Model       string
	BatchSize   int
}

// Shape is a latent tensor shape in NCHW order.
type Shape struct {
	Batch    int
	Channels int
	Height   int
	Width    int
}

// Dims returns the shape as a dimension slice.
func (s Shape) Dims() []int {
	return []int{s.Batch, s.Channels, s.Height, s.Width}
}

// Elements returns the element count of the placeholder buffer.
func (s Shape) Elements() int {
	return s.Batch * s.Channels * s.Height * s.Width
}

// Plan is a solved latent layout plus the tiling hints for the upscale pass.
// Width and Height are the base pixel dimensions the latent decodes to.
type Plan struct {
	Model     Model
	Width     int
	Height    int
	Latent    Shape
	UpscaleBy float64
	Tiles     TilePlan
}

// Solve validates a request and computes the full plan. The latent shape is
// derived but never allocated; buffer allocation belongs to the tensor
// library consuming the plan.
func Solve(req Request) (Plan, error) {
	raw := req.AspectRatio
	if raw == "" {
		raw = "1:1"
	}
	aspect, err := ParseAspect(raw)
	if err != nil {
		return Plan{}, err
	}

	name := req.Model
	if name == "" {
		name = string(ModelFLUX)
	}
	model, err := ParseModel(name)
	if err != nil {
		return Plan{}, err
	}

	batch := req.BatchSize
	if batch == 0 {
		batch = minBatch
	}
	if batch < minBatch || batch > maxBatch {
		return Plan{}, fmt.Errorf("batch size %d out of range [%d, %d]", batch, minBatch, maxBatch)
	}

	upscale := req.UpscaleBy
	if upscale == 0 {
		upscale = 2.0
	}
	if math.IsNaN(upscale) || upscale < minUpscale || upscale > maxUpscale {
		return Plan{}, fmt.Errorf("upscale factor %g out of range [%g, %g]", upscale, minUpscale, maxUpscale)
	}

	var area float64
	if req.Preset != "" {
		area = float64(PresetArea(req.Preset))
	} else {
		mp := req.Megapixels
		if mp == 0 {
			mp = 1
		}
		if math.IsNaN(mp) {
			return Plan{}, fmt.Errorf("megapixel size is not a number")
		}
		if mp < minMegapixels {
			mp = minMegapixels
		}
		if mp > maxMegapixels {
			mp = maxMegapixels
		}
		area = mp * mpBaseArea
	}

	width, height := solveDimensions(aspect, area, model)

	return Plan{
		Model:  model,
		Width:  width,
		Height: height,
		Latent: Shape{
			Batch:    batch,
			Channels: model.Channels(),
			Height:   height / VAEScaleFactor,
			Width:    width / VAEScaleFactor,
		},
		UpscaleBy: upscale,
		Tiles:     planTiles(width, height, upscale),
	}, nil
}
