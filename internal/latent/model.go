package latent

import (
	"fmt"
	"strings"
)

// VAEScaleFactor is the pixel-to-latent downscale shared by all supported
// model families: one latent cell per 8x8 pixel block.
const VAEScaleFactor = 8

// Model selects the per-family sizing rules.
type Model string

const (
	ModelFLUX Model = "FLUX"
	ModelSDXL Model = "SDXL"
	ModelSD3  Model = "SD3"
	ModelQWEN Model = "QWEN"
	ModelWAN  Model = "WAN"
)

// policy holds the sizing rules for one model family. rescale marks families
// that pull rounded dimensions back toward the 1MP reference area before a
// second rounding pass.
type policy struct {
	channels int
	stride   int
	rescale  bool
}

var policies = map[Model]policy{
	ModelFLUX: {channels: 16, stride: 64},
	ModelSDXL: {channels: 4, stride: 64},
	ModelSD3:  {channels: 4, stride: 64, rescale: true},
	ModelQWEN: {channels: 4, stride: 28},
	ModelWAN:  {channels: 4, stride: 64},
}

// Models lists the supported families in a stable order.
func Models() []Model {
	return []Model{ModelFLUX, ModelSDXL, ModelSD3, ModelQWEN, ModelWAN}
}

// ParseModel resolves a model family name, case-insensitively.
func ParseModel(raw string) (Model, error) {
	model := Model(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := policies[model]; !ok {
		return "", fmt.Errorf("unknown model type %q", raw)
	}
	return model, nil
}

// Channels returns the latent channel count for the family.
func (m Model) Channels() int {
	return policies[m].channels
}

// Stride returns the pixel multiple base dimensions are rounded to.
func (m Model) Stride() int {
	return policies[m].stride
}
