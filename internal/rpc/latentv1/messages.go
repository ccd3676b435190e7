package latentv1

// PlanRequest asks the planner for a latent layout. Preset picks a discrete
// size option; Megapixels is the continuous alternative used when Preset is
// empty. Zero-valued fields take the planner defaults.
type PlanRequest struct {
	AspectRatio string  `json:"aspect_ratio"`
	Preset      string  `json:"preset,omitempty"`
	Megapixels  float64 `json:"megapixels,omitempty"`
	UpscaleBy   float64 `json:"upscale_by,omitempty"`
	ModelType   string  `json:"model_type,omitempty"`
	BatchSize   int     `json:"batch_size,omitempty"`
}

// TilePlan mirrors the planner's tiling hints for the upscaled output.
type TilePlan struct {
	Cols           int `json:"cols"`
	Rows           int `json:"rows"`
	TileWidth      int `json:"tile_width"`
	TileHeight     int `json:"tile_height"`
	UpscaledWidth  int `json:"upscaled_width"`
	UpscaledHeight int `json:"upscaled_height"`
}

// PlanResponse carries the solved plan. LatentShape is NCHW.
type PlanResponse struct {
	ModelType      string    `json:"model_type"`
	Width          int       `json:"width"`
	Height         int       `json:"height"`
	LatentShape    []int64   `json:"latent_shape"`
	LatentChannels int       `json:"latent_channels"`
	Elements       int64     `json:"elements"`
	UpscaleBy      float64   `json:"upscale_by"`
	Tiles          *TilePlan `json:"tiles"`
}

// ModelInfo describes one supported model family.
type ModelInfo struct {
	Name     string `json:"name"`
	Channels int    `json:"channels"`
	Stride   int    `json:"stride"`
}

type ListModelsRequest struct{}

type ListModelsResponse struct {
	Models []*ModelInfo `json:"models"`
}

// SweepRequest asks for one plan per size preset, smallest area first.
type SweepRequest struct {
	AspectRatio string  `json:"aspect_ratio"`
	ModelType   string  `json:"model_type,omitempty"`
	UpscaleBy   float64 `json:"upscale_by,omitempty"`
	BatchSize   int     `json:"batch_size,omitempty"`
}

// SweepEvent is one preset's plan within a sweep stream.
type SweepEvent struct {
	Preset string        `json:"preset"`
	Area   int64         `json:"area"`
	Plan   *PlanResponse `json:"plan"`
}

type HealthRequest struct{}

type HealthResponse struct {
	Status string `json:"status"`
}
