package latent

import "math"

// minEdge is the smallest pixel edge a solved base image may have.
const minEdge = 64

// roundToMultiple rounds v to the nearest multiple of m, with ties going to
// the even multiple (1440 snaps to 1408 on a 64 stride, not 1472). A
// non-positive m disables snapping and plain-rounds instead.
func roundToMultiple(v float64, m int) int {
	if m <= 0 {
		return int(math.RoundToEven(v))
	}
	return int(math.RoundToEven(v/float64(m))) * m
}

// solveDimensions computes base pixel width/height for the requested aspect
// ratio and target area under the model's rounding rules. The aspect ratio is
// preserved as closely as snapping to the stride allows; both edges are
// clamped to minEdge afterwards.
func solveDimensions(aspect Aspect, area float64, model Model) (width, height int) {
	pol := policies[model]
	ratio := aspect.Ratio()

	w := math.Sqrt(area * ratio)
	h := w / ratio

	width = roundToMultiple(w, pol.stride)
	height = roundToMultiple(h, pol.stride)

	if pol.rescale {
		width, height = rescaleToBaseArea(width, height, pol.stride)
	}

	if width < minEdge {
		width = minEdge
	}
	if height < minEdge {
		height = minEdge
	}
	return width, height
}

// rescaleToBaseArea pulls rounded dimensions back toward the 1MP area SD3 was
// trained around, truncates, and re-snaps to the stride. A degenerate zero
// area skips the rescale.
func rescaleToBaseArea(width, height, stride int) (int, int) {
	area := width * height
	if area <= 0 {
		return width, height
	}
	scale := math.Sqrt(float64(mpBaseArea) / float64(area))
	width = roundToMultiple(math.Trunc(float64(width)*scale), stride)
	height = roundToMultiple(math.Trunc(float64(height)*scale), stride)
	return width, height
}
