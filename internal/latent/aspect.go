package latent

import (
	"fmt"
	"strconv"
	"strings"
)

// Aspect is a width:height ratio parsed from its "w:h" text form.
type Aspect struct {
	W int
	H int
}

// Ratio returns the width/height multiplier.
func (a Aspect) Ratio() float64 {
	return float64(a.W) / float64(a.H)
}

func (a Aspect) String() string {
	return fmt.Sprintf("%d:%d", a.W, a.H)
}

// ParseAspect parses an aspect ratio in "w:h" form (e.g. "1:1", "16:9").
// Both components must be positive integers.
func ParseAspect(raw string) (Aspect, error) {
	left, right, ok := strings.Cut(raw, ":")
	if !ok {
		return Aspect{}, fmt.Errorf("invalid aspect ratio %q: expected \"w:h\"", raw)
	}
	w, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return Aspect{}, fmt.Errorf("invalid aspect ratio %q: width is not an integer", raw)
	}
	h, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return Aspect{}, fmt.Errorf("invalid aspect ratio %q: height is not an integer", raw)
	}
	if w <= 0 || h <= 0 {
		return Aspect{}, fmt.Errorf("invalid aspect ratio %q: components must be positive", raw)
	}
	return Aspect{W: w, H: h}, nil
}
