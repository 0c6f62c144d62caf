// Package contrast picks a legible text color for an arbitrary background.
//
// Classify accepts "#RRGGBB" (case-insensitive). Relative luminance is
// computed as 0.2126·R + 0.7152·G + 0.0722·B over channels scaled to [0,1];
// backgrounds brighter than 0.5 get black text, everything else white.
// Malformed input never fails the caller: it yields White and a warning.
package contrast

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/dmitrijs2005/semant/internal/logging"
)

// Label is the foreground color chosen for a background.
type Label string

const (
	Black Label = "black"
	White Label = "white"
)

// Fallback is returned for invalid input and on any internal failure.
const Fallback = White

// Threshold is the luminance above which text switches to Black.
const Threshold = 0.5

// Hex returns the label as a #RRGGBB string.
func (l Label) Hex() string {
	if l == Black {
		return "#000000"
	}
	return "#FFFFFF"
}

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// decodeRGB is a test seam for the channel decoder.
var decodeRGB = parseRGB

// Classifier reports diagnostics through its logger.
type Classifier struct {
	log logging.Logger
}

func New(log logging.Logger) *Classifier {
	return &Classifier{log: log.With("component", "contrast")}
}

// Classify returns the text label for background color. It is total: any
// input, valid or not, produces a label.
func (c *Classifier) Classify(ctx context.Context, color string) (label Label) {
	defer func() {
		if p := recover(); p != nil {
			c.log.Error(ctx, "contrast classification failed, using fallback", "color", color, "panic", p)
			label = Fallback
		}
	}()

	if !hexColor.MatchString(color) {
		c.log.Warn(ctx, "invalid color format, using fallback", "color", color, "fallback", Fallback)
		return Fallback
	}

	r, g, b, err := decodeRGB(color)
	if err != nil {
		c.log.Error(ctx, "color decode failed, using fallback", "color", color, "error", err)
		return Fallback
	}

	l := Luminance(r, g, b)
	label = labelFor(l)
	c.log.Debug(ctx, "luminance computed", "color", color, "luminance", l, "label", label)
	return label
}

// Luminance returns the relative luminance of an sRGB color in [0,1].
func Luminance(r, g, b uint8) float64 {
	return 0.2126*(float64(r)/255) + 0.7152*(float64(g)/255) + 0.0722*(float64(b)/255)
}

// labelFor maps a luminance to a label. Exactly Threshold resolves to White.
func labelFor(l float64) Label {
	if l > Threshold {
		return Black
	}
	return White
}

func parseRGB(color string) (r, g, b uint8, err error) {
	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(color[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("channel %d: %w", i, err)
		}
		ch[i] = uint8(v)
	}
	return ch[0], ch[1], ch[2], nil
}
