package state

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strconv"
)

const maxColor = 0xFFFFFF

// RandomColor draws uniformly from the 24-bit RGB space. A nil source uses
// the global generator.
func RandomColor(r *rand.Rand) string {
	var v uint32
	if r == nil {
		v = rand.Uint32N(maxColor + 1)
	} else {
		v = r.Uint32N(maxColor + 1)
	}
	return FormatColor(v)
}

func FormatColor(v uint32) string {
	return fmt.Sprintf("#%06x", v&maxColor)
}

// ParseColor accepts "#rrggbb" and returns an opaque colour.
func ParseColor(hex string) (color.NRGBA, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", hex, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
