package indicator

import (
	"image/color"

	"golang.org/x/exp/constraints"
)

// hsv converts hue (degrees, [0,360)), saturation and value ([0,1]) to an
// RGBA pixel for the strip.
func hsv(h, s, v float64) color.RGBA {
	c := v * s
	x := c * (1 - abs(mod2(h/60)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.RGBA{
		R: uint8((r + m) * 255),
		G: uint8((g + m) * 255),
		B: uint8((b + m) * 255),
	}
}

// mod2 is x mod 2 for non-negative x, without pulling in math.Mod.
func mod2(x float64) float64 {
	for x >= 2 {
		x -= 2
	}
	return x
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// mapRange maps a value from one range to another.
func mapRange[T constraints.Float](value, fromMin, fromMax, toMin, toMax T) T {
	return (value-fromMin)/(fromMax-fromMin)*(toMax-toMin) + toMin
}
