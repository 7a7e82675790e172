package deckmorph

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default card stroke when a keyframe supplies none.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a standard library color, clamping components to [0, 1].
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// scaled returns the color faded by a, premultiplied so the result converts
// directly to a color.RGBA.
func (c Color) scaled(a float64) Color {
	return Color{R: c.R * a, G: c.G * a, B: c.B * a, A: c.A * a}
}

// LayoutKind selects how a keyframe arranges its cards.
type LayoutKind uint8

const (
	LayoutRandomStack  LayoutKind = iota // one row, randomized per-card heights
	LayoutGroupedStack                   // consecutive colored groups with gaps
	LayoutWheel                          // fixed-radius circle in the XZ plane
)

// String returns the config-file name of the layout kind.
func (k LayoutKind) String() string {
	switch k {
	case LayoutRandomStack:
		return "random-stack"
	case LayoutGroupedStack:
		return "grouped-stack"
	case LayoutWheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// parseLayoutKind maps a config-file name back to a LayoutKind.
func parseLayoutKind(s string) (LayoutKind, bool) {
	switch s {
	case "random-stack":
		return LayoutRandomStack, true
	case "grouped-stack":
		return LayoutGroupedStack, true
	case "wheel":
		return LayoutWheel, true
	}
	return 0, false
}

// EventKind identifies a driver input event. Input sources queue events;
// the driver drains the queue synchronously at the top of each tick, so
// engine state is only ever mutated from the tick path.
type EventKind uint8

const (
	EventAdvance     EventKind = iota // go to the next keyframe
	EventBack                         // go to the previous keyframe
	EventJump                         // jump to keyframe Target immediately
	EventPointerMove                  // pointer moved to screen (X, Y)
	EventClick                        // pointer clicked at screen (X, Y)
)

// Event is a single atomic driver input.
type Event struct {
	Kind   EventKind
	Target int     // keyframe index, EventJump only
	X, Y   float64 // screen coordinates, pointer events only
}

// lerp linearly interpolates between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// lerpColor interpolates each component independently.
func lerpColor(a, b Color, t float64) Color {
	return Color{
		R: lerp(a.R, b.R, t),
		G: lerp(a.G, b.G, t),
		B: lerp(a.B, b.B, t),
		A: lerp(a.A, b.A, t),
	}
}

// clamp01 clamps v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
