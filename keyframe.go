package deckmorph

import (
	"fmt"
	"math"
)

// KeyframeCount is the number of keyframe slots. The engine animates between
// exactly these; there is no dynamic keyframe list.
const KeyframeCount = 3

// defaultDuration is the transition duration in milliseconds used until a
// per-pair override is looked up.
const defaultDuration = 1000.0

// minDuration is the smallest accepted transition duration in milliseconds.
const minDuration = 100.0

// dimEpsilon is the floor applied to non-positive or NaN dimensions so a bad
// configuration edit can never crash the engine mid-animation.
const dimEpsilon = 1e-3

// CameraPose is a camera orientation: uniform zoom plus per-axis rotation
// in degrees.
type CameraPose struct {
	Zoom float64
	RotX float64
	RotY float64
	RotZ float64
}

// lerpPose interpolates every pose component independently.
func lerpPose(a, b CameraPose, t float64) CameraPose {
	return CameraPose{
		Zoom: lerp(a.Zoom, b.Zoom, t),
		RotX: lerp(a.RotX, b.RotX, t),
		RotY: lerp(a.RotY, b.RotY, t),
		RotZ: lerp(a.RotZ, b.RotZ, t),
	}
}

// GroupSpec describes one group of a grouped-stack keyframe: the share of the
// total card count it receives and its stroke color. Percentages need not sum
// to 100; rounding is per-group.
type GroupSpec struct {
	Percent float64
	Stroke  Color
}

// KeyframeConfig fully describes one keyframe: how cards are laid out and
// where the camera sits. Three of these live in the Store for the process
// lifetime and are mutated in place by configuration edits.
type KeyframeConfig struct {
	Kind          LayoutKind
	CardCount     int
	CardWidth     float64
	CardHeight    float64
	CardThickness float64
	Spacing       float64

	// Stroke is the card edge color for RandomStack and Wheel layouts.
	// GroupedStack cards take their color from Groups instead.
	Stroke Color

	// Groups is required for LayoutGroupedStack and ignored otherwise.
	Groups       []GroupSpec
	GroupSpacing float64

	Camera CameraPose
}

// sanitize clamps invalid numeric fields in place. Dimensions and spacing
// floor to dimEpsilon, the card count floors to zero, and the camera zoom
// floors to dimEpsilon. NaN counts as invalid everywhere.
func (c *KeyframeConfig) sanitize() {
	c.CardWidth = safeDim(c.CardWidth)
	c.CardHeight = safeDim(c.CardHeight)
	c.CardThickness = safeDim(c.CardThickness)
	c.Spacing = safeDim(c.Spacing)
	if c.GroupSpacing < 0 || math.IsNaN(c.GroupSpacing) {
		c.GroupSpacing = 0
	}
	if c.CardCount < 0 {
		c.CardCount = 0
	}
	c.Camera.Zoom = safeDim(c.Camera.Zoom)
	if math.IsNaN(c.Camera.RotX) {
		c.Camera.RotX = 0
	}
	if math.IsNaN(c.Camera.RotY) {
		c.Camera.RotY = 0
	}
	if math.IsNaN(c.Camera.RotZ) {
		c.Camera.RotZ = 0
	}
	for i := range c.Groups {
		if c.Groups[i].Percent < 0 || math.IsNaN(c.Groups[i].Percent) {
			c.Groups[i].Percent = 0
		}
	}
}

// safeDim floors a dimension to dimEpsilon when it is non-positive or NaN.
func safeDim(v float64) float64 {
	if v < dimEpsilon || math.IsNaN(v) {
		return dimEpsilon
	}
	return v
}

// Store holds the three keyframe configurations and the per-transition
// duration overrides. It is read by the driver every tick and mutated by the
// configuration surface; all access happens on the tick goroutine.
type Store struct {
	keyframes [KeyframeCount]KeyframeConfig

	// durations maps an ordered "from-to" pair to a duration in
	// milliseconds. Missing pairs fall back to the last duration used.
	durations    map[string]float64
	lastDuration float64

	// version increments on every edit so idle render state knows to
	// regenerate.
	version uint64
}

// NewStore creates a store seeded with the given keyframes.
func NewStore(keyframes [KeyframeCount]KeyframeConfig) *Store {
	s := &Store{
		durations:    make(map[string]float64),
		lastDuration: defaultDuration,
	}
	for i := range keyframes {
		keyframes[i].sanitize()
		s.keyframes[i] = keyframes[i]
	}
	return s
}

// Keyframe returns a pointer to keyframe slot i. Callers that mutate the
// config directly must call Touch afterwards; prefer Edit.
func (s *Store) Keyframe(i int) *KeyframeConfig {
	return &s.keyframes[i]
}

// Edit applies fn to keyframe slot i, then re-clamps the config and bumps
// the store version.
func (s *Store) Edit(i int, fn func(*KeyframeConfig)) {
	fn(&s.keyframes[i])
	s.keyframes[i].sanitize()
	s.version++
}

// Touch bumps the store version after a direct mutation through Keyframe.
func (s *Store) Touch() {
	s.keyframes[0].sanitize()
	s.keyframes[1].sanitize()
	s.keyframes[2].sanitize()
	s.version++
}

// Version returns the current edit counter.
func (s *Store) Version() uint64 {
	return s.version
}

// SetDuration sets the duration override in milliseconds for the ordered
// transition from → to. Values below the 100 ms floor are raised to it.
func (s *Store) SetDuration(from, to int, ms float64) {
	if ms < minDuration || math.IsNaN(ms) {
		ms = minDuration
	}
	s.durations[durationKey(from, to)] = ms
}

// DurationFor returns the duration in milliseconds for the ordered
// transition from → to. A missing override falls back to the last duration
// used, which starts at the 1000 ms default.
func (s *Store) DurationFor(from, to int) float64 {
	if d, ok := s.durations[durationKey(from, to)]; ok {
		s.lastDuration = d
		return d
	}
	return s.lastDuration
}

func durationKey(from, to int) string {
	return fmt.Sprintf("%d-%d", from, to)
}

// DefaultKeyframes returns the standard three-slot setup: a random stack, a
// grouped stack of four colored groups, and the wheel.
func DefaultKeyframes() [KeyframeCount]KeyframeConfig {
	return [KeyframeCount]KeyframeConfig{
		{
			Kind:          LayoutRandomStack,
			CardCount:     32,
			CardWidth:     0.05,
			CardHeight:    1.0,
			CardThickness: 0.7,
			Spacing:       0.09,
			Stroke:        ColorWhite,
			Camera:        CameraPose{Zoom: 1, RotX: 18, RotY: -24},
		},
		{
			Kind:          LayoutGroupedStack,
			CardCount:     32,
			CardWidth:     0.05,
			CardHeight:    0.8,
			CardThickness: 0.7,
			Spacing:       0.09,
			Stroke:        ColorWhite,
			Groups: []GroupSpec{
				{Percent: 30, Stroke: Color{R: 1, G: 0.42, B: 0.42, A: 1}},
				{Percent: 25, Stroke: Color{R: 0.42, G: 0.78, B: 1, A: 1}},
				{Percent: 25, Stroke: Color{R: 0.55, G: 1, B: 0.55, A: 1}},
				{Percent: 20, Stroke: Color{R: 1, G: 0.85, B: 0.45, A: 1}},
			},
			GroupSpacing: 0.35,
			Camera:       CameraPose{Zoom: 1, RotX: 22, RotY: -12},
		},
		{
			Kind:          LayoutWheel,
			CardCount:     14,
			CardWidth:     0.05,
			CardHeight:    0.9,
			CardThickness: 0.7,
			Spacing:       0.09,
			Stroke:        Color{R: 0.95, G: 0.95, B: 1, A: 1},
			Camera:        CameraPose{Zoom: 0.85, RotX: 30, RotY: 0},
		},
	}
}
