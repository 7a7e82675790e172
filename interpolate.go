package deckmorph

import (
	"github.com/tanema/gween/ease"
)

// Interpolation constants.
const (
	// spawnStagger delays each successive spawning card to produce a
	// cascading appearance. The first spawning card starts at zero.
	spawnStagger = 0.1
	// spawnFraction is the share of the transition one generic spawn
	// takes. Delays are capped so every spawn still completes by the end.
	spawnFraction = 0.6
	// spawnWindow is the share of the grouped→wheel transition across
	// which duplicate spawns are staggered; each duplicate then grows
	// over dupSpawnFraction of the transition.
	spawnWindow      = 0.7
	dupSpawnFraction = 0.3
	// colorHold is the progress threshold below which a card keeps its
	// source color; past it the color blends linearly to the destination
	// over the remaining fraction.
	colorHold = 0.85
	// collapseSpeed accelerates the dismissal of non-selected cards
	// during the grouped→wheel transition.
	collapseSpeed = 3.0
)

// progressCurve is the easing applied wherever progress must feel
// non-linear.
var progressCurve ease.TweenFunc = ease.InOutCubic

// easeProgress remaps normalized progress through the cubic in-out curve.
func easeProgress(p float64) float64 {
	return float64(progressCurve(float32(p), 0, 1, 1))
}

// fadeOutQuad is the quadratic ease-out fade used by collapsing cards.
func fadeOutQuad(p float64) float64 {
	r := 1 - p
	return r * r
}

// RenderCard is the interpolated, drawable unit. Aliveness in [0, 1] drives
// opacity and existence during spawn and despawn; Group is NoGroup for cards
// that must not be treated as hoverable.
type RenderCard struct {
	Position  Vec3
	Rotation  Vec3
	Size      Vec3
	Stroke    Color
	Group     int
	Aliveness float64
}

// Interpolate produces the render state between two keyframes at the given
// raw progress in [0, 1]. The result is indexed by destination wheel-slot
// when the transition is grouped-stack → wheel, and by card index otherwise;
// callers must keep that identity stable across frames or restarts snap.
func Interpolate(gen *Generator, from, to *KeyframeConfig, selectedGroup int, progress float64) []RenderCard {
	progress = clamp01(progress)
	if from.Kind == LayoutGroupedStack && to.Kind == LayoutWheel {
		return interpolateGroupedToWheel(gen, from, to, selectedGroup, progress)
	}
	return interpolateGeneric(gen, from, to, selectedGroup, progress)
}

// blendStroke holds the source color until progress exceeds colorHold, then
// blends linearly to the destination over the remaining fraction.
func blendStroke(src, dst Color, progress float64) Color {
	if progress <= colorHold {
		return src
	}
	t := clamp01((progress - colorHold) / (1 - colorHold))
	return lerpColor(src, dst, t)
}

// interpolateGeneric handles every transition except grouped-stack → wheel:
// matched cards interpolate on eased progress, surplus destination cards
// spawn with a staggered cascade, surplus source cards shrink and fade.
func interpolateGeneric(gen *Generator, from, to *KeyframeConfig, selectedGroup int, progress float64) []RenderCard {
	src := gen.Generate(from, selectedGroup)
	dst := gen.Generate(to, selectedGroup)

	n := len(src)
	if len(dst) > n {
		n = len(dst)
	}
	eased := easeProgress(progress)

	// Cards spawning out of a grouped stack emerge from the selected
	// group's centroid instead of growing in place.
	var spawnOrigin *Vec3
	if from.Kind == LayoutGroupedStack {
		if c, ok := groupCentroid(src, selectedGroup); ok {
			spawnOrigin = &c
		}
	}

	cards := make([]RenderCard, 0, n)
	spawnIndex := 0
	for i := 0; i < n; i++ {
		switch {
		case i >= len(src):
			d := dst[i]
			delay := float64(spawnIndex) * spawnStagger
			spawnIndex++
			if delay > 1-spawnFraction {
				delay = 1 - spawnFraction
			}
			lp := easeProgress(clamp01((progress - delay) / spawnFraction))

			start := d.Position
			if spawnOrigin != nil {
				start = *spawnOrigin
			}
			cards = append(cards, RenderCard{
				Position:  lerpVec3(start, d.Position, lp),
				Rotation:  d.Rotation,
				Size:      d.Size.scale(lp),
				Stroke:    d.Stroke,
				Group:     d.Group,
				Aliveness: lp,
			})

		case i >= len(dst):
			s := src[i]
			cards = append(cards, RenderCard{
				Position:  s.Position,
				Rotation:  s.Rotation,
				Size:      s.Size.scale(1 - progress),
				Stroke:    s.Stroke,
				Group:     NoGroup,
				Aliveness: 1 - progress,
			})

		default:
			s, d := src[i], dst[i]
			cards = append(cards, RenderCard{
				Position:  lerpVec3(s.Position, d.Position, eased),
				Rotation:  lerpVec3(s.Rotation, d.Rotation, eased),
				Size:      lerpVec3(s.Size, d.Size, eased),
				Stroke:    blendStroke(s.Stroke, d.Stroke, progress),
				Group:     d.Group,
				Aliveness: 1,
			})
		}
	}
	return cards
}

// interpolateGroupedToWheel handles the special transition: selected-group
// cards fly to their wheel slots, missing slots are filled by duplicates
// spawned from the group centroid, and everything else collapses in place.
// The first len(dst) entries of the result are indexed by wheel slot.
func interpolateGroupedToWheel(gen *Generator, from, to *KeyframeConfig, selectedGroup int, progress float64) []RenderCard {
	src := gen.Generate(from, selectedGroup)
	dst := gen.Generate(to, selectedGroup)
	m := len(dst)

	anchor, _ := groupCentroid(src, selectedGroup)

	// Map destination wheel slots to their originating source cards.
	// Slots left unmapped become duplicates spawned from the anchor.
	mapping := make([]int, m)
	for i := range mapping {
		mapping[i] = NoSlot
	}
	consumed := make([]bool, len(src))
	for si, s := range src {
		if s.Group == selectedGroup && s.WheelSlot >= 0 && s.WheelSlot < m {
			mapping[s.WheelSlot] = si
			consumed[si] = true
		}
	}
	dupCount := 0
	for _, si := range mapping {
		if si == NoSlot {
			dupCount++
		}
	}

	groupStroke := to.Stroke
	if selectedGroup >= 0 && selectedGroup < len(from.Groups) {
		groupStroke = from.Groups[selectedGroup].Stroke
	}

	eased := easeProgress(progress)
	cards := make([]RenderCard, 0, m+len(src))

	dupIndex := 0
	for slot := 0; slot < m; slot++ {
		d := dst[slot]
		if si := mapping[slot]; si != NoSlot {
			s := src[si]
			cards = append(cards, RenderCard{
				Position:  lerpVec3(s.Position, d.Position, eased),
				Rotation:  lerpVec3(s.Rotation, d.Rotation, eased),
				Size:      lerpVec3(s.Size, d.Size, eased),
				Stroke:    blendStroke(s.Stroke, d.Stroke, progress),
				Group:     d.Group,
				Aliveness: 1,
			})
			continue
		}

		// Duplicate: staggered across the spawn window by ascending
		// slot order, each with a fixed spawn duration, growing from
		// the anchor with zero rotation and size.
		start := float64(dupIndex) * (spawnWindow / float64(dupCount))
		dupIndex++
		lp := easeProgress(clamp01((progress - start) / dupSpawnFraction))

		cards = append(cards, RenderCard{
			Position:  lerpVec3(anchor, d.Position, lp),
			Rotation:  d.Rotation.scale(lp),
			Size:      d.Size.scale(lp),
			Stroke:    blendStroke(groupStroke, d.Stroke, progress),
			Group:     d.Group,
			Aliveness: lp,
		})
	}

	// Source cards not feeding the wheel collapse independently on a
	// faster local timeline with a snappier quadratic fade.
	for si, s := range src {
		if consumed[si] {
			continue
		}
		cs := clamp01(progress * collapseSpeed)
		cards = append(cards, RenderCard{
			Position:  s.Position,
			Rotation:  s.Rotation,
			Size:      s.Size.scale(1 - cs),
			Stroke:    s.Stroke,
			Group:     NoGroup,
			Aliveness: fadeOutQuad(cs),
		})
	}
	return cards
}

// groupCentroid returns the centroid of the cards belonging to group, and
// whether the group has any cards at all.
func groupCentroid(cards []CardPlacement, group int) (Vec3, bool) {
	var sum Vec3
	count := 0
	for _, c := range cards {
		if c.Group == group {
			sum = sum.add(c.Position)
			count++
		}
	}
	if count == 0 {
		return Vec3{}, false
	}
	return sum.scale(1 / float64(count)), true
}
