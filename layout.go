package deckmorph

import (
	"math"
	"math/rand/v2"
)

// NoGroup marks a card that belongs to no group. Such cards are never
// hoverable and never feed the wheel.
const NoGroup = -1

// NoSlot marks a card with no wheel-slot identity.
const NoSlot = -1

// wheelRadius is the fixed radius of the wheel layout in world units.
const wheelRadius = 2.0

// randomHeightMin and randomHeightMax bound the per-card height scale of the
// random-stack layout. The base height is half the configured card height.
const (
	randomHeightMin = 0.8
	randomHeightMax = 1.4
)

// CardPlacement is one card position produced by a layout generation call.
// Placements are ephemeral: the interpolation engine consumes them the same
// tick they are produced.
type CardPlacement struct {
	Position Vec3
	Rotation Vec3 // per-axis radians
	Size     Vec3 // width, height, thickness
	Stroke   Color

	// Group is the owning group index, or NoGroup.
	Group int
	// WheelSlot is the card's stable identity across the grouped→wheel
	// transition, or NoSlot.
	WheelSlot int
}

// heightCache holds the random per-card height scales for one keyframe slot.
// Scales are sampled once per card count; changing the count resamples.
type heightCache struct {
	count  int
	scales []float64
}

// Generator produces card placements from keyframe configurations. It owns
// the cached random height scales of random-stack layouts, keyed per config
// pointer, so repeated generation at a fixed card count is deterministic.
//
// Generator is not safe for concurrent use; the engine calls it only from
// the tick path.
type Generator struct {
	rng     *rand.Rand
	heights map[*KeyframeConfig]*heightCache
}

// NewGenerator creates a generator with its own random source.
func NewGenerator() *Generator {
	return &Generator{
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		heights: make(map[*KeyframeConfig]*heightCache),
	}
}

// Generate produces the placement list for cfg. The result always has
// exactly cfg.CardCount entries; a non-positive count yields an empty list.
// selectedGroup names the group whose cards receive wheel-slot indices in
// the grouped-stack layout and the group tag of wheel cards.
func (g *Generator) Generate(cfg *KeyframeConfig, selectedGroup int) []CardPlacement {
	if cfg.CardCount <= 0 {
		return nil
	}
	switch cfg.Kind {
	case LayoutGroupedStack:
		return g.generateGrouped(cfg, selectedGroup)
	case LayoutWheel:
		return g.generateWheel(cfg, selectedGroup)
	default:
		return g.generateRandom(cfg)
	}
}

// heightScales returns the cached random scales for cfg, resampling when the
// card count changed since the last generation.
func (g *Generator) heightScales(cfg *KeyframeConfig) []float64 {
	c := g.heights[cfg]
	if c != nil && c.count == cfg.CardCount {
		return c.scales
	}
	scales := make([]float64, cfg.CardCount)
	for i := range scales {
		scales[i] = randomHeightMin + g.rng.Float64()*(randomHeightMax-randomHeightMin)
	}
	g.heights[cfg] = &heightCache{count: cfg.CardCount, scales: scales}
	return scales
}

func (g *Generator) generateRandom(cfg *KeyframeConfig) []CardPlacement {
	n := cfg.CardCount
	scales := g.heightScales(cfg)
	baseHeight := cfg.CardHeight * 0.5

	cards := make([]CardPlacement, n)
	for i := range cards {
		h := baseHeight * scales[i]
		x := (float64(i) - float64(n-1)/2) * cfg.Spacing
		cards[i] = CardPlacement{
			Position:  Vec3{X: x, Y: -h / 2},
			Size:      Vec3{X: cfg.CardWidth, Y: h, Z: cfg.CardThickness},
			Stroke:    cfg.Stroke,
			Group:     NoGroup,
			WheelSlot: NoSlot,
		}
	}
	return cards
}

func (g *Generator) generateGrouped(cfg *KeyframeConfig, selectedGroup int) []CardPlacement {
	n := cfg.CardCount
	cards := make([]CardPlacement, 0, n)

	// Per-group counts round independently; the total is capped at the
	// card count and any shortfall lands in the last group so the result
	// is always exactly n cards.
	counts := make([]int, len(cfg.Groups))
	placed := 0
	for gi, spec := range cfg.Groups {
		c := int(math.Round(spec.Percent / 100 * float64(n)))
		if placed+c > n {
			c = n - placed
		}
		counts[gi] = c
		placed += c
	}
	if len(counts) > 0 && placed < n {
		counts[len(counts)-1] += n - placed
	}

	h := cfg.CardHeight
	x := 0.0
	for gi, count := range counts {
		if gi > 0 {
			x += cfg.GroupSpacing
		}
		slot := 0
		for i := 0; i < count; i++ {
			card := CardPlacement{
				Position:  Vec3{X: x, Y: -h / 2},
				Size:      Vec3{X: cfg.CardWidth, Y: h, Z: cfg.CardThickness},
				Stroke:    cfg.Groups[gi].Stroke,
				Group:     gi,
				WheelSlot: NoSlot,
			}
			if gi == selectedGroup {
				card.WheelSlot = slot
				slot++
			}
			cards = append(cards, card)
			x += cfg.Spacing
		}
	}

	// Center the whole row on the origin. The loop above left x one
	// spacing past the last card.
	span := x - cfg.Spacing
	for i := range cards {
		cards[i].Position.X -= span / 2
	}
	return cards
}

func (g *Generator) generateWheel(cfg *KeyframeConfig, selectedGroup int) []CardPlacement {
	n := cfg.CardCount
	h := cfg.CardHeight

	cards := make([]CardPlacement, n)
	for i := range cards {
		angle := (float64(i) + 0.5) / float64(n) * 2 * math.Pi
		cards[i] = CardPlacement{
			Position: Vec3{
				X: wheelRadius * math.Sin(angle),
				Y: -h / 2,
				Z: wheelRadius * math.Cos(angle),
			},
			Rotation:  Vec3{Y: -angle + math.Pi},
			Size:      Vec3{X: cfg.CardWidth, Y: h, Z: cfg.CardThickness},
			Stroke:    cfg.Stroke,
			Group:     selectedGroup,
			WheelSlot: i,
		}
	}
	return cards
}
