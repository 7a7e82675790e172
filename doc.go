// Package deckmorph is an interactive keyframe-based 3D card-animation
// engine for [Ebitengine].
//
// Deckmorph holds three keyframes, each describing a card layout (random
// stack, grouped stack, circular wheel) and a camera pose, and animates
// smooth transitions between them: matched cards interpolate, surplus cards
// spawn in a staggered cascade or shrink away, and the grouped-stack →
// wheel transition duplicates the selected group's cards out of a common
// anchor so the wheel fills regardless of group size.
//
// # Quick start
//
// Create a [Scene] and drive it from an [ebiten.Game]:
//
//	scene := deckmorph.NewScene(deckmorph.DefaultKeyframes(), 960, 600)
//
//	type Game struct{ scene *deckmorph.Scene }
//
//	func (g *Game) Update() error             { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)      { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return 960, 600 }
//
// Arrow keys and space move between keyframes, digit keys jump, and while
// the grouped stack is shown, hovering lifts a group and clicking fans it
// out into the wheel.
//
// # Engine layering
//
// The core is headless and deterministic: a [Generator] turns a
// [KeyframeConfig] into card placements, [Interpolate] blends two layouts
// at a progress value into drawable [RenderCard]s, and a [Driver] owns the
// state machine, event queue, and hover selection. [Scene] and [Renderer]
// adapt that core to Ebitengine; everything below them is plain math and
// can be exercised in tests without a display.
//
// Keyframe sets can also be loaded from and saved to YAML, see
// [LoadKeyframes].
//
// [Ebitengine]: https://ebitengine.org
package deckmorph
