package deckmorph

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Scene is the top-level object that owns the keyframe store, the animation
// driver, the camera, and the renderer, and translates raw ebiten input into
// driver events. Use it directly from an ebiten.Game:
//
//	func (g *Game) Update() error        { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.scene.Draw(s) }
type Scene struct {
	store    *Store
	driver   *Driver
	camera   *Camera
	renderer *Renderer

	testRunner  *TestRunner
	injectQueue []Event

	debug     bool
	mouseDown bool
	keysDown  map[ebiten.Key]bool

	// clock supplies the tick timestamp; overridable in tests.
	clock func() time.Time
}

// NewScene creates a scene over the given keyframes with a canvas of the
// given pixel size.
func NewScene(keyframes [KeyframeCount]KeyframeConfig, width, height int) *Scene {
	store := NewStore(keyframes)
	return &Scene{
		store:    store,
		driver:   NewDriver(store),
		camera:   NewCamera(store.Keyframe(0).Camera),
		renderer: NewRenderer(width, height),
		keysDown: make(map[ebiten.Key]bool),
		clock:    time.Now,
	}
}

// Store returns the keyframe store for configuration edits.
func (s *Scene) Store() *Store { return s.store }

// Driver returns the animation driver.
func (s *Scene) Driver() *Driver { return s.driver }

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera { return s.camera }

// SetDebugMode toggles per-frame stats on stderr and the debug overlay.
func (s *Scene) SetDebugMode(enabled bool) { s.debug = enabled }

// Update processes input, drains injected events, and advances the driver
// and camera by one tick.
func (s *Scene) Update() {
	now := s.clock()
	dt := float32(1.0 / float64(ebiten.TPS()))

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	for _, ev := range s.injectQueue {
		s.driver.Enqueue(ev)
	}
	s.injectQueue = s.injectQueue[:0]

	s.processInput()

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.driver.SetViewPose(s.camera.Pose)
	s.driver.Tick(now)
	if s.debug {
		debugLogTick(time.Since(t0), s.driver)
	}

	s.camera.Update(dt, s.driver.State().Camera, s.driver.Animating())
}

// Draw renders the current state onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	state := s.driver.State()
	state.Camera = s.camera.Pose
	s.renderer.Draw(screen, state)
	if s.debug {
		drawDebugOverlay(screen, s.driver)
	}
}

// processInput translates mouse and keyboard state into driver events.
// Right/space/tab advances, left goes back, digits jump, the pointer feeds
// hover picking.
func (s *Scene) processInput() {
	px, py := ebiten.CursorPosition()
	vx, vy := s.renderer.viewPointer(float64(px), float64(py))
	s.driver.Enqueue(Event{Kind: EventPointerMove, X: vx, Y: vy})

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	if down && !s.mouseDown {
		s.driver.Enqueue(Event{Kind: EventClick, X: vx, Y: vy})
	}
	s.mouseDown = down

	if s.keyJustPressed(ebiten.KeyArrowRight) || s.keyJustPressed(ebiten.KeySpace) ||
		s.keyJustPressed(ebiten.KeyTab) {
		s.driver.Enqueue(Event{Kind: EventAdvance})
	}
	if s.keyJustPressed(ebiten.KeyArrowLeft) {
		s.driver.Enqueue(Event{Kind: EventBack})
	}
	for i := 0; i < KeyframeCount; i++ {
		if s.keyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			s.JumpTo(i)
		}
	}
}

// keyJustPressed edge-detects a key using the scene's own state map.
func (s *Scene) keyJustPressed(k ebiten.Key) bool {
	down := ebiten.IsKeyPressed(k)
	was := s.keysDown[k]
	s.keysDown[k] = down
	return down && !was
}

// JumpTo displays keyframe i immediately while the camera glides to its
// pose instead of snapping.
func (s *Scene) JumpTo(i int) {
	if i < 0 || i >= KeyframeCount {
		return
	}
	s.injectQueue = append(s.injectQueue, Event{Kind: EventJump, Target: i})
	s.camera.SwingTo(s.store.Keyframe(i).Camera, 0.6, ease.InOutCubic)
}
