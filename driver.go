package deckmorph

import "time"

// RenderState is the per-frame output handed to the rendering collaborator:
// the fully resolved card sequence plus the camera pose that produced it.
// The slice is reused across ticks and must not be retained.
type RenderState struct {
	Cards  []RenderCard
	Camera CameraPose
}

// Driver owns all mutable engine state: the animation state machine, the
// selected group, hover state, and the committed render snapshot. It is the
// explicit engine-state struct; there are no package-level singletons.
//
// All methods must be called from the single tick goroutine.
type Driver struct {
	store *Store
	gen   *Generator

	// Animation state. running false implies current is displayed;
	// running true implies target != current and progress derives from
	// elapsed time over duration.
	current  int
	target   int
	running  bool
	start    time.Time
	duration float64 // milliseconds

	// selectedGroup names the group that feeds the wheel.
	selectedGroup int

	hover hoverState

	queue    []Event
	progress float64 // raw progress of the last animating tick

	// snapshot is the committed card state: the last interpolated frame
	// after a transition completes, or a fresh layout while idle. It is
	// retained verbatim on completion to preserve blended colors.
	snapshot    []RenderCard
	snapVersion uint64
	snapValid   bool

	// frame is the scratch buffer returned from State, rebuilt every
	// tick with the hover lift applied.
	frame []RenderCard
	pose  CameraPose

	// viewPose is the effective camera pose used for pointer picking,
	// set by the scene when it decorates the pose (idle orbit, swings).
	viewPose      CameraPose
	viewPoseValid bool
}

// NewDriver creates a driver over the given store, displaying keyframe 0.
func NewDriver(store *Store) *Driver {
	return &Driver{
		store:         store,
		gen:           NewGenerator(),
		selectedGroup: 0,
		hover:         newHoverState(),
	}
}

// Current returns the displayed (or transition-source) keyframe index.
func (d *Driver) Current() int { return d.current }

// Target returns the transition destination; equal to Current while idle.
func (d *Driver) Target() int { return d.target }

// Animating reports whether a transition is in flight.
func (d *Driver) Animating() bool { return d.running }

// Progress returns the raw progress of the last animating tick in [0, 1].
func (d *Driver) Progress() float64 { return d.progress }

// SelectedGroup returns the group designated as the wheel source.
func (d *Driver) SelectedGroup() int { return d.selectedGroup }

// SetSelectedGroup changes the wheel-source group and invalidates the idle
// snapshot so wheel-slot tags are reassigned.
func (d *Driver) SetSelectedGroup(group int) {
	d.selectedGroup = group
	d.snapValid = false
}

// SetViewPose tells the driver which camera pose the pointer is actually
// looking through, when the scene decorates the keyframe pose with an idle
// orbit or a swing.
func (d *Driver) SetViewPose(pose CameraPose) {
	d.viewPose = pose
	d.viewPoseValid = true
}

// HoveredGroup returns the group under the pointer, or NoGroup.
func (d *Driver) HoveredGroup() int { return d.hover.group }

// Enqueue appends an event for the next tick. Pointer coordinates must be
// in view space: screen pixels relative to the canvas center, divided by
// the projection scale (see Scene.viewPointer).
func (d *Driver) Enqueue(ev Event) {
	d.queue = append(d.queue, ev)
}

// RequestTransition starts animating toward the target keyframe. Requests
// while a transition is already in flight are ignored, as are requests for
// the displayed keyframe or an out-of-range index.
func (d *Driver) RequestTransition(target int, now time.Time) {
	if d.running || target == d.current || target < 0 || target >= KeyframeCount {
		return
	}
	d.target = target
	d.running = true
	d.start = now
	d.duration = d.store.DurationFor(d.current, target)
}

// Jump displays the target keyframe immediately, cancelling nothing: it is
// ignored mid-flight like any other transition request.
func (d *Driver) Jump(target int, now time.Time) {
	if d.running || target < 0 || target >= KeyframeCount {
		return
	}
	d.current = target
	d.target = target
	d.snapValid = false
}

// Tick drains queued events, advances the animation, refreshes hover state,
// and rebuilds the current render state for this frame.
func (d *Driver) Tick(now time.Time) {
	d.drainEvents(now)

	if d.running {
		raw := clamp01(now.Sub(d.start).Seconds() * 1000 / d.duration)
		d.progress = raw
		from := d.store.Keyframe(d.current)
		to := d.store.Keyframe(d.target)

		d.snapshot = Interpolate(d.gen, from, to, d.selectedGroup, raw)
		d.pose = lerpPose(from.Camera, to.Camera, easeProgress(raw))

		if raw >= 1 {
			// The final interpolated frame is authoritative: it is
			// retained verbatim so the exact blended colors survive
			// into the idle state.
			d.current = d.target
			d.running = false
			d.snapValid = true
			d.snapVersion = d.store.Version()
		}
	} else {
		cfg := d.store.Keyframe(d.current)
		if !d.snapValid || d.snapVersion != d.store.Version() {
			d.snapshot = placementsToRender(d.gen.Generate(cfg, d.selectedGroup))
			d.snapValid = true
			d.snapVersion = d.store.Version()
		}
		d.pose = cfg.Camera
	}

	d.updateHover()
	d.buildFrame()
}

// drainEvents consumes the queue accumulated since the last tick.
func (d *Driver) drainEvents(now time.Time) {
	for _, ev := range d.queue {
		switch ev.Kind {
		case EventAdvance:
			d.RequestTransition((d.current+1)%KeyframeCount, now)
		case EventBack:
			d.RequestTransition((d.current+KeyframeCount-1)%KeyframeCount, now)
		case EventJump:
			d.Jump(ev.Target, now)
		case EventPointerMove:
			d.hover.pointerX = ev.X
			d.hover.pointerY = ev.Y
		case EventClick:
			d.hover.pointerX = ev.X
			d.hover.pointerY = ev.Y
			d.handleClick(now)
		}
	}
	d.queue = d.queue[:0]
}

// handleClick commits the hovered group as the wheel source and kicks off
// the grouped→wheel transition.
func (d *Driver) handleClick(now time.Time) {
	if d.running || d.hover.group == NoGroup {
		return
	}
	d.selectedGroup = d.hover.group
	d.snapValid = false
	if wheel := d.wheelKeyframe(); wheel != NoGroup {
		d.RequestTransition(wheel, now)
	}
}

// wheelKeyframe returns the index of the first wheel keyframe, or NoGroup.
func (d *Driver) wheelKeyframe() int {
	for i := 0; i < KeyframeCount; i++ {
		if d.store.Keyframe(i).Kind == LayoutWheel {
			return i
		}
	}
	return NoGroup
}

// updateHover recomputes the hovered group and advances the lift smoothing.
// Picking is active only while idle on a grouped-stack keyframe; the lift
// keeps easing out after hover ends, and keeps easing in for the selected
// group while the grouped→wheel transition is in flight.
func (d *Driver) updateHover() {
	active := !d.running && d.store.Keyframe(d.current).Kind == LayoutGroupedStack
	if active {
		pose := d.pose
		if d.viewPoseValid {
			pose = d.viewPose
		}
		d.hover.group = pickGroup(d.snapshot, d.hover.pointerX, d.hover.pointerY, pose)
	} else {
		d.hover.group = NoGroup
	}

	liftGroup := d.hover.group
	if d.running && d.store.Keyframe(d.target).Kind == LayoutWheel {
		liftGroup = d.selectedGroup
	}
	d.hover.advance(liftGroup)
}

// buildFrame copies the committed snapshot into the scratch frame buffer
// and applies the hover lift, leaving the snapshot itself untouched.
func (d *Driver) buildFrame() {
	if cap(d.frame) < len(d.snapshot) {
		d.frame = make([]RenderCard, len(d.snapshot))
	}
	d.frame = d.frame[:len(d.snapshot)]
	copy(d.frame, d.snapshot)

	if d.hover.lift > 0 && d.hover.liftGroup != NoGroup {
		for i := range d.frame {
			if d.frame[i].Group == d.hover.liftGroup {
				// Cards extend upward in -Y; the lift raises them.
				d.frame[i].Position.Y -= d.hover.lift
			}
		}
	}
}

// State returns the render state for the current frame. The card slice is
// valid until the next Tick.
func (d *Driver) State() RenderState {
	return RenderState{Cards: d.frame, Camera: d.pose}
}

// placementsToRender freezes a generated layout into render cards at full
// aliveness. This is the value-semantics snapshot used while idle.
func placementsToRender(placements []CardPlacement) []RenderCard {
	cards := make([]RenderCard, len(placements))
	for i, p := range placements {
		cards[i] = RenderCard{
			Position:  p.Position,
			Rotation:  p.Rotation,
			Size:      p.Size,
			Stroke:    p.Stroke,
			Group:     p.Group,
			Aliveness: 1,
		}
	}
	return cards
}
