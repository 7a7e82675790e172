package deckmorph

// Input injection for scripted runs and automated tests. Injected events
// join the same queue as real input and are drained at the top of the next
// Update, so scripts observe the exact behavior a user would.

// InjectClick queues a click at the given screen pixel coordinates.
func (s *Scene) InjectClick(px, py float64) {
	vx, vy := s.renderer.viewPointer(px, py)
	s.injectQueue = append(s.injectQueue,
		Event{Kind: EventPointerMove, X: vx, Y: vy},
		Event{Kind: EventClick, X: vx, Y: vy})
}

// InjectPointerMove queues a pointer move to the given screen pixel
// coordinates.
func (s *Scene) InjectPointerMove(px, py float64) {
	vx, vy := s.renderer.viewPointer(px, py)
	s.injectQueue = append(s.injectQueue, Event{Kind: EventPointerMove, X: vx, Y: vy})
}

// InjectAdvance queues an advance-to-next-keyframe event.
func (s *Scene) InjectAdvance() {
	s.injectQueue = append(s.injectQueue, Event{Kind: EventAdvance})
}

// InjectBack queues an advance-to-previous-keyframe event.
func (s *Scene) InjectBack() {
	s.injectQueue = append(s.injectQueue, Event{Kind: EventBack})
}

// InjectJump queues an immediate jump to keyframe i with a camera glide.
func (s *Scene) InjectJump(i int) {
	s.JumpTo(i)
}
