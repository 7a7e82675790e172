package deckmorph

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// poseAnim holds active swing-to tweens for the four pose components.
type poseAnim struct {
	tweens [4]*gween.Tween
	done   [4]bool
}

// Camera tracks the pose the renderer projects through. During transitions
// it follows the driver's interpolated pose; while idle it adds a slow
// auto-orbit about the vertical axis. SwingTo overrides tracking with a
// tweened glide, used for immediate keyframe jumps.
type Camera struct {
	// Pose is the effective pose for this frame.
	Pose CameraPose

	// OrbitSpeed is the idle drift about Y in degrees per second.
	// Zero disables the orbit.
	OrbitSpeed float64

	orbit float64 // accumulated idle orbit, degrees
	swing *poseAnim
}

// NewCamera creates a camera starting at the given pose with a gentle
// default orbit.
func NewCamera(pose CameraPose) *Camera {
	return &Camera{Pose: pose, OrbitSpeed: 4}
}

// SwingTo glides the camera to the target pose over duration seconds,
// suspending base tracking and the orbit until the glide completes.
func (c *Camera) SwingTo(target CameraPose, duration float32, fn ease.TweenFunc) {
	anim := &poseAnim{}
	from := [4]float64{c.Pose.Zoom, c.Pose.RotX, c.Pose.RotY, c.Pose.RotZ}
	to := [4]float64{target.Zoom, target.RotX, target.RotY + c.orbit, target.RotZ}
	for i := range anim.tweens {
		anim.tweens[i] = gween.New(float32(from[i]), float32(to[i]), duration, fn)
	}
	c.swing = anim
}

// Swinging reports whether a SwingTo glide is still in flight.
func (c *Camera) Swinging() bool {
	return c.swing != nil
}

// Update advances the swing or, absent one, tracks the base pose and
// accumulates the idle orbit. Called once per tick with the driver's pose.
func (c *Camera) Update(dt float32, base CameraPose, animating bool) {
	if c.swing != nil {
		vals := [4]*float64{&c.Pose.Zoom, &c.Pose.RotX, &c.Pose.RotY, &c.Pose.RotZ}
		allDone := true
		for i, tw := range c.swing.tweens {
			if c.swing.done[i] {
				continue
			}
			v, done := tw.Update(dt)
			*vals[i] = float64(v)
			c.swing.done[i] = done
			if !done {
				allDone = false
			}
		}
		if allDone {
			c.swing = nil
		}
		return
	}

	if !animating {
		c.orbit += c.OrbitSpeed * float64(dt)
	}
	c.Pose = base
	c.Pose.RotY += c.orbit
}
