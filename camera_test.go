package deckmorph

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestCameraTracksBaseWithOrbit(t *testing.T) {
	base := CameraPose{Zoom: 1, RotX: 18, RotY: -24}
	c := NewCamera(base)

	// One idle second of ticks accumulates OrbitSpeed degrees about Y.
	const dt = float32(1.0 / 60)
	for i := 0; i < 60; i++ {
		c.Update(dt, base, false)
	}
	assertNear(t, "orbit after 1s", c.Pose.RotY, base.RotY+c.OrbitSpeed*float64(dt)*60)
	assertNear(t, "tracked rotX", c.Pose.RotX, base.RotX)
	assertNear(t, "tracked zoom", c.Pose.Zoom, base.Zoom)
}

func TestCameraOrbitPausesWhileAnimating(t *testing.T) {
	base := CameraPose{Zoom: 1}
	c := NewCamera(base)

	c.Update(1.0/60, base, false)
	drift := c.Pose.RotY
	if drift <= 0 {
		t.Fatalf("orbit did not accumulate: %v", drift)
	}

	for i := 0; i < 30; i++ {
		c.Update(1.0/60, base, true)
	}
	assertNear(t, "orbit frozen while animating", c.Pose.RotY, drift)
}

func TestCameraSwingToReachesTarget(t *testing.T) {
	c := NewCamera(CameraPose{Zoom: 1})
	target := CameraPose{Zoom: 0.85, RotX: 30, RotY: 12, RotZ: -4}

	c.SwingTo(target, 0.5, ease.InOutCubic)
	if !c.Swinging() {
		t.Fatal("swing did not start")
	}
	for i := 0; i < 60; i++ {
		c.Update(1.0/60, CameraPose{Zoom: 1}, false)
	}
	if c.Swinging() {
		t.Fatal("swing still in flight after its duration")
	}

	// Tween endpoints are float32; compare at that precision.
	const tol = 1e-5
	for name, pair := range map[string][2]float64{
		"zoom": {c.Pose.Zoom, target.Zoom},
		"rotX": {c.Pose.RotX, target.RotX},
		"rotY": {c.Pose.RotY, target.RotY},
		"rotZ": {c.Pose.RotZ, target.RotZ},
	} {
		if diff := pair[0] - pair[1]; diff > tol || diff < -tol {
			t.Errorf("%s = %v, want %v", name, pair[0], pair[1])
		}
	}
}

func TestCameraSwingSuspendsTracking(t *testing.T) {
	c := NewCamera(CameraPose{Zoom: 1})
	c.SwingTo(CameraPose{Zoom: 2}, 1.0, ease.Linear)

	// The base pose is ignored mid-swing.
	c.Update(1.0/60, CameraPose{Zoom: 9, RotX: 90}, false)
	if c.Pose.RotX != 0 {
		t.Errorf("swing leaked base rotX: %v", c.Pose.RotX)
	}
	if c.Pose.Zoom >= 2 || c.Pose.Zoom < 1 {
		t.Errorf("swing zoom out of range: %v", c.Pose.Zoom)
	}
}
