package deckmorph

import "testing"

func TestViewPointerCentersOrigin(t *testing.T) {
	r := NewRenderer(960, 600)
	x, y := r.viewPointer(480, 300)
	assertNear(t, "center x", x, 0)
	assertNear(t, "center y", y, 0)

	x, y = r.viewPointer(480+defaultPixelsPerUnit, 300-defaultPixelsPerUnit)
	assertNear(t, "one unit right", x, 1)
	assertNear(t, "one unit up", y, -1)
}

func TestProjectIdentityPose(t *testing.T) {
	r := NewRenderer(960, 600)
	p := r.project(Vec3{X: 1, Y: -0.5, Z: 2}, CameraPose{Zoom: 1})
	assertNear(t, "projected x", p.X, 480+defaultPixelsPerUnit)
	assertNear(t, "projected y", p.Y, 300-0.5*defaultPixelsPerUnit)
	assertNear(t, "view depth", p.Z, 2)
}

func TestProjectZoomScalesOffsetsNotDepthSign(t *testing.T) {
	r := NewRenderer(960, 600)
	near := r.project(Vec3{X: 1}, CameraPose{Zoom: 0.5})
	assertNear(t, "zoomed x", near.X, 480+0.5*defaultPixelsPerUnit)

	// A yaw of 90 degrees swings X into depth.
	turned := r.project(Vec3{X: 1}, CameraPose{Zoom: 1, RotY: 90})
	assertNear(t, "turned x", turned.X, 480)
	assertNear(t, "turned depth", turned.Z, -1)
}

func TestProjectRoundTripsHoverUnprojection(t *testing.T) {
	// A ground-plane point projected to the screen and fed back through the
	// pointer pipeline lands on its own XZ coordinates.
	r := NewRenderer(960, 600)
	pose := CameraPose{Zoom: 0.9, RotX: 25, RotY: -40, RotZ: 5}
	world := Vec3{X: 0.8, Z: -1.3}

	p := r.project(world, pose)
	vx, vy := r.viewPointer(p.X, p.Y)
	wx, wz := unprojectPointer(vx, vy, pose)

	// The unprojection flattens depth, so only expect agreement to the
	// hover threshold's scale, not exact equality.
	if d := distXZ(Vec3{X: wx, Z: wz}, world); d > hoverThreshold {
		t.Errorf("unprojected point %v,%v is %v away from %v", wx, wz, d, world)
	}
}
