package deckmorph

// Hover tuning.
const (
	// hoverThreshold is the maximum XZ-planar distance between the
	// unprojected pointer and a card for its group to count as hovered.
	hoverThreshold = 0.5
	// liftHeight is the vertical offset applied to a lifted group.
	liftHeight = 0.25
	// liftEngageRate and liftReleaseRate are the per-tick exponential
	// approach factors for the lift; engaging is snappier than letting go.
	liftEngageRate  = 0.25
	liftReleaseRate = 0.1
)

// hoverState tracks the pointer, the hovered group, and the smoothed lift
// offset shared by all cards of the lifted group.
type hoverState struct {
	pointerX float64 // view-space pointer coordinates
	pointerY float64

	group     int // group under the pointer, or NoGroup
	liftGroup int // group the lift currently applies to
	lift      float64
}

func newHoverState() hoverState {
	return hoverState{group: NoGroup, liftGroup: NoGroup}
}

// advance moves the lift toward its target with separate engage and release
// rates. When the lifted group changes the lift re-targets without snapping.
func (h *hoverState) advance(group int) {
	if group != NoGroup {
		h.liftGroup = group
		h.lift += (liftHeight - h.lift) * liftEngageRate
		return
	}
	h.lift += (0 - h.lift) * liftReleaseRate
	if h.lift < 1e-4 {
		h.lift = 0
		h.liftGroup = NoGroup
	}
}

// unprojectPointer maps view-space pointer coordinates to an approximate
// world-space point on the ground plane: inverse zoom first, then the
// inverse camera rotation applied in reverse axis order Z, Y, X. Only the
// resulting X and Z are meaningful.
func unprojectPointer(x, y float64, pose CameraPose) (wx, wz float64) {
	zoom := pose.Zoom
	if zoom <= 0 {
		zoom = dimEpsilon
	}
	v := Vec3{X: x / zoom, Y: y / zoom}
	rot := Vec3{
		X: degToRad(pose.RotX),
		Y: degToRad(pose.RotY),
		Z: degToRad(pose.RotZ),
	}
	v = rotateXYZInverse(v, rot)
	return v.X, v.Z
}

// pickGroup returns the group of the card nearest to the unprojected
// pointer in the XZ plane, or NoGroup when the nearest groupable card is
// farther than the hover threshold.
func pickGroup(cards []RenderCard, pointerX, pointerY float64, pose CameraPose) int {
	wx, wz := unprojectPointer(pointerX, pointerY, pose)
	point := Vec3{X: wx, Z: wz}

	best := NoGroup
	bestDist := hoverThreshold
	for i := range cards {
		c := &cards[i]
		if c.Group == NoGroup {
			continue
		}
		if dist := distXZ(c.Position, point); dist < bestDist {
			bestDist = dist
			best = c.Group
		}
	}
	return best
}
