package deckmorph

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Culling thresholds for the render surface.
const (
	// visibilityEpsilon culls cards whose aliveness no longer reads.
	visibilityEpsilon = 0.01
	// sizeFloor culls cards once any size axis shrinks below it.
	sizeFloor = 0.05
)

// defaultPixelsPerUnit maps world units to screen pixels at zoom 1.
const defaultPixelsPerUnit = 130.0

// whitePixel is the shared 1x1 white image used to fill solid triangles.
// Created lazily so pure-logic tests never touch the GPU.
var whitePixel *ebiten.Image

func whitePixelImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// boxCorners enumerates the 8 corners of a unit box as ±half-size signs.
var boxCorners = [8]Vec3{
	{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
}

// boxFaces indexes boxCorners per face.
var boxFaces = [6][4]int{
	{0, 1, 2, 3}, // back
	{4, 5, 6, 7}, // front
	{0, 1, 5, 4}, // bottom
	{3, 2, 6, 7}, // top
	{0, 3, 7, 4}, // left
	{1, 2, 6, 5}, // right
}

// boxEdges indexes boxCorners per edge.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// projectedBox is one card's screen geometry for the current frame.
type projectedBox struct {
	screen [8]Vec3 // X, Y in pixels, Z is view depth
	depth  float64
	stroke Color
	alive  float64
}

// Renderer draws a render state as 3D boxes: faces filled black, edges
// stroked in the card color, painter-sorted through the camera's
// orthographic projection. It is the in-repo rendering collaborator.
type Renderer struct {
	// Width and Height are the canvas size in pixels.
	Width, Height int
	// PixelsPerUnit scales world units to pixels at zoom 1.
	PixelsPerUnit float64
	// StrokeWidth is the edge line width in pixels.
	StrokeWidth float32

	boxes []projectedBox
	verts []ebiten.Vertex
	index []uint16
}

// NewRenderer creates a renderer for the given canvas size.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		Width:         width,
		Height:        height,
		PixelsPerUnit: defaultPixelsPerUnit,
		StrokeWidth:   1,
	}
}

// viewPointer converts a screen pixel to the view-space coordinates the
// driver's hover logic expects: offset from the canvas center in world
// units before zoom.
func (r *Renderer) viewPointer(px, py float64) (x, y float64) {
	cx := float64(r.Width) / 2
	cy := float64(r.Height) / 2
	return (px - cx) / r.PixelsPerUnit, (py - cy) / r.PixelsPerUnit
}

// project maps a world point through the camera: rotate X, then Y, then Z,
// then scale by zoom, then to pixels. The returned Z is the view depth.
func (r *Renderer) project(p Vec3, pose CameraPose) Vec3 {
	rot := Vec3{
		X: degToRad(pose.RotX),
		Y: degToRad(pose.RotY),
		Z: degToRad(pose.RotZ),
	}
	v := rotateXYZ(p, rot).scale(pose.Zoom)
	s := r.PixelsPerUnit
	return Vec3{
		X: float64(r.Width)/2 + v.X*s,
		Y: float64(r.Height)/2 + v.Y*s,
		Z: v.Z,
	}
}

// Draw renders the state onto screen. Cards below the visibility or size
// thresholds are culled; the rest are painter-sorted far to near.
func (r *Renderer) Draw(screen *ebiten.Image, state RenderState) {
	r.boxes = r.boxes[:0]

	for i := range state.Cards {
		c := &state.Cards[i]
		if c.Aliveness < visibilityEpsilon {
			continue
		}
		if c.Size.X < sizeFloor || c.Size.Y < sizeFloor || c.Size.Z < sizeFloor {
			continue
		}

		var box projectedBox
		half := c.Size.scale(0.5)
		depth := 0.0
		for j, corner := range boxCorners {
			local := Vec3{
				X: corner.X * half.X,
				Y: corner.Y * half.Y,
				Z: corner.Z * half.Z,
			}
			world := rotateXYZ(local, c.Rotation).add(c.Position)
			p := r.project(world, state.Camera)
			box.screen[j] = p
			depth += p.Z
		}
		box.depth = depth / 8
		box.stroke = c.Stroke
		box.alive = c.Aliveness
		r.boxes = append(r.boxes, box)
	}

	// Far to near; stable so equal-depth cards keep slice order.
	sort.SliceStable(r.boxes, func(a, b int) bool {
		return r.boxes[a].depth > r.boxes[b].depth
	})

	for i := range r.boxes {
		r.drawBox(screen, &r.boxes[i])
	}
}

// drawBox fills the box faces back-to-front in black, then strokes every
// edge in the card color scaled by aliveness.
func (r *Renderer) drawBox(screen *ebiten.Image, box *projectedBox) {
	type faceDepth struct {
		face  int
		depth float64
	}
	var faces [6]faceDepth
	for f, idx := range boxFaces {
		d := 0.0
		for _, ci := range idx {
			d += box.screen[ci].Z
		}
		faces[f] = faceDepth{face: f, depth: d / 4}
	}
	sort.SliceStable(faces[:], func(a, b int) bool {
		return faces[a].depth > faces[b].depth
	})

	r.verts = r.verts[:0]
	r.index = r.index[:0]
	fillAlpha := float32(box.alive)
	for _, fd := range faces {
		base := uint16(len(r.verts))
		for _, ci := range boxFaces[fd.face] {
			p := box.screen[ci]
			r.verts = append(r.verts, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorA: fillAlpha,
			})
		}
		r.index = append(r.index,
			base, base+1, base+2,
			base, base+2, base+3)
	}
	screen.DrawTriangles(r.verts, r.index, whitePixelImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})

	stroke := box.stroke.scaled(box.alive).toRGBA()
	for _, e := range boxEdges {
		a := box.screen[e[0]]
		b := box.screen[e[1]]
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			r.StrokeWidth, stroke, true)
	}
}
