package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"lifesim/sim"
)

// Camera represents the viewport into the world
type Camera struct {
	X, Y   float64 // Camera position in world coordinates
	Zoom   float64 // Zoom level
	Width  float64 // Viewport width
	Height float64 // Viewport height
}

// NewCamera creates a new camera
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Zoom:   1.0,
		Width:  width,
		Height: height,
	}
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + c.Width/2
	sy := (wy-c.Y)*c.Zoom + c.Height/2
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	wx := (sx-c.Width/2)/c.Zoom + c.X
	wy := (sy-c.Height/2)/c.Zoom + c.Y
	return wx, wy
}

// Follow eases the camera toward target. A factor of 1 snaps.
func (c *Camera) Follow(target sim.Vec, factor float64) {
	c.X += (target.X - c.X) * factor
	c.Y += (target.Y - c.Y) * factor
}

// Visible reports whether a world-space rect overlaps the viewport, with margin in screen pixels
func (c *Camera) Visible(r sim.Rect, margin float64) bool {
	minX, minY := c.WorldToScreen(r.Min.X, r.Min.Y)
	maxX, maxY := c.WorldToScreen(r.Max.X, r.Max.Y)
	return maxX >= -margin && minX <= c.Width+margin &&
		maxY >= -margin && minY <= c.Height+margin
}

const (
	cullMargin      = 100.0
	healthBarHeight = 6.0
	healthBarGap    = 10.0
	outlineWidth    = 2.0
)

var (
	frozenTint   = color.RGBA{60, 120, 160, 120}
	hitboxColor  = colornames.Red
	barBackColor = colornames.Black
)

// Renderer handles rendering of the current world
type Renderer struct {
	camera *Camera

	// Drawn counts entities that passed culling last frame
	Drawn int
}

// NewRenderer creates a new renderer
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{
		camera: camera,
	}
}

// Render draws the world floor and every render state, back to front
func (r *Renderer) Render(screen *ebiten.Image, world *sim.World, states []sim.RenderState, debug bool) {
	screen.Fill(world.OuterColor)

	minX, minY := r.camera.WorldToScreen(0, 0)
	maxX, maxY := r.camera.WorldToScreen(world.Size.X, world.Size.Y)
	vector.DrawFilledRect(screen, float32(minX), float32(minY), float32(maxX-minX), float32(maxY-minY), world.InnerColor, false)

	r.Drawn = 0
	for _, rs := range states {
		if !r.camera.Visible(rs.Hitbox, cullMargin+spriteExtent(rs)) {
			continue
		}
		r.RenderEntity(screen, rs)
		if debug {
			r.renderHitbox(screen, rs.Hitbox)
		}
		r.Drawn++
	}
}

// RenderEntity renders a single entity
func (r *Renderer) RenderEntity(screen *ebiten.Image, rs sim.RenderState) {
	center := rs.Hitbox.Center().Add(rs.Offset)
	sx, sy := r.camera.WorldToScreen(center.X, center.Y)
	w := rs.Sprite.Width * r.camera.Zoom
	h := rs.Sprite.Height * r.camera.Zoom
	style := GetSpriteStyle(rs.Sprite.Key, rs.Variant)

	switch style.Shape {
	case ShapeLine:
		rad := rs.Rotation * math.Pi / 180
		dx, dy := math.Cos(rad)*w/2, math.Sin(rad)*w/2
		vector.StrokeLine(screen, float32(sx-dx), float32(sy-dy), float32(sx+dx), float32(sy+dy), float32(math.Max(h, 2)), style.Fill, true)
	case ShapeEllipse:
		radius := float32(math.Min(w, h) / 2)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), radius, style.Fill, true)
		vector.StrokeCircle(screen, float32(sx), float32(sy), radius, outlineWidth, style.Outline, true)
	default:
		x, y := float32(sx-w/2), float32(sy-h/2)
		vector.DrawFilledRect(screen, x, y, float32(w), float32(h), style.Fill, false)
		vector.StrokeRect(screen, x, y, float32(w), float32(h), outlineWidth, style.Outline, false)
		if rs.Kind == sim.KindAI || rs.Kind == sim.KindPlayer {
			r.renderFacing(screen, sx, sy, w, h, rs.Flip, style.Outline)
		}
	}

	if rs.Frozen {
		vector.DrawFilledRect(screen, float32(sx-w/2), float32(sy-h/2), float32(w), float32(h), frozenTint, false)
	}

	if rs.HealthBar.Show {
		r.renderHealthBar(screen, sx, sy-h/2-healthBarGap, rs.HealthBar)
	}
}

// renderFacing marks the side a creature looks toward
func (r *Renderer) renderFacing(screen *ebiten.Image, sx, sy, w, h float64, flip bool, clr color.Color) {
	eye := w / 6
	ex := sx + w/4
	if flip {
		ex = sx - w/4
	}
	vector.DrawFilledRect(screen, float32(ex-eye/2), float32(sy-h/4), float32(eye), float32(eye), clr, false)
}

func (r *Renderer) renderHealthBar(screen *ebiten.Image, cx, y float64, bar sim.HealthBar) {
	width := bar.Width * r.camera.Zoom
	x := cx - width/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), healthBarHeight, barBackColor, false)
	fill := width * math.Max(0, math.Min(1, bar.Fraction))
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(fill), healthBarHeight, bar.Color, false)
}

func (r *Renderer) renderHitbox(screen *ebiten.Image, hb sim.Rect) {
	minX, minY := r.camera.WorldToScreen(hb.Min.X, hb.Min.Y)
	maxX, maxY := r.camera.WorldToScreen(hb.Max.X, hb.Max.Y)
	vector.StrokeRect(screen, float32(minX), float32(minY), float32(maxX-minX), float32(maxY-minY), 1, hitboxColor, false)
}

// spriteExtent is how far a sprite can reach past its hitbox
func spriteExtent(rs sim.RenderState) float64 {
	return math.Max(rs.Sprite.Width, rs.Sprite.Height)
}
