package nova

import (
	"log/slog"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Scale limits enforced after every zoom.
const (
	MinScale = 0.1
	MaxScale = 10.0
)

// zoomAnim holds an active animated zoom around a fixed screen anchor.
type zoomAnim struct {
	tween  *gween.Tween
	anchor Vec2
	target float64
}

// panAnim holds active tweens for the offset X and Y.
type panAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera maps between world space and screen space:
//
//	screen = world*scale + offset
//	world  = (screen - offset) / scale
//
// Every scale change (ZoomAt, ZoomTo, Update, Reset) goes through the same
// anchored zoom, which keeps it within [MinScale, MaxScale]. A Camera is not
// safe for concurrent use.
type Camera struct {
	scale  float64
	offset Vec2

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	zoomTween *zoomAnim
	panTween  *panAnim

	sink  EventSink
	debug bool
}

// NewCamera creates a Camera with scale 1 and zero offset.
func NewCamera() *Camera {
	return &Camera{scale: 1, dirty: true}
}

// Scale returns the current zoom factor. Always within [MinScale, MaxScale].
func (c *Camera) Scale() float64 {
	return c.scale
}

// Offset returns the screen-space translation applied after scaling.
func (c *Camera) Offset() Vec2 {
	return c.offset
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(offset) * Scale(scale)
func (c *Camera) computeViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false
	c.viewMatrix = translateScale(c.offset.X, c.offset.Y, c.scale)
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return transformPoint(c.computeViewMatrix(), p)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	c.computeViewMatrix()
	return transformPoint(c.invViewMatrix, p)
}

// ZoomAt multiplies the scale by factor, clamps it to [MinScale, MaxScale],
// and shifts the offset so the world point under anchor (a screen point)
// stays under it.
//
// When the clamp alters the requested factor the anchor is still held fixed
// for the scale actually applied. A NaN factor leaves the camera unchanged.
func (c *Camera) ZoomAt(anchor Vec2, factor float64) {
	if math.IsNaN(factor) {
		return
	}
	c.zoomAround(anchor, c.scale*factor)
	if c.debug {
		slog.Debug("nova: camera zoom",
			"anchorX", anchor.X, "anchorY", anchor.Y, "factor", factor, "scale", c.scale)
	}
	c.changed()
}

// zoomAround sets the clamped scale and corrects the offset so the world
// point under anchor stays under it. It does not notify the sink.
func (c *Camera) zoomAround(anchor Vec2, scale float64) {
	before := c.ScreenToWorld(anchor)

	c.scale = clampScale(scale)
	c.dirty = true

	// Same offset, new scale.
	after := c.ScreenToWorld(anchor)

	// Solving (anchor - offset') / scale = before for offset' gives
	// offset' = offset + (after - before) * scale.
	c.offset = c.offset.Add(after.Sub(before).Scale(c.scale))
	c.dirty = true
}

// Pan shifts the offset by delta screen pixels.
func (c *Camera) Pan(delta Vec2) {
	c.SetOffset(c.offset.Add(delta))
}

// SetOffset replaces the screen-space offset.
func (c *Camera) SetOffset(offset Vec2) {
	c.offset = offset
	c.dirty = true
	if c.debug {
		slog.Debug("nova: camera offset", "x", offset.X, "y", offset.Y)
	}
	c.changed()
}

// Reset restores scale 1 and zero offset and cancels any animation.
func (c *Camera) Reset() {
	c.zoomTween = nil
	c.panTween = nil
	c.zoomAround(Vec2{}, 1)
	c.SetOffset(Vec2{})
}

// VisibleBounds returns the world-space rect shown by the given screen-space
// viewport.
func (c *Camera) VisibleBounds(viewport Rect) Rect {
	tl := c.ScreenToWorld(Vec2{viewport.X, viewport.Y})
	br := c.ScreenToWorld(Vec2{viewport.X + viewport.Width, viewport.Y + viewport.Height})
	return Rect{X: tl.X, Y: tl.Y, Width: br.X - tl.X, Height: br.Y - tl.Y}
}

// ZoomTo animates the scale toward target over duration seconds, keeping
// anchor fixed throughout. The target is clamped up front. A non-positive
// duration zooms immediately. A NaN target is ignored.
func (c *Camera) ZoomTo(anchor Vec2, target float64, duration float32, easeFn ease.TweenFunc) {
	if math.IsNaN(target) {
		return
	}
	target = clampScale(target)
	if duration <= 0 {
		c.zoomTween = nil
		c.zoomAround(anchor, target)
		c.changed()
		return
	}
	c.zoomTween = &zoomAnim{
		tween:  gween.New(float32(c.scale), float32(target), duration, easeFn),
		anchor: anchor,
		target: target,
	}
}

// PanTo animates the offset toward target over duration seconds.
// A non-positive duration moves immediately.
func (c *Camera) PanTo(target Vec2, duration float32, easeFn ease.TweenFunc) {
	if duration <= 0 {
		c.panTween = nil
		c.SetOffset(target)
		return
	}
	c.panTween = &panAnim{
		tweenX: gween.New(float32(c.offset.X), float32(target.X), duration, easeFn),
		tweenY: gween.New(float32(c.offset.Y), float32(target.Y), duration, easeFn),
	}
}

// Animating reports whether a ZoomTo or PanTo is in progress.
func (c *Camera) Animating() bool {
	return c.zoomTween != nil || c.panTween != nil
}

// StopAnimation cancels any in-progress ZoomTo or PanTo, leaving the camera
// where it currently is.
func (c *Camera) StopAnimation() {
	c.zoomTween = nil
	c.panTween = nil
}

// Update advances zoom and pan animations by dt seconds.
func (c *Camera) Update(dt float32) {
	if z := c.zoomTween; z != nil {
		val, done := z.tween.Update(dt)
		next := float64(val)
		if done {
			next = z.target
			c.zoomTween = nil
		}
		// The clamp and anchor hold on every step.
		c.zoomAround(z.anchor, next)
		c.changed()
	}

	if p := c.panTween; p != nil {
		off := c.offset
		if !p.doneX {
			val, done := p.tweenX.Update(dt)
			off.X = float64(val)
			p.doneX = done
		}
		if !p.doneY {
			val, done := p.tweenY.Update(dt)
			off.Y = float64(val)
			p.doneY = done
		}
		if p.doneX && p.doneY {
			c.panTween = nil
		}
		c.SetOffset(off)
	}
}

// SetEventSink sets the receiver of EventCameraChanged events. Pass nil to stop.
func (c *Camera) SetEventSink(sink EventSink) {
	c.sink = sink
}

// SetDebugMode enables or disables debug logging of mutations via slog.
func (c *Camera) SetDebugMode(enabled bool) {
	c.debug = enabled
}

func (c *Camera) changed() {
	if c.sink != nil {
		c.sink.EmitEvent(Event{Type: EventCameraChanged, Scale: c.scale, Offset: c.offset})
	}
}

// clampScale limits s to [MinScale, MaxScale].
func clampScale(s float64) float64 {
	return math.Min(math.Max(s, MinScale), MaxScale)
}
