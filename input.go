package nova

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	defaultZoomStep  = 1.1 // scale factor per wheel notch
	defaultShapeSize = 80.0
)

// Tool selects what a primary click does.
type Tool uint8

const (
	ToolSelect    Tool = iota // pick the topmost entity under the pointer
	ToolRectangle             // create a box at the pointer
	ToolCircle                // create a circle centered on the pointer
	ToolTriangle              // create a triangle at the pointer
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// toolKeys maps number keys to tools.
var toolKeys = map[ebiten.Key]Tool{
	ebiten.Key1: ToolSelect,
	ebiten.Key2: ToolRectangle,
	ebiten.Key3: ToolCircle,
	ebiten.Key4: ToolTriangle,
}

// Controller turns pointer input into World and Camera calls. The Handle
// methods take screen coordinates and can be driven directly; Update polls
// ebiten and forwards to them.
//
// Selection is tracked by entity id only.
type Controller struct {
	World  *World
	Camera *Camera

	Tool       Tool
	SelectedID int // 0 means nothing is selected

	// ShapeSize is the size of created boxes and triangles. Circles get
	// radius ShapeSize.X/2.
	ShapeSize Vec2
	// ZoomStep is the zoom factor applied per wheel notch. Must be > 1.
	ZoomStep float64

	dragging   bool
	lastCursor Vec2
}

// NewController creates a controller with the select tool active.
func NewController(w *World, cam *Camera) *Controller {
	return &Controller{
		World:     w,
		Camera:    cam,
		ShapeSize: Vec2{defaultShapeSize, defaultShapeSize},
		ZoomStep:  defaultZoomStep,
	}
}

// HandleWheel zooms around the cursor. Positive dy zooms in.
func (c *Controller) HandleWheel(cursor Vec2, dy float64) {
	if dy == 0 {
		return
	}
	step := c.ZoomStep
	if step <= 1 {
		step = defaultZoomStep
	}
	c.Camera.ZoomAt(cursor, math.Pow(step, dy))
}

// HandleClick applies the active tool at the cursor. Shape tools create an
// entity at the world point under the cursor and select it; the select tool
// picks the topmost entity there, or clears the selection. Returns the
// created or picked entity, or nil.
func (c *Controller) HandleClick(cursor Vec2) *Entity {
	p := c.Camera.ScreenToWorld(cursor)

	var e *Entity
	switch c.Tool {
	case ToolRectangle:
		e = c.World.AddBox(p, c.ShapeSize)
	case ToolCircle:
		e = c.World.AddCircle(p, c.ShapeSize.X/2)
	case ToolTriangle:
		e = c.World.AddTriangle(p, c.ShapeSize)
	default:
		hit, ok := c.World.EntityAt(p)
		if !ok {
			c.SelectedID = 0
			return nil
		}
		e = hit
	}
	c.SelectedID = e.ID()
	return e
}

// HandleDrag pans the camera by a screen-space pointer delta.
func (c *Controller) HandleDrag(delta Vec2) {
	if delta == (Vec2{}) {
		return
	}
	c.Camera.Pan(delta)
}

// Selected returns the selected entity, if any.
func (c *Controller) Selected() (*Entity, bool) {
	if c.SelectedID == 0 {
		return nil, false
	}
	return c.World.Entity(c.SelectedID)
}

// Update polls mouse and keyboard state. Call once per tick.
//
//	wheel           zoom around the cursor
//	left click      apply the active tool
//	middle/right    drag to pan
//	1-4             switch tool
//	Home            reset the camera
func (c *Controller) Update() {
	x, y := ebiten.CursorPosition()
	cursor := Vec2{float64(x), float64(y)}

	for key, tool := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			c.Tool = tool
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		c.Camera.Reset()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		c.HandleWheel(cursor, dy)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		c.HandleClick(cursor)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if c.dragging {
			c.HandleDrag(cursor.Sub(c.lastCursor))
		}
		c.dragging = true
	} else {
		c.dragging = false
	}
	c.lastCursor = cursor
}
