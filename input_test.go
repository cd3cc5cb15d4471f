package nova

import (
	"math"
	"testing"
)

func newTestController() *Controller {
	return NewController(NewWorld(), NewCamera())
}

func TestControllerDefaults(t *testing.T) {
	c := newTestController()
	if c.Tool != ToolSelect {
		t.Errorf("Tool = %v, want select", c.Tool)
	}
	if c.ZoomStep != defaultZoomStep {
		t.Errorf("ZoomStep = %v", c.ZoomStep)
	}
	if _, ok := c.Selected(); ok {
		t.Error("new controller has a selection")
	}
}

func TestHandleClickCreatesUnderCursor(t *testing.T) {
	c := newTestController()
	c.Camera.ZoomAt(Vec2{}, 2)
	c.Camera.SetOffset(Vec2{100, 100})
	c.ShapeSize = Vec2{20, 10}

	c.Tool = ToolRectangle
	e := c.HandleClick(Vec2{140, 120})
	if e == nil || e.Kind() != ShapeBox {
		t.Fatalf("created %v, want a box", e)
	}
	// (140-100)/2, (120-100)/2
	assertVec(t, "position", e.Transform.Position, Vec2{20, 10})
	if c.SelectedID != e.ID() {
		t.Errorf("SelectedID = %d, want %d", c.SelectedID, e.ID())
	}

	c.Tool = ToolCircle
	circle := c.HandleClick(Vec2{100, 100})
	if r, ok := circle.Circle(); !ok || r.RadiusX != 10 || r.RadiusY != 10 {
		t.Errorf("circle payload = %+v", circle.Shape())
	}

	c.Tool = ToolTriangle
	tri := c.HandleClick(Vec2{100, 100})
	if tri.Kind() != ShapeTriangle || tri.ID() != 3 {
		t.Errorf("triangle kind/id = %v/%d", tri.Kind(), tri.ID())
	}
	if c.World.Len() != 3 {
		t.Errorf("world has %d entities, want 3", c.World.Len())
	}
}

func TestHandleClickSelect(t *testing.T) {
	c := newTestController()
	box := c.World.AddBox(Vec2{0, 0}, Vec2{50, 50})

	if got := c.HandleClick(Vec2{25, 25}); got != box {
		t.Errorf("picked %v, want the box", got)
	}
	if sel, ok := c.Selected(); !ok || sel != box {
		t.Errorf("Selected = %v, %v", sel, ok)
	}

	if got := c.HandleClick(Vec2{500, 500}); got != nil {
		t.Errorf("click on empty space picked %v", got)
	}
	if c.SelectedID != 0 {
		t.Errorf("SelectedID = %d after empty click, want 0", c.SelectedID)
	}
	if c.World.Len() != 1 {
		t.Error("select tool created an entity")
	}
}

func TestHandleWheelZoomsAroundCursor(t *testing.T) {
	c := newTestController()
	cursor := Vec2{300, 200}
	before := c.Camera.ScreenToWorld(cursor)

	c.HandleWheel(cursor, 2)
	assertNear(t, "scale", c.Camera.Scale(), math.Pow(defaultZoomStep, 2))
	after := c.Camera.ScreenToWorld(cursor)
	if !approxEqual(before.X, after.X, 1e-6) || !approxEqual(before.Y, after.Y, 1e-6) {
		t.Errorf("world under cursor moved %v -> %v", before, after)
	}

	c.HandleWheel(cursor, -2)
	assertNear(t, "scale back", c.Camera.Scale(), 1)

	c.HandleWheel(cursor, 0)
	assertNear(t, "no-op", c.Camera.Scale(), 1)
}

func TestHandleWheelBadStepFallsBack(t *testing.T) {
	c := newTestController()
	c.ZoomStep = 0.5
	c.HandleWheel(Vec2{}, 1)
	assertNear(t, "scale", c.Camera.Scale(), defaultZoomStep)
}

func TestHandleDragPans(t *testing.T) {
	c := newTestController()
	c.HandleDrag(Vec2{15, -5})
	if c.Camera.Offset() != (Vec2{15, -5}) {
		t.Errorf("Offset = %v", c.Camera.Offset())
	}
}

func TestToolString(t *testing.T) {
	names := map[Tool]string{
		ToolSelect:    "select",
		ToolRectangle: "rectangle",
		ToolCircle:    "circle",
		ToolTriangle:  "triangle",
		Tool(9):       "unknown",
	}
	for tool, want := range names {
		if got := tool.String(); got != want {
			t.Errorf("Tool(%d).String() = %q, want %q", tool, got, want)
		}
	}
}
