package nova

import (
	"image/color"
	"math"
	"testing"
)

func TestLocalOutlineBoxIsCopy(t *testing.T) {
	w := NewWorld()
	e := w.AddBox(Vec2{}, Vec2{10, 5})
	pts := LocalOutline(e, 0)
	if len(pts) != 4 {
		t.Fatalf("len = %d, want 4", len(pts))
	}
	pts[0] = Vec2{99, 99}
	b, _ := e.Box()
	if b.Vertices[0] != (Vec2{}) {
		t.Error("mutating the outline changed the entity")
	}
}

func TestLocalOutlineCircle(t *testing.T) {
	w := NewWorld()
	e := w.AddCircle(Vec2{}, 10, 4)
	pts := LocalOutline(e, 4)
	want := []Vec2{{10, 0}, {0, 4}, {-10, 0}, {0, -4}}
	if len(pts) != len(want) {
		t.Fatalf("len = %d, want %d", len(pts), len(want))
	}
	for i := range want {
		if !approxEqual(pts[i].X, want[i].X, 1e-9) || !approxEqual(pts[i].Y, want[i].Y, 1e-9) {
			t.Errorf("pts[%d] = %v, want %v", i, pts[i], want[i])
		}
	}

	if got := len(LocalOutline(e, 2)); got != defaultCircleSegments {
		t.Errorf("segments < 3: len = %d, want %d", got, defaultCircleSegments)
	}
}

func TestScreenOutlineComposesTransformAndCamera(t *testing.T) {
	w := NewWorld()
	e := w.AddTriangle(Vec2{10, 20}, Vec2{10, 20})
	cam := NewCamera()
	cam.ZoomAt(Vec2{}, 2)
	cam.SetOffset(Vec2{5, 5})

	got := ScreenOutline(e, cam, 0)
	tri, _ := e.Triangle()
	for i, local := range tri.Vertices {
		want := cam.WorldToScreen(e.Transform.ToWorld(local))
		assertVec(t, "vertex", got[i], want)
	}
	// Apex: world (15, 20) -> screen (35, 45).
	assertVec(t, "apex", got[0], Vec2{35, 45})
}

func TestScreenOutlineIgnoresRotationAndScale(t *testing.T) {
	w := NewWorld()
	e := w.AddBox(Vec2{1, 1}, Vec2{2, 2})
	before := ScreenOutline(e, NewCamera(), 0)
	e.Transform.Rotation = math.Pi / 3
	e.Transform.Scale = Vec2{4, 4}
	after := ScreenOutline(e, NewCamera(), 0)
	for i := range before {
		assertVec(t, "vertex", after[i], before[i])
	}
}

func TestBuildPolygonFan(t *testing.T) {
	pts := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	verts, inds := buildPolygonFan(pts, color.RGBA{R: 255, A: 255})
	if len(verts) != 4 {
		t.Fatalf("verts = %d, want 4", len(verts))
	}
	wantInds := []uint16{0, 1, 2, 0, 2, 3}
	if len(inds) != len(wantInds) {
		t.Fatalf("inds = %v, want %v", inds, wantInds)
	}
	for i := range wantInds {
		if inds[i] != wantInds[i] {
			t.Errorf("inds[%d] = %d, want %d", i, inds[i], wantInds[i])
		}
	}
	if verts[2].DstX != 10 || verts[2].DstY != 10 {
		t.Errorf("vert 2 dst = (%v,%v)", verts[2].DstX, verts[2].DstY)
	}
	if verts[0].ColorR != 1 || verts[0].ColorG != 0 || verts[0].ColorA != 1 {
		t.Errorf("vert color = (%v,%v,%v,%v)", verts[0].ColorR, verts[0].ColorG, verts[0].ColorB, verts[0].ColorA)
	}
	if verts[0].SrcX != 0.5 || verts[0].SrcY != 0.5 {
		t.Errorf("src = (%v,%v), want white pixel center", verts[0].SrcX, verts[0].SrcY)
	}
}

func TestBuildPolygonFanTooFewPoints(t *testing.T) {
	verts, inds := buildPolygonFan([]Vec2{{0, 0}, {1, 1}}, color.White)
	if verts != nil || inds != nil {
		t.Errorf("expected nil for < 3 points, got %d verts", len(verts))
	}
}

func TestDrawOptionsColors(t *testing.T) {
	opts := DrawOptions{SelectedID: 3}
	fill, stroke := opts.colors(1)
	if fill != DefaultFillColor || stroke != DefaultStrokeColor {
		t.Errorf("unselected colors = %v, %v", fill, stroke)
	}
	_, stroke = opts.colors(3)
	if stroke != DefaultSelectedColor {
		t.Errorf("selected stroke = %v", stroke)
	}

	none := DrawOptions{}
	if _, stroke := none.colors(0); stroke != DefaultStrokeColor {
		t.Error("id 0 must never be treated as selected")
	}
	if none.segments() != defaultCircleSegments || none.strokeWidth() != defaultStrokeWidth {
		t.Error("zero options should use defaults")
	}
}

func TestSegmentsAreCapped(t *testing.T) {
	opts := DrawOptions{Segments: 100000}
	if got := opts.segments(); got != MaxCircleSegments {
		t.Errorf("segments() = %d, want %d", got, MaxCircleSegments)
	}
	opts.Segments = MaxCircleSegments
	if got := opts.segments(); got != MaxCircleSegments {
		t.Errorf("segments() at cap = %d", got)
	}

	w := NewWorld()
	e := w.AddCircle(Vec2{}, 10)
	pts := LocalOutline(e, 70000)
	if len(pts) != MaxCircleSegments {
		t.Fatalf("len = %d, want %d", len(pts), MaxCircleSegments)
	}
	_, inds := buildPolygonFan(pts, color.White)
	for i, idx := range inds {
		if int(idx) >= len(pts) {
			t.Fatalf("index %d = %d out of range", i, idx)
		}
	}
	if last := inds[len(inds)-1]; int(last) != len(pts)-1 {
		t.Errorf("last index = %d, want %d", last, len(pts)-1)
	}
}

func TestBuildPolygonFanTooManyPoints(t *testing.T) {
	pts := make([]Vec2, math.MaxUint16+2)
	if v, i := buildPolygonFan(pts, color.White); v != nil || i != nil {
		t.Error("expected nil for more points than uint16 can index")
	}
}
