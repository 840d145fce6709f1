package openings

import (
	"fmt"
	"math"
	"testing"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
)

const tolerance = 1e-6

func testRoom() plan.Room {
	return plan.Room{ID: "r", Name: "Room", Rect: geo.R(0, 0, 20, 15)}
}

func approxPoint(a, b geo.Point) bool {
	return geo.ApproxEqual(a.X, b.X, tolerance) && geo.ApproxEqual(a.Y, b.Y, tolerance)
}

// dir returns the unit vector for a screen angle in degrees.
func dir(deg float64) geo.Point {
	rad := deg * math.Pi / 180
	return geo.Pt(math.Cos(rad), math.Sin(rad))
}

func TestResolvePositionSouthDoor(t *testing.T) {
	p, ok := ResolvePosition(testRoom(), plan.Opening{Wall: geo.South, Position: 0.5, Width: 3})
	if !ok {
		t.Fatal("expected placement")
	}
	if !approxPoint(p.Start, geo.Pt(8.5, 15)) {
		t.Errorf("expected start (8.5,15), got %+v", p.Start)
	}
	if !approxPoint(p.End, geo.Pt(11.5, 15)) {
		t.Errorf("expected end (11.5,15), got %+v", p.End)
	}
	if !p.WallIsHorizontal {
		t.Error("south wall should be horizontal")
	}
	if p.Clamped {
		t.Error("in-range opening should not be clamped")
	}
	if p.Offset != 8.5 {
		t.Errorf("expected offset 8.5, got %f", p.Offset)
	}
}

func TestResolvePositionEastWall(t *testing.T) {
	p, _ := ResolvePosition(testRoom(), plan.Opening{Wall: geo.East, Position: 0.5, Width: 3})
	if !approxPoint(p.Start, geo.Pt(20, 6)) || !approxPoint(p.End, geo.Pt(20, 9)) {
		t.Errorf("expected (20,6)-(20,9), got %+v-%+v", p.Start, p.End)
	}
	if p.WallIsHorizontal {
		t.Error("east wall should not be horizontal")
	}
}

func TestResolvePositionClamps(t *testing.T) {
	tests := []struct {
		name  string
		o     plan.Opening
		start geo.Point
		end   geo.Point
	}{
		{"below min", plan.Opening{Wall: geo.North, Position: 0, Width: 2}, geo.Pt(1, 0), geo.Pt(3, 0)},
		{"above max", plan.Opening{Wall: geo.North, Position: 0.95, Width: 3}, geo.Pt(16.5, 0), geo.Pt(19.5, 0)},
		{"absolute offset", plan.Opening{Wall: geo.West, Position: 7, Width: 3}, geo.Pt(0, 12), geo.Pt(0, 15)},
		{"hangs off corner", plan.Opening{Wall: geo.West, Position: 0.1, Width: 4}, geo.Pt(0, 0), geo.Pt(0, 4)},
		{"wider than wall", plan.Opening{Wall: geo.East, Position: 0.5, Width: 30}, geo.Pt(20, 0), geo.Pt(20, 15)},
		{"nan position", plan.Opening{Wall: geo.North, Position: math.NaN(), Width: 3}, geo.Pt(8.5, 0), geo.Pt(11.5, 0)},
		{"infinite position", plan.Opening{Wall: geo.North, Position: math.Inf(1), Width: 3}, geo.Pt(8.5, 0), geo.Pt(11.5, 0)},
		{"nan width", plan.Opening{Wall: geo.South, Position: 0.5, Width: math.NaN()}, geo.Pt(10, 15), geo.Pt(10, 15)},
		{"infinite width", plan.Opening{Wall: geo.South, Position: 0.5, Width: math.Inf(1)}, geo.Pt(10, 15), geo.Pt(10, 15)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := ResolvePosition(testRoom(), tt.o)
			if !ok {
				t.Fatal("expected placement")
			}
			if !p.Clamped {
				t.Error("expected Clamped")
			}
			if !approxPoint(p.Start, tt.start) || !approxPoint(p.End, tt.end) {
				t.Errorf("expected %+v-%+v, got %+v-%+v", tt.start, tt.end, p.Start, p.End)
			}
		})
	}
}

func TestResolvePositionUnknownWall(t *testing.T) {
	if _, ok := ResolvePosition(testRoom(), plan.Opening{Wall: "up", Position: 0.5, Width: 3}); ok {
		t.Error("expected no placement for unknown wall")
	}
}

func TestOpeningsLieOnTheirWall(t *testing.T) {
	room := testRoom()
	for _, w := range geo.WallSides {
		for _, pos := range []float64{-1, 0, 0.1, 0.33, 0.5, 0.77, 0.9, 1, 3} {
			for _, width := range []float64{0.5, 3, 8} {
				p, ok := ResolvePosition(room, plan.Opening{Wall: w, Position: pos, Width: width})
				if !ok {
					t.Fatalf("%s: expected placement", w)
				}
				if !room.OnWall(w, p.Start, tolerance) || !room.OnWall(w, p.End, tolerance) {
					t.Errorf("%s pos=%g width=%g: %+v-%+v not on wall", w, pos, width, p.Start, p.End)
				}
				if !geo.ApproxEqual(p.Start.Distance(p.End), p.Width, tolerance) {
					t.Errorf("%s pos=%g width=%g: length %f != width %f", w, pos, width, p.Start.Distance(p.End), p.Width)
				}
			}
		}
	}
}

func TestNorthInwardLeftSwing(t *testing.T) {
	d, ok := ResolveDoor(testRoom(), plan.Door{
		Opening:        plan.Opening{Wall: geo.North, Position: 0.5, Width: 3},
		SwingDirection: plan.SwingInward,
		SwingSide:      plan.HingeLeft,
	})
	if !ok {
		t.Fatal("expected door geometry")
	}
	if d.Swing.StartAngle != 0 || d.Swing.EndAngle != 90 {
		t.Errorf("expected arc 0-90, got %g-%g", d.Swing.StartAngle, d.Swing.EndAngle)
	}
	if !approxPoint(d.Hinge, geo.Pt(8.5, 0)) {
		t.Errorf("expected hinge at (8.5,0), got %+v", d.Hinge)
	}
	if !approxPoint(d.LeafEnd, geo.Pt(8.5, 3)) {
		t.Errorf("expected leaf end at (8.5,3), got %+v", d.LeafEnd)
	}
	if d.Swing.Radius != 3 {
		t.Errorf("expected radius 3, got %g", d.Swing.Radius)
	}
}

func TestSwingTableCoversEveryCase(t *testing.T) {
	room := testRoom()
	sides := []plan.SwingSide{plan.HingeLeft, plan.HingeRight}
	dirs := []plan.SwingDirection{plan.SwingInward, plan.SwingOutward}

	if len(swingTable) != 16 {
		t.Fatalf("expected 16 table entries, got %d", len(swingTable))
	}

	for _, w := range geo.WallSides {
		for _, side := range sides {
			for _, sd := range dirs {
				name := fmt.Sprintf("%s/%s/%s", w, side, sd)
				t.Run(name, func(t *testing.T) {
					d, ok := ResolveDoor(room, plan.Door{
						Opening:        plan.Opening{Wall: w, Position: 0.5, Width: 3},
						SwingDirection: sd,
						SwingSide:      side,
					})
					if !ok {
						t.Fatal("expected door geometry")
					}

					wantHinge := d.Start
					other := d.End
					if side == plan.HingeRight {
						wantHinge, other = d.End, d.Start
					}
					if !approxPoint(d.Hinge, wantHinge) {
						t.Errorf("hinge %+v, want %+v", d.Hinge, wantHinge)
					}

					// One arc end is the closed leaf, reaching the other jamb;
					// the other end is the open leaf.
					a := d.Hinge.Add(dir(d.Swing.StartAngle).Scale(d.Swing.Radius))
					b := d.Hinge.Add(dir(d.Swing.EndAngle).Scale(d.Swing.Radius))
					if !approxPoint(a, other) && !approxPoint(b, other) {
						t.Errorf("neither arc end %+v / %+v reaches the other jamb %+v", a, b, other)
					}
					if !approxPoint(a, d.LeafEnd) && !approxPoint(b, d.LeafEnd) {
						t.Errorf("neither arc end %+v / %+v matches the open leaf %+v", a, b, d.LeafEnd)
					}

					mid := d.Hinge.Add(dir(d.Swing.StartAngle + 45).Scale(d.Swing.Radius))
					inside := mid.X > room.X && mid.X < room.MaxX() && mid.Y > room.Y && mid.Y < room.MaxY()
					if inside != (sd == plan.SwingInward) {
						t.Errorf("arc midpoint %+v inside=%v for %s swing", mid, inside, sd)
					}
				})
			}
		}
	}
}

func TestDoorDefaultsSwing(t *testing.T) {
	d, ok := ResolveDoor(testRoom(), plan.Door{Opening: plan.Opening{Wall: geo.North, Position: 0.5, Width: 3}})
	if !ok {
		t.Fatal("expected door geometry")
	}
	if d.Swing.StartAngle != 0 {
		t.Errorf("expected default inward/left swing, got start %g", d.Swing.StartAngle)
	}
}

func TestToDXFAngles(t *testing.T) {
	tests := []struct {
		start, end       float64
		dxfStart, dxfEnd float64
	}{
		{0, 90, 270, 0},
		{90, 180, 180, 270},
		{180, 270, 90, 180},
		{270, 360, 0, 90},
	}
	for _, tt := range tests {
		s, e := ToDXFAngles(tt.start, tt.end)
		if s != tt.dxfStart || e != tt.dxfEnd {
			t.Errorf("ToDXFAngles(%g,%g) = (%g,%g), want (%g,%g)", tt.start, tt.end, s, e, tt.dxfStart, tt.dxfEnd)
		}
	}
}

func TestDXFArcSweepsSameQuadrant(t *testing.T) {
	// A screen arc mirrored across X must cover the mirrored points.
	sw := Swing{Center: geo.Pt(0, 0), Radius: 1, StartAngle: 0, EndAngle: 90}
	s, e := sw.DXFAngles()
	screenMid := dir(45)
	rad := (s + 45) * math.Pi / 180
	dxfMid := geo.Pt(math.Cos(rad), math.Sin(rad))
	if !approxPoint(screenMid.FlipY(), dxfMid) {
		t.Errorf("DXF arc %g-%g does not mirror the screen arc", s, e)
	}
}

func TestWindowOnInteriorWall(t *testing.T) {
	w := plan.Window{Opening: plan.Opening{Wall: geo.East, Position: 0.5, Width: 4}, Type: plan.WindowDouble}
	if _, ok := ResolveWindow(testRoom(), w, false); ok {
		t.Error("windows on interior walls must not produce geometry")
	}
}

func TestWindowFrameAndMullions(t *testing.T) {
	w := plan.Window{Opening: plan.Opening{Wall: geo.North, Position: 0.5, Width: 4}, Type: plan.WindowTriple}
	g, ok := ResolveWindow(testRoom(), w, true)
	if !ok {
		t.Fatal("expected window geometry")
	}
	if !approxPoint(g.Frame[0].Start, geo.Pt(8, -0.25)) || !approxPoint(g.Frame[0].End, geo.Pt(12, -0.25)) {
		t.Errorf("unexpected outer frame %+v", g.Frame[0])
	}
	if !approxPoint(g.Frame[1].Start, geo.Pt(8, 0.25)) || !approxPoint(g.Frame[1].End, geo.Pt(12, 0.25)) {
		t.Errorf("unexpected inner frame %+v", g.Frame[1])
	}
	if len(g.Mullions) != 2 {
		t.Fatalf("expected 2 mullions, got %d", len(g.Mullions))
	}
	if !geo.ApproxEqual(g.Mullions[0].Start.X, 8+4.0/3, tolerance) {
		t.Errorf("unexpected first mullion %+v", g.Mullions[0])
	}
}

func TestWindowVerticalWallFrame(t *testing.T) {
	r := New(Options{FrameGap: 0.5})
	w := plan.Window{Opening: plan.Opening{Wall: geo.West, Position: 0.5, Width: 3}, Type: plan.WindowSingle}
	g, ok := r.Window(geo.R(0, 0, 20, 15), w, true)
	if !ok {
		t.Fatal("expected window geometry")
	}
	if g.Frame[0].Start.X != -0.5 || g.Frame[1].Start.X != 0.5 {
		t.Errorf("unexpected frame offsets %+v", g.Frame)
	}
	if len(g.Mullions) != 0 {
		t.Errorf("single window should have no mullions, got %d", len(g.Mullions))
	}
}

func TestNewFallsBackToDefaults(t *testing.T) {
	o := New(Options{}).Options()
	if o != DefaultOptions() {
		t.Errorf("expected defaults, got %+v", o)
	}
}
