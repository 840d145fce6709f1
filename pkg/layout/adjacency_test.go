package layout

import (
	"reflect"
	"testing"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
)

func rooms(rects ...geo.Rect) []plan.Room {
	out := make([]plan.Room, len(rects))
	for i, r := range rects {
		out[i] = plan.Room{ID: string(rune('a' + i)), Name: string(rune('A' + i)), Rect: r}
	}
	return out
}

// gridRects lays out n x n touching cells of the given size.
func gridRects(n int, size float64) []geo.Rect {
	var rects []geo.Rect
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			rects = append(rects, geo.R(float64(col)*size, float64(row)*size, size, size))
		}
	}
	return rects
}

func bruteForce(rects []geo.Rect, tol float64) *SharedWallMap {
	m := &SharedWallMap{Tolerance: tol, Rooms: make([]RoomAdjacency, len(rects))}
	for i := range m.Rooms {
		m.Rooms[i].Neighbors = []Neighbor{}
	}
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			touch(m, rects, i, j, tol)
		}
	}
	for i := range m.Rooms {
		sortNeighbors(m.Rooms[i].Neighbors)
	}
	return m
}

func TestTwoRoomsShareWall(t *testing.T) {
	m := ResolveAdjacency(rooms(geo.R(0, 0, 10, 10), geo.R(10, 0, 10, 10)), 1)

	if !m.IsShared(0, geo.East) {
		t.Error("expected room 0 east wall shared")
	}
	if !m.IsShared(1, geo.West) {
		t.Error("expected room 1 west wall shared")
	}
	if m.Rooms[0].Shared.Len() != 1 || m.Rooms[1].Shared.Len() != 1 {
		t.Errorf("expected exactly one shared wall each, got %v and %v",
			m.Rooms[0].Shared.Sides(), m.Rooms[1].Shared.Sides())
	}

	n := m.Rooms[0].Neighbors
	if len(n) != 1 || n[0].Room != 1 || n[0].RoomID != "b" {
		t.Fatalf("unexpected neighbors of room 0: %+v", n)
	}
	if n[0].Span != (geo.Span{Start: 0, End: 10}) {
		t.Errorf("expected span [0,10], got %+v", n[0].Span)
	}
	back := m.Rooms[1].Neighbors
	if len(back) != 1 || back[0].Room != 0 || back[0].Wall != geo.West || back[0].Span != n[0].Span {
		t.Errorf("unexpected neighbors of room 1: %+v", back)
	}
}

func TestVerticalStacking(t *testing.T) {
	m := ResolveAdjacency(rooms(geo.R(0, 10, 10, 10), geo.R(0, 0, 10, 10)), 1)
	if !m.IsShared(0, geo.North) || !m.IsShared(1, geo.South) {
		t.Errorf("expected north/south pair, got %v and %v",
			m.Rooms[0].Shared.Sides(), m.Rooms[1].Shared.Sides())
	}
}

func TestPartialOverlapSpan(t *testing.T) {
	m := ResolveAdjacency(rooms(geo.R(0, 0, 10, 10), geo.R(10, 5, 10, 10)), 0.5)
	n := m.NeighborsOn(0, geo.East)
	if len(n) != 1 {
		t.Fatalf("expected 1 east neighbor, got %d", len(n))
	}
	if n[0].Span != (geo.Span{Start: 5, End: 10}) {
		t.Errorf("expected span [5,10], got %+v", n[0].Span)
	}
}

func TestCornerTouchIsNotAdjacent(t *testing.T) {
	m := ResolveAdjacency(rooms(geo.R(0, 0, 10, 10), geo.R(10, 10, 10, 10)), 1)
	for i := range m.Rooms {
		if m.Rooms[i].Shared.Len() != 0 {
			t.Errorf("room %d: expected no shared walls, got %v", i, m.Rooms[i].Shared.Sides())
		}
	}
}

func TestTolerance(t *testing.T) {
	tests := []struct {
		name   string
		gap    float64
		tol    float64
		shared bool
	}{
		{"within tolerance", 0.4, 0.5, true},
		{"beyond tolerance", 2, 0.5, false},
		{"exactly tolerance", 0.5, 0.5, false},
		{"slight overlap", -0.2, 0.5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ResolveAdjacency(rooms(geo.R(0, 0, 10, 10), geo.R(10+tt.gap, 0, 10, 10)), tt.tol)
			if m.IsShared(0, geo.East) != tt.shared {
				t.Errorf("shared = %v, want %v", m.IsShared(0, geo.East), tt.shared)
			}
		})
	}
}

func TestAdjacencySymmetry(t *testing.T) {
	rects := []geo.Rect{
		geo.R(0, 0, 20, 15), geo.R(20, 0, 12, 15),
		geo.R(0, 15, 16, 12), geo.R(16, 15, 8, 12),
		geo.R(24, 15, 8, 6), geo.R(40, 0, 5, 5),
	}
	m := ResolveRects(rects, 0.5)

	for i, ra := range m.Rooms {
		for _, n := range ra.Neighbors {
			found := false
			for _, back := range m.Rooms[n.Room].Neighbors {
				if back.Room == i && back.Wall == n.Wall.Opposite() && back.Span == n.Span {
					found = true
				}
			}
			if !found {
				t.Errorf("room %d %s -> room %d has no mirrored record", i, n.Wall, n.Room)
			}
		}
	}
	if m.Rooms[5].Shared.Len() != 0 {
		t.Errorf("detached room should have no shared walls, got %v", m.Rooms[5].Shared.Sides())
	}
}

func TestAdjacencyIdempotent(t *testing.T) {
	rs := rooms(gridRects(4, 10)...)
	a := ResolveAdjacency(rs, 1)
	b := ResolveAdjacency(rs, 1)
	if !reflect.DeepEqual(a, b) {
		t.Error("repeated resolution produced different results")
	}
}

func TestIndexedMatchesBruteForce(t *testing.T) {
	rects := gridRects(10, 5)
	// Knock a gap into the middle so not every cell is interior.
	rects[45] = geo.R(rects[45].X+1, rects[45].Y+1, 3, 3)
	if len(rects) <= IndexThreshold {
		t.Fatalf("test grid must exceed IndexThreshold (%d)", IndexThreshold)
	}

	indexed := ResolveRects(rects, 0.5)
	brute := bruteForce(rects, 0.5)
	if !reflect.DeepEqual(indexed, brute) {
		t.Error("indexed adjacency differs from the all-pairs scan")
	}

	// An interior cell of a full grid shares all four walls.
	if indexed.Rooms[11].Shared.Len() != 4 {
		t.Errorf("expected 4 shared walls for cell 11, got %v", indexed.Rooms[11].Shared.Sides())
	}
	if indexed.Rooms[45].Shared.Len() != 0 {
		t.Errorf("shrunken cell should be detached, got %v", indexed.Rooms[45].Shared.Sides())
	}
}

func TestExteriorWalls(t *testing.T) {
	m := ResolveAdjacency(rooms(geo.R(0, 0, 10, 10), geo.R(10, 0, 10, 10)), 1)
	ext := m.Exterior(0)
	if ext.Has(geo.East) || !ext.Has(geo.North) || ext.Len() != 3 {
		t.Errorf("unexpected exterior walls %v", ext.Sides())
	}
	if !m.IsExterior(0, geo.West) || m.IsExterior(0, geo.East) {
		t.Error("IsExterior disagrees with Shared")
	}
	if m.Exterior(7).Len() != 4 {
		t.Error("out-of-range room should report all walls exterior")
	}
}

func TestResolveEmpty(t *testing.T) {
	m := ResolveAdjacency(nil, 1)
	if len(m.Rooms) != 0 {
		t.Errorf("expected no rooms, got %d", len(m.Rooms))
	}
}

func TestCloneIsIndependent(t *testing.T) {
	m := ResolveAdjacency(rooms(geo.R(0, 0, 10, 10), geo.R(10, 0, 10, 10)), 1)
	c := m.Clone()
	c.Rooms[0].Neighbors[0].Room = 99
	if m.Rooms[0].Neighbors[0].Room != 1 {
		t.Error("mutating the clone changed the original")
	}
}
