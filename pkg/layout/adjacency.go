package layout

import (
	"math"
	"sort"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
)

// IndexThreshold is the room count above which candidate pairs come from an
// R-tree instead of the all-pairs scan.
const IndexThreshold = 64

// Neighbor records one shared boundary seen from a room.
type Neighbor struct {
	Room   int          `json:"room"`
	RoomID string       `json:"room_id,omitempty"`
	Wall   geo.WallSide `json:"wall"`
	Span   geo.Span     `json:"span"`
}

// RoomAdjacency holds the shared walls of one room.
type RoomAdjacency struct {
	Shared    geo.WallSet `json:"shared"`
	Neighbors []Neighbor  `json:"neighbors"`
}

// SharedWallMap is the adjacency of every room on a floor, indexed like the
// room slice it was derived from. It is recomputed on demand and never
// persisted.
type SharedWallMap struct {
	Tolerance float64         `json:"tolerance"`
	Rooms     []RoomAdjacency `json:"rooms"`
}

// IsShared reports whether wall w of room i borders another room.
func (m *SharedWallMap) IsShared(i int, w geo.WallSide) bool {
	if i < 0 || i >= len(m.Rooms) {
		return false
	}
	return m.Rooms[i].Shared.Has(w)
}

// IsExterior reports whether wall w of room i has no recorded neighbor.
// Exterior walls are drawn heavier and may carry windows.
func (m *SharedWallMap) IsExterior(i int, w geo.WallSide) bool {
	return !m.IsShared(i, w)
}

// Exterior returns the exterior walls of room i.
func (m *SharedWallMap) Exterior(i int) geo.WallSet {
	if i < 0 || i >= len(m.Rooms) {
		return geo.WallSet(0).Complement()
	}
	return m.Rooms[i].Shared.Complement()
}

// NeighborsOn returns the neighbors of room i across wall w.
func (m *SharedWallMap) NeighborsOn(i int, w geo.WallSide) []Neighbor {
	if i < 0 || i >= len(m.Rooms) {
		return nil
	}
	var out []Neighbor
	for _, n := range m.Rooms[i].Neighbors {
		if n.Wall == w {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy of the map.
func (m *SharedWallMap) Clone() *SharedWallMap {
	out := &SharedWallMap{Tolerance: m.Tolerance, Rooms: make([]RoomAdjacency, len(m.Rooms))}
	for i, ra := range m.Rooms {
		out.Rooms[i] = RoomAdjacency{
			Shared:    ra.Shared,
			Neighbors: append([]Neighbor(nil), ra.Neighbors...),
		}
	}
	return out
}

// ResolveAdjacency finds, for each room, which walls touch another room's
// opposite wall within tolerance. The tolerance is in the same unit as the
// room rectangles.
func ResolveAdjacency(rooms []plan.Room, tolerance float64) *SharedWallMap {
	rects := make([]geo.Rect, len(rooms))
	for i, r := range rooms {
		rects[i] = r.Rect
	}
	m := ResolveRects(rects, tolerance)
	for i := range m.Rooms {
		for k := range m.Rooms[i].Neighbors {
			n := &m.Rooms[i].Neighbors[k]
			n.RoomID = rooms[n.Room].ID
		}
	}
	return m
}

// ResolveRects is ResolveAdjacency over bare rectangles, for callers working
// in a scaled coordinate space.
func ResolveRects(rects []geo.Rect, tolerance float64) *SharedWallMap {
	m := &SharedWallMap{Tolerance: tolerance, Rooms: make([]RoomAdjacency, len(rects))}
	for i := range m.Rooms {
		m.Rooms[i].Neighbors = []Neighbor{}
	}

	if len(rects) > IndexThreshold {
		for _, p := range candidatePairs(rects, tolerance) {
			touch(m, rects, p[0], p[1], tolerance)
		}
	} else {
		for i := 0; i < len(rects); i++ {
			for j := i + 1; j < len(rects); j++ {
				touch(m, rects, i, j, tolerance)
			}
		}
	}

	for i := range m.Rooms {
		sortNeighbors(m.Rooms[i].Neighbors)
	}
	return m
}

// touch runs the four axis-aligned touch tests for the pair i < j and
// records every match on both rooms with the same overlap span.
func touch(m *SharedWallMap, rects []geo.Rect, i, j int, tol float64) {
	a, b := rects[i], rects[j]

	if ys, ok := a.YSpan().Overlap(b.YSpan()); ok {
		if math.Abs(a.MaxX()-b.X) < tol {
			record(m, i, j, geo.East, ys)
		}
		if math.Abs(b.MaxX()-a.X) < tol {
			record(m, i, j, geo.West, ys)
		}
	}

	if xs, ok := a.XSpan().Overlap(b.XSpan()); ok {
		if math.Abs(a.MaxY()-b.Y) < tol {
			record(m, i, j, geo.South, xs)
		}
		if math.Abs(b.MaxY()-a.Y) < tol {
			record(m, i, j, geo.North, xs)
		}
	}
}

// record stores that wall w of room i touches the opposite wall of room j.
func record(m *SharedWallMap, i, j int, w geo.WallSide, span geo.Span) {
	m.Rooms[i].Shared = m.Rooms[i].Shared.Add(w)
	m.Rooms[i].Neighbors = append(m.Rooms[i].Neighbors, Neighbor{Room: j, Wall: w, Span: span})

	o := w.Opposite()
	m.Rooms[j].Shared = m.Rooms[j].Shared.Add(o)
	m.Rooms[j].Neighbors = append(m.Rooms[j].Neighbors, Neighbor{Room: i, Wall: o, Span: span})
}

func sortNeighbors(ns []Neighbor) {
	sort.Slice(ns, func(a, b int) bool {
		if ns[a].Room != ns[b].Room {
			return ns[a].Room < ns[b].Room
		}
		return ns[a].Wall < ns[b].Wall
	})
}
