package scene2d

import (
	"fmt"
	"sort"
	"time"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/layout"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/openings"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/validation"
)

// Options configure scene assembly.
type Options struct {
	// Tolerance for the adjacency touch test, in plan units.
	Tolerance float64
	Openings  openings.Options
	// Wall thickness per kind, in plan units.
	ExteriorThickness float64
	InteriorThickness float64
	// Cache, when set, memoizes adjacency across calls.
	Cache *layout.Cache
}

// DefaultOptions returns half-foot tolerance and stock wall weights.
func DefaultOptions() Options {
	return Options{
		Tolerance:         0.5,
		Openings:          openings.DefaultOptions(),
		ExteriorThickness: 0.5,
		InteriorThickness: 0.375,
	}
}

// Assemble resolves a floor into a Scene2D. Adjacency and opening placement
// are computed exactly once here; every consumer reads the result.
// Clamped openings and suppressed windows are reported, never fatal.
func Assemble(f *plan.Floor, opts Options) (*Scene2D, *validation.Report) {
	def := DefaultOptions()
	if opts.Tolerance <= 0 {
		opts.Tolerance = def.Tolerance
	}
	if opts.ExteriorThickness <= 0 {
		opts.ExteriorThickness = def.ExteriorThickness
	}
	if opts.InteriorThickness <= 0 {
		opts.InteriorThickness = def.InteriorThickness
	}

	r := validation.NewReport()

	var adj *layout.SharedWallMap
	if opts.Cache != nil {
		adj = opts.Cache.Resolve(f.Rooms, opts.Tolerance)
	} else {
		adj = layout.ResolveAdjacency(f.Rooms, opts.Tolerance)
	}

	sc := &Scene2D{
		Envelope:  layout.ComputeEnvelope(f.Rooms),
		Rooms:     assembleRooms(f.Rooms, adj),
		Walls:     assembleWalls(f.Rooms, adj, opts),
		Adjacency: adj,
	}

	resolver := openings.New(opts.Openings)
	sc.Doors = assembleDoors(f.Rooms, adj, resolver, r)
	sc.Windows = assembleWindows(f.Rooms, adj, resolver, r)
	sc.Metadata = assembleMetadata(f, sc, opts)

	return sc, r
}

func assembleMetadata(f *plan.Floor, sc *Scene2D, opts Options) Metadata {
	total := 0.0
	for _, room := range sc.Rooms {
		total += room.Area
	}
	return Metadata{
		Floor:       f.Name,
		Level:       f.Level,
		RoomCount:   len(sc.Rooms),
		DoorCount:   len(sc.Doors),
		WindowCount: len(sc.Windows),
		TotalArea:   total,
		Tolerance:   opts.Tolerance,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func assembleRooms(rooms []plan.Room, adj *layout.SharedWallMap) []Room2D {
	result := make([]Room2D, 0, len(rooms))
	for i, room := range rooms {
		result = append(result, Room2D{
			ID:        room.ID,
			Name:      room.Name,
			Rect:      room.Rect,
			Center:    room.Center().Coords(),
			Area:      room.Area(),
			Exterior:  adj.Exterior(i),
			Shared:    adj.Rooms[i].Shared,
			Neighbors: adj.Rooms[i].Neighbors,
		})
	}
	return result
}

// assembleWalls splits every room wall into interior spans shared with a
// neighbor and the exterior remainder.
func assembleWalls(rooms []plan.Room, adj *layout.SharedWallMap, opts Options) []Wall2D {
	var walls []Wall2D
	for i, room := range rooms {
		for _, side := range geo.WallSides {
			neighbors := adj.NeighborsOn(i, side)

			spans := make([]geo.Span, 0, len(neighbors))
			for _, n := range neighbors {
				spans = append(spans, n.Span)
				if n.Room > i {
					walls = append(walls, wallSegment(room, side, n.Span, WallInterior, opts.InteriorThickness, n.RoomID))
				}
			}

			for _, s := range subtractSpans(room.WallSpan(side), spans) {
				walls = append(walls, wallSegment(room, side, s, WallExterior, opts.ExteriorThickness, ""))
			}
		}
	}
	if walls == nil {
		walls = []Wall2D{}
	}
	return walls
}

func wallSegment(room plan.Room, side geo.WallSide, s geo.Span, kind WallKind, thickness float64, neighborID string) Wall2D {
	a, _ := room.Wall(side)
	var start, end geo.Point
	if side.Horizontal() {
		start, end = geo.Pt(s.Start, a.Y), geo.Pt(s.End, a.Y)
	} else {
		start, end = geo.Pt(a.X, s.Start), geo.Pt(a.X, s.End)
	}
	return Wall2D{
		RoomID:     room.ID,
		NeighborID: neighborID,
		Side:       side,
		Kind:       kind,
		Start:      start.Coords(),
		End:        end.Coords(),
		Thickness:  thickness,
	}
}

// subtractSpans returns the parts of whole not covered by any of cuts.
// Slivers shorter than geo.DefaultTolerance are dropped.
func subtractSpans(whole geo.Span, cuts []geo.Span) []geo.Span {
	sorted := append([]geo.Span(nil), cuts...)
	sort.Slice(sorted, func(a, b int) bool { return sorted[a].Start < sorted[b].Start })

	var out []geo.Span
	cursor := whole.Start
	for _, c := range sorted {
		if c.Start > cursor+geo.DefaultTolerance {
			out = append(out, geo.Span{Start: cursor, End: min(c.Start, whole.End)})
		}
		if c.End > cursor {
			cursor = c.End
		}
	}
	if whole.End > cursor+geo.DefaultTolerance {
		out = append(out, geo.Span{Start: cursor, End: whole.End})
	}
	return out
}

func assembleDoors(rooms []plan.Room, adj *layout.SharedWallMap, res *openings.Resolver, r *validation.Report) []Door2D {
	result := []Door2D{}
	for i, room := range rooms {
		for j, d := range room.Doors {
			path := fmt.Sprintf("rooms[%d].doors[%d]", i, j)
			g, ok := res.Door(room.Rect, d)
			if !ok {
				r.AddWarning(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("room %q: door on unknown wall %q skipped", room.Name, d.Wall),
					Path:        path,
					RoomID:      room.ID,
					ActualValue: string(d.Wall),
				})
				continue
			}
			reportClamp(r, room, d.Opening, g.Placement, path)
			result = append(result, Door2D{
				RoomID:       room.ID,
				Index:        j,
				Exterior:     adj.IsExterior(i, d.Wall),
				DoorGeometry: g,
			})
		}
	}
	return result
}

func assembleWindows(rooms []plan.Room, adj *layout.SharedWallMap, res *openings.Resolver, r *validation.Report) []Window2D {
	result := []Window2D{}
	for i, room := range rooms {
		for j, w := range room.Windows {
			path := fmt.Sprintf("rooms[%d].windows[%d]", i, j)
			if !w.Wall.Valid() {
				r.AddWarning(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("room %q: window on unknown wall %q skipped", room.Name, w.Wall),
					Path:        path,
					RoomID:      room.ID,
					ActualValue: string(w.Wall),
				})
				continue
			}
			g, ok := res.Window(room.Rect, w, adj.IsExterior(i, w.Wall))
			if !ok {
				r.AddWarning(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("room %q: window on interior %s wall suppressed", room.Name, w.Wall),
					Path:        path,
					RoomID:      room.ID,
					Expected:    "exterior wall",
					Suggestions: []string{"Move the window to an exterior wall or turn it into an opening"},
				})
				continue
			}
			reportClamp(r, room, w.Opening, g.Placement, path)
			result = append(result, Window2D{
				RoomID:         room.ID,
				Index:          j,
				Type:           w.Type,
				WindowGeometry: g,
			})
		}
	}
	return result
}

func reportClamp(r *validation.Report, room plan.Room, o plan.Opening, p openings.Placement, path string) {
	if !p.Clamped {
		return
	}
	length := room.WallLength(o.Wall)
	adjusted := 0.5
	if length > 0 {
		adjusted = (p.Offset + p.Width/2) / length
	}
	r.AddWarning(validation.Result{
		Level:       validation.LevelSpatial,
		Message:     fmt.Sprintf("room %q: opening on %s wall clamped to fit", room.Name, o.Wall),
		Path:        path,
		RoomID:      room.ID,
		ActualValue: fmt.Sprintf("position=%g width=%g", o.Position, o.Width),
		Adjusted:    fmt.Sprintf("position=%.4f width=%g", adjusted, p.Width),
	})
}
