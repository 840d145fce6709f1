package scene2d

import (
	"fmt"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/validation"
)

// ValidateScene performs structural validation on an assembled scene.
// It checks room containment, opening placement, and adjacency symmetry.
func ValidateScene(s *Scene2D) *validation.Report {
	r := validation.NewReport()

	if s == nil {
		r.AddError(validation.Result{
			Level:   validation.LevelSpatial,
			Message: "scene is nil",
		})
		return r
	}

	validateEnvelope(s, r)
	validateOpenings(s, r)
	validateAdjacency(s, r)

	return r
}

func validateEnvelope(s *Scene2D, r *validation.Report) {
	if s.Envelope == nil {
		if len(s.Rooms) > 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     "scene has rooms but no envelope",
				Path:        "envelope",
				ActualValue: len(s.Rooms),
			})
		}
		return
	}
	for i, room := range s.Rooms {
		if !s.Envelope.Contains(room.Rect) {
			r.AddError(validation.Result{
				Level:    validation.LevelSpatial,
				Message:  fmt.Sprintf("room %q extends outside the envelope", room.Name),
				Path:     fmt.Sprintf("rooms[%d]", i),
				RoomID:   room.ID,
				Expected: "inside envelope",
			})
		}
	}
}

func validateOpenings(s *Scene2D, r *validation.Report) {
	rects := make(map[string]geo.Rect, len(s.Rooms))
	for _, room := range s.Rooms {
		rects[room.ID] = room.Rect
	}

	check := func(kind string, i int, roomID string, p geo.Point, wall geo.WallSide) {
		rect, ok := rects[roomID]
		if !ok {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("%s references unknown room %q", kind, roomID),
				Path:        fmt.Sprintf("%s[%d]", kind, i),
				ActualValue: roomID,
				Expected:    "existing room ID",
			})
			return
		}
		if !rect.OnWall(wall, p, geo.DefaultTolerance*10) {
			r.AddError(validation.Result{
				Level:       validation.LevelSpatial,
				Message:     fmt.Sprintf("%s endpoint (%.3f, %.3f) is off its %s wall", kind, p.X, p.Y, wall),
				Path:        fmt.Sprintf("%s[%d]", kind, i),
				RoomID:      roomID,
				ActualValue: p.Coords(),
			})
		}
	}

	for i, d := range s.Doors {
		check("doors", i, d.RoomID, d.Start, d.Wall)
		check("doors", i, d.RoomID, d.End, d.Wall)
	}
	for i, w := range s.Windows {
		check("windows", i, w.RoomID, w.Start, w.Wall)
		check("windows", i, w.RoomID, w.End, w.Wall)
	}
}

func validateAdjacency(s *Scene2D, r *validation.Report) {
	if s.Adjacency == nil {
		return
	}
	rooms := s.Adjacency.Rooms
	for i, ra := range rooms {
		for _, n := range ra.Neighbors {
			if n.Room < 0 || n.Room >= len(rooms) {
				r.AddError(validation.Result{
					Level:       validation.LevelSpatial,
					Message:     fmt.Sprintf("room %d lists out-of-range neighbor %d", i, n.Room),
					Path:        fmt.Sprintf("adjacency.rooms[%d]", i),
					ActualValue: n.Room,
				})
				continue
			}
			if !rooms[n.Room].Shared.Has(n.Wall.Opposite()) {
				r.AddError(validation.Result{
					Level:    validation.LevelSpatial,
					Message:  fmt.Sprintf("room %d shares %s wall with room %d, but not the reverse", i, n.Wall, n.Room),
					Path:     fmt.Sprintf("adjacency.rooms[%d]", i),
					Expected: fmt.Sprintf("room %d shares %s wall", n.Room, n.Wall.Opposite()),
				})
			}
		}
	}
}
