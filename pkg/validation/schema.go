package validation

import (
	"fmt"
	"math"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
)

// ValidatePlan performs schema validation on a parsed plan.
// It checks structural correctness before any geometry is resolved.
func ValidatePlan(p *plan.Plan) *Report {
	r := NewReport()

	if len(p.Floors) == 0 {
		r.AddWarning(Result{
			Level:    LevelSchema,
			Message:  "plan has no floors; nothing will be drawn or exported",
			Path:     "floors",
			Expected: "at least 1 floor",
		})
	}

	seen := make(map[string]int, len(p.Floors))
	for i := range p.Floors {
		f := &p.Floors[i]
		if prev, ok := seen[f.Name]; ok && f.Name != "" {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("duplicate floor name %q at indices %d and %d", f.Name, prev, i),
				Path:        fmt.Sprintf("floors[%d].name", i),
				ActualValue: f.Name,
			})
		}
		seen[f.Name] = i
		r.Merge(validateFloorAt(f, fmt.Sprintf("floors[%d]", i)))
	}

	return r
}

// ValidateFloor performs schema validation on a single floor.
func ValidateFloor(f *plan.Floor) *Report {
	return validateFloorAt(f, "floor")
}

func validateFloorAt(f *plan.Floor, path string) *Report {
	r := NewReport()

	if len(f.Rooms) == 0 {
		r.AddInfo(Result{
			Level:   LevelSchema,
			Message: fmt.Sprintf("floor %q has no rooms", f.Name),
			Path:    path + ".rooms",
		})
		return r
	}

	ids := make(map[string]int, len(f.Rooms))
	for i := range f.Rooms {
		room := &f.Rooms[i]
		roomPath := fmt.Sprintf("%s.rooms[%d]", path, i)

		if room.ID != "" {
			if prev, ok := ids[room.ID]; ok {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("duplicate room ID %q at indices %d and %d", room.ID, prev, i),
					Path:        roomPath + ".id",
					RoomID:      room.ID,
					ActualValue: room.ID,
				})
			}
			ids[room.ID] = i
		}

		validateRoom(room, roomPath, r)
	}

	return r
}

func validateRoom(room *plan.Room, path string, r *Report) {
	if !finite(room.X) || !finite(room.Y) || !finite(room.Width) || !finite(room.Height) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("room %q has a non-finite rectangle", room.Name),
			Path:        path,
			RoomID:      room.ID,
			ActualValue: fmt.Sprintf("(%g,%g) %gx%g", room.X, room.Y, room.Width, room.Height),
			Expected:    "finite x, y, width and height",
		})
		return
	}
	if room.Width <= 0 || room.Height <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("room %q must have positive width and height", room.Name),
			Path:        path,
			RoomID:      room.ID,
			ActualValue: fmt.Sprintf("%gx%g", room.Width, room.Height),
			Expected:    "> 0",
		})
		return
	}
	if room.X < 0 || room.Y < 0 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("room %q has a negative origin", room.Name),
			Path:        path,
			RoomID:      room.ID,
			ActualValue: fmt.Sprintf("(%g,%g)", room.X, room.Y),
			Expected:    ">= 0",
		})
	}

	for j, d := range room.Doors {
		doorPath := fmt.Sprintf("%s.doors[%d]", path, j)
		validateOpening(room, d.Opening, doorPath, r)

		if d.SwingDirection != plan.SwingInward && d.SwingDirection != plan.SwingOutward {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("room %q: unknown swing_direction %q", room.Name, d.SwingDirection),
				Path:        doorPath + ".swing_direction",
				RoomID:      room.ID,
				ActualValue: string(d.SwingDirection),
				Expected:    "inward | outward",
			})
		}
		if d.SwingSide != plan.HingeLeft && d.SwingSide != plan.HingeRight {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("room %q: unknown swing_side %q", room.Name, d.SwingSide),
				Path:        doorPath + ".swing_side",
				RoomID:      room.ID,
				ActualValue: string(d.SwingSide),
				Expected:    "left | right",
			})
		}
	}

	for j, w := range room.Windows {
		winPath := fmt.Sprintf("%s.windows[%d]", path, j)
		validateOpening(room, w.Opening, winPath, r)

		if w.SillHeight < 0 {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("room %q: window sill_height is negative", room.Name),
				Path:        winPath + ".sill_height",
				RoomID:      room.ID,
				ActualValue: w.SillHeight,
				Expected:    ">= 0",
			})
		}
	}
}

func validateOpening(room *plan.Room, o plan.Opening, path string, r *Report) {
	if !o.Wall.Valid() {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("room %q: opening references unknown wall %q", room.Name, o.Wall),
			Path:        path + ".wall",
			RoomID:      room.ID,
			ActualValue: string(o.Wall),
			Expected:    "north | south | east | west",
		})
		return
	}

	if !finite(o.Position) || !finite(o.Width) {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("room %q: opening on the %s wall has a non-finite position or width", room.Name, o.Wall),
			Path:        path,
			RoomID:      room.ID,
			ActualValue: fmt.Sprintf("position=%g width=%g", o.Position, o.Width),
			Expected:    "finite numbers",
		})
		return
	}

	if o.Width <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("room %q: opening width must be > 0", room.Name),
			Path:        path + ".width",
			RoomID:      room.ID,
			ActualValue: o.Width,
			Expected:    "> 0",
		})
	} else if l := room.WallLength(o.Wall); o.Width > l {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("room %q: opening (%g) is wider than the %s wall (%g)", room.Name, o.Width, o.Wall, l),
			Path:        path + ".width",
			RoomID:      room.ID,
			ActualValue: o.Width,
			Expected:    fmt.Sprintf("<= %g", l),
		})
	}

	if o.Position < 0 || o.Position > 1 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("room %q: opening position %g is not a fraction of the %s wall", room.Name, o.Position, o.Wall),
			Path:        path + ".position",
			RoomID:      room.ID,
			ActualValue: o.Position,
			Expected:    "0-1",
			Suggestions: []string{
				"Positions are normalized fractions of the wall length measured to the opening center",
				"Convert absolute offsets with plan.PositionFromLeftEdge or plan.PositionFromCenter",
			},
		})
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
