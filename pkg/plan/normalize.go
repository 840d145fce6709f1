package plan

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
)

// Normalize fills in identifiers and defaults that producers may omit:
// room IDs, floor names, door swing, and window type. It does not move or
// clamp geometry; that is the opening resolver's job.
func Normalize(p *Plan) {
	if p.Units == "" {
		p.Units = "ft"
	}
	for i := range p.Floors {
		NormalizeFloor(&p.Floors[i], i)
	}
}

// NormalizeFloor applies Normalize to a single floor at the given index.
func NormalizeFloor(f *Floor, index int) {
	if f.Name == "" {
		f.Name = fmt.Sprintf("floor-%d", index+1)
	}
	for i := range f.Rooms {
		r := &f.Rooms[i]
		if r.ID == "" {
			r.ID = roomID(f.Name, i)
		}
		if r.Name == "" {
			r.Name = fmt.Sprintf("Room %d", i+1)
		}
		for j := range r.Doors {
			d := &r.Doors[j]
			if d.SwingDirection == "" {
				d.SwingDirection = SwingInward
			}
			if d.SwingSide == "" {
				d.SwingSide = HingeLeft
			}
		}
		for j := range r.Windows {
			if r.Windows[j].Type == "" {
				r.Windows[j].Type = WindowDouble
			}
		}
	}
}

// roomID derives a stable ID from the room's floor and index, so a plan
// re-read from disk keeps the same IDs.
func roomID(floor string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%d", floor, index))).String()
}

// PositionFromCenter converts an absolute distance of the opening's center
// from the wall start into the normalized position.
func PositionFromCenter(r geo.Rect, wall geo.WallSide, center float64) float64 {
	l := r.WallLength(wall)
	if l <= 0 {
		return 0.5
	}
	return center / l
}

// PositionFromLeftEdge converts an absolute distance of the opening's
// wall-start edge from the wall start, as persisted by older projects, into
// the normalized center position.
func PositionFromLeftEdge(r geo.Rect, wall geo.WallSide, offset, width float64) float64 {
	return PositionFromCenter(r, wall, offset+width/2)
}

// PlaceAt builds an opening of the given width centered on the point of the
// nearest wall of r to p, as an editor does on click.
func PlaceAt(r geo.Rect, p geo.Point, width float64) Opening {
	best := geo.North
	bestDist := math.Inf(1)
	for _, w := range geo.WallSides {
		var d float64
		switch w {
		case geo.North:
			d = math.Abs(p.Y - r.Y)
		case geo.South:
			d = math.Abs(p.Y - r.MaxY())
		case geo.West:
			d = math.Abs(p.X - r.X)
		case geo.East:
			d = math.Abs(p.X - r.MaxX())
		}
		if d < bestDist {
			best, bestDist = w, d
		}
	}

	along := p.Y - r.Y
	if best.Horizontal() {
		along = p.X - r.X
	}
	return Opening{
		Wall:     best,
		Position: PositionFromCenter(r, best, along),
		Width:    width,
	}
}
