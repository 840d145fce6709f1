package openings

import (
	"math"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
)

// Angles in this package use the screen convention: degrees, 0 along +X
// (east), 90 along +Y (south), increasing clockwise as drawn on screen.

type swingKey struct {
	wall geo.WallSide
	side plan.SwingSide
	dir  plan.SwingDirection
}

type swingEntry struct {
	hingeAtEnd bool    // hinge on the wall-end side of the opening
	start      float64 // arc start; the arc sweeps +90 from here
	open       float64 // direction of the fully open leaf
}

// swingTable enumerates every (wall, hinge side, direction) combination.
// The arc runs between the closed leaf (lying along the wall toward the
// other jamb) and the open leaf (perpendicular to the wall).
var swingTable = map[swingKey]swingEntry{
	{geo.North, plan.HingeLeft, plan.SwingInward}:   {false, 0, 90},
	{geo.North, plan.HingeRight, plan.SwingInward}:  {true, 90, 90},
	{geo.North, plan.HingeLeft, plan.SwingOutward}:  {false, 270, 270},
	{geo.North, plan.HingeRight, plan.SwingOutward}: {true, 180, 270},

	{geo.South, plan.HingeLeft, plan.SwingInward}:   {false, 270, 270},
	{geo.South, plan.HingeRight, plan.SwingInward}:  {true, 180, 270},
	{geo.South, plan.HingeLeft, plan.SwingOutward}:  {false, 0, 90},
	{geo.South, plan.HingeRight, plan.SwingOutward}: {true, 90, 90},

	{geo.West, plan.HingeLeft, plan.SwingInward}:   {false, 0, 0},
	{geo.West, plan.HingeRight, plan.SwingInward}:  {true, 270, 0},
	{geo.West, plan.HingeLeft, plan.SwingOutward}:  {false, 90, 180},
	{geo.West, plan.HingeRight, plan.SwingOutward}: {true, 180, 180},

	{geo.East, plan.HingeLeft, plan.SwingInward}:   {false, 90, 180},
	{geo.East, plan.HingeRight, plan.SwingInward}:  {true, 180, 180},
	{geo.East, plan.HingeLeft, plan.SwingOutward}:  {false, 0, 0},
	{geo.East, plan.HingeRight, plan.SwingOutward}: {true, 270, 0},
}

// axis maps the four table directions to unit vectors.
var axis = map[float64]geo.Point{
	0:   {X: 1, Y: 0},
	90:  {X: 0, Y: 1},
	180: {X: -1, Y: 0},
	270: {X: 0, Y: -1},
}

func lookupSwing(wall geo.WallSide, side plan.SwingSide, dir plan.SwingDirection) (swingEntry, bool) {
	if side != plan.HingeRight {
		side = plan.HingeLeft
	}
	if dir != plan.SwingOutward {
		dir = plan.SwingInward
	}
	e, ok := swingTable[swingKey{wall, side, dir}]
	return e, ok
}

// Swing is the quarter-circle glyph of a door: centered on the hinge, radius
// equal to the door width, sweeping from StartAngle to EndAngle
// (StartAngle + 90) in screen degrees.
type Swing struct {
	Center     geo.Point `json:"center"`
	Radius     float64   `json:"radius"`
	StartAngle float64   `json:"start_angle"`
	EndAngle   float64   `json:"end_angle"`
}

// DXFAngles returns the arc's start and end in DXF convention.
func (s Swing) DXFAngles() (float64, float64) {
	return ToDXFAngles(s.StartAngle, s.EndAngle)
}

// ToDXFAngles converts a clockwise screen arc in a Y-down space into the
// counter-clockwise degrees DXF expects once Y is flipped up. Mirroring
// negates every angle and swaps which end the sweep starts from.
func ToDXFAngles(start, end float64) (float64, float64) {
	return normalizeDegrees(-end), normalizeDegrees(-start)
}

func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a == 0 {
		return 0
	}
	return a
}
