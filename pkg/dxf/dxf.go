// Package dxf serializes a resolved floor to an AutoCAD R2000 (AC1015)
// ASCII DXF document.
package dxf

import (
	"fmt"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/openings"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/scene2d"
)

// $INSUNITS codes.
const (
	InsUnitsUnitless    = 0
	InsUnitsInches      = 1
	InsUnitsFeet        = 2
	InsUnitsMillimeters = 4
	InsUnitsCentimeters = 5
	InsUnitsMeters      = 6
)

// InsUnitsFor returns the $INSUNITS code of drawings made from a plan in
// units ("ft" when empty) at the given scale. Combinations that name no
// standard unit are unitless.
func InsUnitsFor(units string, scale float64) int {
	switch units {
	case "", "ft":
		switch scale {
		case 1:
			return InsUnitsFeet
		case 12:
			return InsUnitsInches
		}
	case "m":
		switch scale {
		case 1:
			return InsUnitsMeters
		case 100:
			return InsUnitsCentimeters
		case 1000:
			return InsUnitsMillimeters
		}
	case "in":
		if scale == 1 {
			return InsUnitsInches
		}
	}
	return InsUnitsUnitless
}

// Options control serialization.
type Options struct {
	// Scale is drawing units per plan unit. Plan feet at scale 12 come out
	// in inches.
	Scale float64
	// InsUnits is written to $INSUNITS. Zero derives it from Units and
	// Scale.
	InsUnits int
	// Units names the plan's length unit; empty means feet.
	Units string
	// TextHeight is the label height in plan units.
	TextHeight float64
	// AreaUnit labels room areas, e.g. "sq ft".
	AreaUnit string
	// Dimensions adds overall width and depth dimension lines around the
	// envelope on A-ANNO-DIMS.
	Dimensions bool
}

// DefaultOptions returns feet-to-inches output with no dimension lines.
func DefaultOptions() Options {
	return Options{
		Scale:      12,
		TextHeight: 0.75,
		AreaUnit:   "sq ft",
	}
}

// Serialize resolves floor and writes it as DXF at the given scale. A
// non-positive scale falls back to the default. Clamped and suppressed
// openings are logged; callers that need the findings assemble the scene
// themselves and use SerializeScene.
func Serialize(floor plan.Floor, scale float64) string {
	sc, report := scene2d.Assemble(&floor, scene2d.DefaultOptions())
	report.Log(fmt.Sprintf("dxf: floor %q", floor.Name))
	opts := DefaultOptions()
	if scale > 0 {
		opts.Scale = scale
	}
	return SerializeScene(sc, opts)
}

// SerializeScene writes an assembled scene. It has no error path: every
// value in a scene is finite and every layer is declared, so a violation
// panics.
func SerializeScene(sc *scene2d.Scene2D, opts Options) string {
	def := DefaultOptions()
	if opts.Scale <= 0 {
		opts.Scale = def.Scale
	}
	if opts.InsUnits == 0 {
		opts.InsUnits = InsUnitsFor(opts.Units, opts.Scale)
	}
	if opts.TextHeight <= 0 {
		opts.TextHeight = def.TextHeight
	}
	if opts.AreaUnit == "" {
		opts.AreaUnit = def.AreaUnit
	}

	e := &encoder{opts: opts}
	body := &writer{}
	e.w = body

	e.tables()
	e.entities(sc)

	// The header is written last so $HANDSEED can exceed every handle.
	head := &writer{handle: body.handle}
	e.w = head
	e.header(sc)

	return head.String() + body.String() + "  0\nEOF\n"
}

type encoder struct {
	w    *writer
	opts Options
}

// xy maps a plan point to drawing space: scaled, with Y flipped so north
// stays up.
func (e *encoder) xy(p geo.Point) (float64, float64) {
	return p.X * e.opts.Scale, -p.Y * e.opts.Scale
}

func (e *encoder) header(sc *scene2d.Scene2D) {
	w := e.w
	w.beginSection("HEADER")
	w.str(9, "$ACADVER")
	w.str(1, "AC1015")
	w.str(9, "$INSUNITS")
	w.int(70, e.opts.InsUnits)
	w.str(9, "$HANDSEED")
	w.str(5, w.nextHandle())
	if sc != nil && sc.Envelope != nil {
		// Y flips, so the plan's north edge becomes the drawing's max Y.
		minX, maxY := e.xy(geo.Pt(sc.Envelope.MinX, sc.Envelope.MinY))
		maxX, minY := e.xy(geo.Pt(sc.Envelope.MaxX, sc.Envelope.MaxY))
		w.str(9, "$EXTMIN")
		w.point(10, minX, minY)
		w.str(9, "$EXTMAX")
		w.point(10, maxX, maxY)
	}
	w.endSection()
}

func (e *encoder) tables() {
	w := e.w
	w.beginSection("TABLES")

	w.entity("TABLE")
	w.str(2, "LTYPE")
	w.str(100, "AcDbSymbolTable")
	w.int(70, 1)
	w.entity("LTYPE")
	w.str(100, "AcDbSymbolTableRecord")
	w.str(100, "AcDbLinetypeTableRecord")
	w.str(2, "CONTINUOUS")
	w.int(70, 0)
	w.str(3, "Solid line")
	w.int(72, 65)
	w.int(73, 0)
	w.float(40, 0)
	w.str(0, "ENDTAB")

	w.entity("TABLE")
	w.str(2, "LAYER")
	w.str(100, "AcDbSymbolTable")
	w.int(70, len(Layers))
	for _, l := range Layers {
		w.entity("LAYER")
		w.str(100, "AcDbSymbolTableRecord")
		w.str(100, "AcDbLayerTableRecord")
		w.str(2, l.Name)
		w.int(70, 0)
		w.int(62, l.Color)
		w.str(6, "CONTINUOUS")
	}
	w.str(0, "ENDTAB")

	w.endSection()
}

func (e *encoder) entities(sc *scene2d.Scene2D) {
	e.w.beginSection("ENTITIES")
	if sc != nil && sc.Envelope != nil {
		e.polyline(LayerWall, sc.Envelope.Rect())
		for _, room := range sc.Rooms {
			e.room(room)
		}
		for _, d := range sc.Doors {
			e.arc(LayerDoor, d.Swing.Center, d.Swing.Radius, d.Swing.StartAngle, d.Swing.EndAngle)
			e.line(LayerDoor, d.Hinge, d.LeafEnd)
		}
		for _, win := range sc.Windows {
			for _, f := range win.Frame {
				e.line(LayerGlazing, f.Start, f.End)
			}
		}
		if e.opts.Dimensions {
			e.dimensions(sc)
		}
	}
	e.w.endSection()
}

func (e *encoder) room(room scene2d.Room2D) {
	e.polyline(LayerArea, room.Rect)

	c := room.Rect.Center()
	h := e.opts.TextHeight
	e.text(LayerText, c.Sub(geo.Pt(0, h*0.6)), room.Name)
	e.text(LayerText, c.Add(geo.Pt(0, h*0.6)), fmt.Sprintf("%.1f %s", room.Area, e.opts.AreaUnit))
}

// dimensions draws the overall width above the envelope and the depth to
// its left, each as a line with a centered length label.
func (e *encoder) dimensions(sc *scene2d.Scene2D) {
	env := sc.Envelope
	off := e.opts.TextHeight * 2

	top := env.MinY - off
	e.line(LayerDims, geo.Pt(env.MinX, top), geo.Pt(env.MaxX, top))
	e.text(LayerDims, geo.Pt(env.Center().X, top-e.opts.TextHeight), formatLength(env.Width()))

	left := env.MinX - off
	e.line(LayerDims, geo.Pt(left, env.MinY), geo.Pt(left, env.MaxY))
	e.text(LayerDims, geo.Pt(left-e.opts.TextHeight, env.Center().Y), formatLength(env.Height()))
}

func formatLength(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func (e *encoder) begin(kind, layer string) {
	if !knownLayer(layer) {
		panic(fmt.Sprintf("dxf: undeclared layer %q", layer))
	}
	e.w.entity(kind)
	e.w.str(100, "AcDbEntity")
	e.w.str(8, layer)
}

func (e *encoder) polyline(layer string, r geo.Rect) {
	e.begin("LWPOLYLINE", layer)
	e.w.str(100, "AcDbPolyline")
	e.w.int(90, 4)
	e.w.int(70, 1)
	for _, p := range r.Corners() {
		x, y := e.xy(p)
		e.w.float(10, x)
		e.w.float(20, y)
	}
}

func (e *encoder) line(layer string, a, b geo.Point) {
	e.begin("LINE", layer)
	e.w.str(100, "AcDbLine")
	ax, ay := e.xy(a)
	bx, by := e.xy(b)
	e.w.point(10, ax, ay)
	e.w.point(11, bx, by)
}

// arc writes a screen-convention arc, converting to DXF's counter-clockwise
// angles after the Y flip.
func (e *encoder) arc(layer string, center geo.Point, radius, start, end float64) {
	e.begin("ARC", layer)
	e.w.str(100, "AcDbCircle")
	cx, cy := e.xy(center)
	e.w.point(10, cx, cy)
	e.w.float(40, radius*e.opts.Scale)
	e.w.str(100, "AcDbArc")
	s, t := openings.ToDXFAngles(start, end)
	e.w.float(50, s)
	e.w.float(51, t)
}

func (e *encoder) text(layer string, at geo.Point, value string) {
	e.begin("TEXT", layer)
	e.w.str(100, "AcDbText")
	x, y := e.xy(at)
	e.w.point(10, x, y)
	e.w.float(40, e.opts.TextHeight*e.opts.Scale)
	e.w.str(1, value)
	e.w.int(72, 1)
	e.w.point(11, x, y)
	e.w.str(100, "AcDbText")
	e.w.int(73, 2)
}
