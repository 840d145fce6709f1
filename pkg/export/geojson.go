// Package export renders assembled scenes to interchange formats other than
// DXF.
package export

import (
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/scene2d"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Feature kinds, stored in the "kind" property.
const (
	KindEnvelope = "envelope"
	KindRoom     = "room"
	KindWall     = "wall"
	KindDoor     = "door"
	KindWindow   = "window"
)

// GeoJSON converts a scene into a feature collection in plan units. Y is
// negated like the DXF output so north is up in GIS viewers.
func GeoJSON(sc *scene2d.Scene2D) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	if sc == nil || sc.Envelope == nil {
		return fc
	}

	env := geojson.NewFeature(rectPolygon(sc.Envelope.Rect()))
	env.Properties["kind"] = KindEnvelope
	env.Properties["floor"] = sc.Metadata.Floor
	env.Properties["width"] = sc.Envelope.Width()
	env.Properties["depth"] = sc.Envelope.Height()
	fc.Append(env)

	for _, room := range sc.Rooms {
		f := geojson.NewFeature(rectPolygon(room.Rect))
		f.ID = room.ID
		f.Properties["kind"] = KindRoom
		f.Properties["id"] = room.ID
		f.Properties["name"] = room.Name
		f.Properties["area"] = room.Area
		f.Properties["exterior_walls"] = sideNames(room.Exterior)
		f.Properties["shared_walls"] = sideNames(room.Shared)
		fc.Append(f)
	}

	for _, w := range sc.Walls {
		f := geojson.NewFeature(orb.LineString{flip(w.Start), flip(w.End)})
		f.Properties["kind"] = KindWall
		f.Properties["room_id"] = w.RoomID
		f.Properties["side"] = string(w.Side)
		f.Properties["wall_kind"] = string(w.Kind)
		f.Properties["thickness"] = w.Thickness
		if w.NeighborID != "" {
			f.Properties["neighbor_id"] = w.NeighborID
		}
		fc.Append(f)
	}

	for _, d := range sc.Doors {
		f := geojson.NewFeature(orb.LineString{point(d.Hinge), point(d.LeafEnd)})
		f.Properties["kind"] = KindDoor
		f.Properties["room_id"] = d.RoomID
		f.Properties["wall"] = string(d.Wall)
		f.Properties["width"] = d.Width
		f.Properties["exterior"] = d.Exterior
		f.Properties["swing_start"] = d.Swing.StartAngle
		f.Properties["swing_end"] = d.Swing.EndAngle
		fc.Append(f)
	}

	for _, w := range sc.Windows {
		f := geojson.NewFeature(orb.LineString{point(w.Start), point(w.End)})
		f.Properties["kind"] = KindWindow
		f.Properties["room_id"] = w.RoomID
		f.Properties["wall"] = string(w.Wall)
		f.Properties["width"] = w.Width
		f.Properties["type"] = w.Type
		fc.Append(f)
	}

	return fc
}

func point(p geo.Point) orb.Point {
	return orb.Point{p.X, -p.Y}
}

func flip(c [2]float64) orb.Point {
	return orb.Point{c[0], -c[1]}
}

// rectPolygon builds a closed outer ring, counter-clockwise once Y is
// flipped.
func rectPolygon(r geo.Rect) orb.Polygon {
	c := r.Corners()
	ring := orb.Ring{point(c[0]), point(c[3]), point(c[2]), point(c[1]), point(c[0])}
	return orb.Polygon{ring}
}

func sideNames(s geo.WallSet) []string {
	names := make([]string, 0, s.Len())
	for _, w := range s.Sides() {
		names = append(names, string(w))
	}
	return names
}
