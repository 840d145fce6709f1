package dxf

// Layer names follow the AIA CAD layer convention.
const (
	LayerWall      = "A-WALL"
	LayerDoor      = "A-DOOR"
	LayerGlazing   = "A-GLAZ"
	LayerArea      = "A-AREA"
	LayerText      = "A-ANNO-TEXT"
	LayerDims      = "A-ANNO-DIMS"
	LayerFurniture = "A-FURN"
)

// Layer is one entry of the LAYER table.
type Layer struct {
	Name  string
	Color int // ACI color index
}

// Layers is the fixed layer table, in output order.
var Layers = []Layer{
	{LayerWall, 7},
	{LayerDoor, 1},
	{LayerGlazing, 5},
	{LayerArea, 8},
	{LayerText, 2},
	{LayerDims, 3},
	{LayerFurniture, 6},
}

func knownLayer(name string) bool {
	for _, l := range Layers {
		if l.Name == name {
			return true
		}
	}
	return false
}
