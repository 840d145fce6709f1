package layout

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/geo"
)

// minExtent keeps zero-size rectangles acceptable to the R-tree.
const minExtent = 1e-9

// roomSpatial adapts a room rectangle, grown by the touch tolerance, to
// rtreego.Spatial.
type roomSpatial struct {
	index int
	rect  rtreego.Rect
}

// Bounds implements the rtreego.Spatial interface.
func (s *roomSpatial) Bounds() rtreego.Rect {
	return s.rect
}

func toRTreeRect(r geo.Rect, grow float64) rtreego.Rect {
	g := r.Inflate(grow)
	rect, err := rtreego.NewRect(
		rtreego.Point{g.X, g.Y},
		[]float64{math.Max(g.Width, minExtent), math.Max(g.Height, minExtent)},
	)
	if err != nil {
		// Lengths are clamped positive above, so NewRect cannot fail.
		panic(err)
	}
	return rect
}

// candidatePairs returns every pair (i, j), i < j, whose rectangles come
// within tolerance of each other. Pairs are sorted so the result does not
// depend on tree traversal order.
func candidatePairs(rects []geo.Rect, tolerance float64) [][2]int {
	grow := math.Max(tolerance, minExtent) / 2

	items := make([]rtreego.Spatial, len(rects))
	for i, r := range rects {
		items[i] = &roomSpatial{index: i, rect: toRTreeRect(r, grow)}
	}
	tree := rtreego.NewTree(2, 8, 32, items...)

	var pairs [][2]int
	for i, item := range items {
		for _, hit := range tree.SearchIntersect(item.Bounds()) {
			j := hit.(*roomSpatial).index
			if j > i {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a][0] != pairs[b][0] {
			return pairs[a][0] < pairs[b][0]
		}
		return pairs[a][1] < pairs[b][1]
	})
	return pairs
}
