package geo

import (
	"encoding/json"
	"fmt"
)

// WallSide names one of the four walls of an axis-aligned room.
type WallSide string

const (
	North WallSide = "north"
	South WallSide = "south"
	East  WallSide = "east"
	West  WallSide = "west"
)

// WallSides lists the sides in their canonical order.
var WallSides = [4]WallSide{North, South, East, West}

// Valid reports whether w is one of the four known sides.
func (w WallSide) Valid() bool {
	switch w {
	case North, South, East, West:
		return true
	}
	return false
}

// Horizontal reports whether the wall runs along the X axis.
func (w WallSide) Horizontal() bool {
	return w == North || w == South
}

// Opposite returns the wall facing w across a shared boundary.
func (w WallSide) Opposite() WallSide {
	switch w {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return w
}

func (w WallSide) index() int {
	switch w {
	case North:
		return 0
	case South:
		return 1
	case East:
		return 2
	case West:
		return 3
	}
	return -1
}

// ParseWallSide converts a string into a WallSide.
func ParseWallSide(s string) (WallSide, error) {
	w := WallSide(s)
	if !w.Valid() {
		return "", fmt.Errorf("unknown wall side %q", s)
	}
	return w, nil
}

// WallSet is a set of wall sides.
type WallSet uint8

// Add returns the set with w included.
func (s WallSet) Add(w WallSide) WallSet {
	i := w.index()
	if i < 0 {
		return s
	}
	return s | 1<<uint(i)
}

// Has reports whether w is in the set.
func (s WallSet) Has(w WallSide) bool {
	i := w.index()
	return i >= 0 && s&(1<<uint(i)) != 0
}

// Len returns the number of sides in the set.
func (s WallSet) Len() int {
	n := 0
	for _, w := range WallSides {
		if s.Has(w) {
			n++
		}
	}
	return n
}

// Sides returns the members of the set in canonical order.
func (s WallSet) Sides() []WallSide {
	sides := make([]WallSide, 0, 4)
	for _, w := range WallSides {
		if s.Has(w) {
			sides = append(sides, w)
		}
	}
	return sides
}

// Complement returns the sides not in s.
func (s WallSet) Complement() WallSet {
	return ^s & 0x0f
}

// MarshalJSON encodes the set as a list of side names.
func (s WallSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sides())
}

// UnmarshalJSON decodes a list of side names.
func (s *WallSet) UnmarshalJSON(data []byte) error {
	var sides []WallSide
	if err := json.Unmarshal(data, &sides); err != nil {
		return err
	}
	var out WallSet
	for _, w := range sides {
		if !w.Valid() {
			return fmt.Errorf("unknown wall side %q", w)
		}
		out = out.Add(w)
	}
	*s = out
	return nil
}
