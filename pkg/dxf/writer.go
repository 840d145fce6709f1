package dxf

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// writer emits DXF group-code/value pairs. Every value goes through one of
// the typed helpers so the stream stays well formed.
type writer struct {
	b      strings.Builder
	handle uint64
}

func (w *writer) pair(code int, value string) {
	fmt.Fprintf(&w.b, "%3d\n%s\n", code, value)
}

// str writes a string value. Line breaks would split the value across
// lines and shift every code after it, so they become spaces.
func (w *writer) str(code int, value string) {
	w.pair(code, lineBreaks.Replace(value))
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func (w *writer) int(code int, value int) {
	w.pair(code, strconv.Itoa(value))
}

func (w *writer) float(code int, value float64) {
	w.pair(code, formatFloat(value))
}

// point writes an (x, y, 0) triple starting at code (10, 11, ...).
func (w *writer) point(code int, x, y float64) {
	w.float(code, x)
	w.float(code+10, y)
	w.float(code+20, 0)
}

// entity starts an entity or table record with a fresh handle.
func (w *writer) entity(kind string) {
	w.str(0, kind)
	w.str(5, w.nextHandle())
}

func (w *writer) nextHandle() string {
	w.handle++
	return strings.ToUpper(strconv.FormatUint(w.handle, 16))
}

func (w *writer) beginSection(name string) {
	w.str(0, "SECTION")
	w.str(2, name)
}

func (w *writer) endSection() {
	w.str(0, "ENDSEC")
}

func (w *writer) String() string {
	return w.b.String()
}

// formatFloat renders v with four fixed decimals. Negative zero prints as
// zero. NaN and infinities cannot come out of a resolved scene.
func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("dxf: non-finite coordinate %v", v))
	}
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
