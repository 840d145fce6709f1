package server

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/internal/config"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testServer(t *testing.T) *Server {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "pkg", "plan", "testdata", "plan.yaml"))
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plan.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}
	return New(dir, 0, config.Default())
}

// projectServer serves a project holding the given plan.yaml.
func projectServer(t *testing.T, doc string) *Server {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plan.yaml"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return New(dir, 0, config.Default())
}

const anonymousPlan = `
name: anon
floors:
  - name: g
    rooms:
      - {x: 0, y: 0, width: 10, height: 10}
      - x: 10
        y: 0
        width: 10
        height: 10
        doors:
          - {wall: north, position: 0.02, width: 3}
`

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v\n%s", err, w.Body.String())
	}
	return out
}

func TestHandlePlan(t *testing.T) {
	w := do(t, testServer(t), http.MethodGet, "/api/plan", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode(t, w)["name"]; got != "cottage" {
		t.Errorf("expected plan name cottage, got %v", got)
	}
}

func TestHandleScene(t *testing.T) {
	w := do(t, testServer(t), http.MethodGet, "/api/floors/ground/scene", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	meta := decode(t, w)["metadata"].(map[string]any)
	if meta["room_count"] != 4.0 {
		t.Errorf("expected 4 rooms, got %v", meta["room_count"])
	}
}

func TestHandleSceneUnknownFloor(t *testing.T) {
	w := do(t, testServer(t), http.MethodGet, "/api/floors/attic/scene", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestHandleDXF(t *testing.T) {
	s := testServer(t)
	w := do(t, s, http.MethodGet, "/api/floors/ground/dxf?scale=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/dxf" {
		t.Errorf("expected application/dxf, got %s", ct)
	}
	if !strings.HasSuffix(w.Body.String(), "EOF\n") {
		t.Error("expected DXF body ending in EOF")
	}
	if !strings.Contains(w.Header().Get("Content-Disposition"), "ground.dxf") {
		t.Errorf("expected ground.dxf attachment, got %s", w.Header().Get("Content-Disposition"))
	}

	w = do(t, s, http.MethodGet, "/api/floors/ground/dxf?scale=abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad scale, got %d", w.Code)
	}
}

func TestHandleGeoJSON(t *testing.T) {
	w := do(t, testServer(t), http.MethodGet, "/api/floors/upper/geojson", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decode(t, w)["type"]; got != "FeatureCollection" {
		t.Errorf("expected FeatureCollection, got %v", got)
	}
}

func TestHandleValidation(t *testing.T) {
	w := do(t, testServer(t), http.MethodGet, "/api/validation", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if decode(t, w)["valid"] != true {
		t.Errorf("expected valid fixture, got %s", w.Body.String())
	}
}

func TestHandleResolve(t *testing.T) {
	body := `{"name":"post","rooms":[
		{"id":"a","name":"A","x":0,"y":0,"width":10,"height":10,
		 "windows":[{"wall":"east","position":0.5,"width":3}]},
		{"id":"b","name":"B","x":10,"y":0,"width":10,"height":10}]}`

	w := do(t, testServer(t), http.MethodPost, "/api/resolve", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	out := decode(t, w)
	sc := out["scene"].(map[string]any)
	if windows := sc["windows"].([]any); len(windows) != 0 {
		t.Errorf("expected window on shared wall suppressed, got %d", len(windows))
	}
	report := out["validation"].(map[string]any)
	if warnings := report["warnings"].([]any); len(warnings) != 1 {
		t.Errorf("expected 1 warning, got %d", len(warnings))
	}
}

func TestHandleResolveInvalid(t *testing.T) {
	s := testServer(t)

	w := do(t, s, http.MethodPost, "/api/resolve", `{"rooms":[{"x":0,"y":0,"width":-1,"height":10}]}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", w.Code)
	}

	w = do(t, s, http.MethodPost, "/api/resolve", `{"rooms":`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHandleExportDXF(t *testing.T) {
	body := `{"name":"studio","rooms":[{"x":0,"y":0,"width":12,"height":10}]}`
	w := do(t, testServer(t), http.MethodPost, "/api/export/dxf?units=m", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "120.0 sq m") {
		t.Error("expected area label in requested units")
	}
}

func TestMissingProject(t *testing.T) {
	s := New(t.TempDir(), 0, config.Default())
	w := do(t, s, http.MethodGet, "/api/plan", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestSceneCacheHitsWithoutRoomIDs(t *testing.T) {
	s := projectServer(t, anonymousPlan)

	var ids []any
	for i := 0; i < 3; i++ {
		w := do(t, s, http.MethodGet, "/api/floors/g/scene", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		rooms := decode(t, w)["rooms"].([]any)
		ids = append(ids, rooms[0].(map[string]any)["id"])
	}

	hits, misses := s.cache.Stats()
	if hits != 2 || misses != 1 {
		t.Errorf("expected 2 hits and 1 miss, got %d hits %d misses", hits, misses)
	}
	if ids[0] == "" || ids[0] != ids[1] || ids[1] != ids[2] {
		t.Errorf("expected the same generated room ID on every request, got %v", ids)
	}

	w := do(t, s, http.MethodGet, "/api/plan", "")
	floors := decode(t, w)["floors"].([]any)
	planRoom := floors[0].(map[string]any)["rooms"].([]any)[0].(map[string]any)
	if planRoom["id"] != ids[0] {
		t.Errorf("expected /api/plan room ID %v, got %v", ids[0], planRoom["id"])
	}
}

func TestSceneLogsClampedOpenings(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	w := do(t, projectServer(t, anonymousPlan), http.MethodGet, "/api/floors/g/scene", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(buf.String(), "clamped to fit") {
		t.Errorf("expected clamp warning in log, got %q", buf.String())
	}
}
