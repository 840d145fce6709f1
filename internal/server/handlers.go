package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/dxf"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/export"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/scene2d"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/validation"
	"github.com/gin-gonic/gin"
)

var errFloorNotFound = errors.New("floor not found")

func (s *Server) loadPlan() (*plan.Plan, error) {
	p, err := plan.LoadProject(s.projectPath)
	if err != nil {
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	return p, nil
}

// assemble resolves f through the shared cache and logs any clamped or
// suppressed openings.
func (s *Server) assemble(f *plan.Floor) (*scene2d.Scene2D, *validation.Report) {
	opts := s.cfg.SceneOptions()
	opts.Cache = s.cache
	sc, report := scene2d.Assemble(f, opts)
	report.Log(fmt.Sprintf("floor %q", f.Name))
	return sc, report
}

// loadFloor loads the project and resolves the floor named in the path.
func (s *Server) loadFloor(c *gin.Context) (*plan.Plan, *scene2d.Scene2D, error) {
	p, err := s.loadPlan()
	if err != nil {
		return nil, nil, err
	}
	name := c.Param("floor")
	f := p.FloorByName(name)
	if f == nil {
		return nil, nil, fmt.Errorf("%w: %q", errFloorNotFound, name)
	}
	sc, _ := s.assemble(f)
	return p, sc, nil
}

func abort(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, errFloorNotFound) {
		status = http.StatusNotFound
	}
	log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(status, gin.H{"error": err.Error()})
}

// dxfOptions applies an optional ?scale= override to the configured options.
func (s *Server) dxfOptions(c *gin.Context, units string) (dxf.Options, error) {
	opts := s.cfg.DXFOptions(units)
	if raw := c.Query("scale"); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil || scale <= 0 {
			return opts, fmt.Errorf("invalid scale %q", raw)
		}
		opts.Scale = scale
	}
	return opts, nil
}

func sendDXF(c *gin.Context, name, doc string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".dxf"))
	c.Data(http.StatusOK, "application/dxf", []byte(doc))
}

func (s *Server) handlePlan(c *gin.Context) {
	p, err := s.loadPlan()
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) handleValidation(c *gin.Context) {
	p, err := s.loadPlan()
	if err != nil {
		abort(c, err)
		return
	}
	report := validation.ValidatePlan(p)
	for i := range p.Floors {
		_, r := s.assemble(&p.Floors[i])
		report.Merge(r)
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleScene(c *gin.Context) {
	_, sc, err := s.loadFloor(c)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (s *Server) handleDXF(c *gin.Context) {
	p, sc, err := s.loadFloor(c)
	if err != nil {
		abort(c, err)
		return
	}
	opts, err := s.dxfOptions(c, p.Units)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sendDXF(c, sc.Metadata.Floor, dxf.SerializeScene(sc, opts))
}

func (s *Server) handleGeoJSON(c *gin.Context) {
	_, sc, err := s.loadFloor(c)
	if err != nil {
		abort(c, err)
		return
	}
	c.JSON(http.StatusOK, export.GeoJSON(sc))
}

// bindFloor decodes a floor from the request body and checks its schema.
// On failure the response has already been written.
func bindFloor(c *gin.Context) (*plan.Floor, bool) {
	var f plan.Floor
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("decoding floor: %v", err)})
		return nil, false
	}
	plan.NormalizeFloor(&f, 0)

	report := validation.ValidateFloor(&f)
	if !report.Valid {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"validation": report})
		return nil, false
	}
	return &f, true
}

func (s *Server) handleResolve(c *gin.Context) {
	f, ok := bindFloor(c)
	if !ok {
		return
	}
	sc, report := s.assemble(f)
	c.JSON(http.StatusOK, gin.H{
		"scene":      sc,
		"validation": report,
	})
}

func (s *Server) handleExportDXF(c *gin.Context) {
	f, ok := bindFloor(c)
	if !ok {
		return
	}
	opts, err := s.dxfOptions(c, c.Query("units"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sc, _ := s.assemble(f)
	sendDXF(c, f.Name, dxf.SerializeScene(sc, opts))
}
