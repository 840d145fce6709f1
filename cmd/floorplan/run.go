package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/internal/config"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/dxf"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/export"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/plan"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/scene2d"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/validation"
	"golang.org/x/sync/errgroup"
)

// loadConfig reads floorplan.yaml from the project or working directory
// and applies command-line overrides.
func loadConfig(projectPath string, ov *overrides) (config.Config, error) {
	cfg, err := config.Load(projectPath, ".")
	if err != nil {
		return cfg, err
	}
	if ov.tolerance > 0 {
		cfg.Tolerance = ov.tolerance
	}
	if ov.scale > 0 {
		cfg.Scale = ov.scale
	}
	return cfg, nil
}

// loadAndValidate loads the plan and runs schema validation.
func loadAndValidate(projectPath string) (*plan.Plan, *validation.Report, error) {
	p, err := plan.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading plan: %w", err)
	}
	return p, validation.ValidatePlan(p), nil
}

// assembleAll resolves every floor and merges the spatial findings into one
// report.
func assembleAll(p *plan.Plan, opts scene2d.Options) ([]*scene2d.Scene2D, *validation.Report) {
	report := validation.NewReport()
	scenes := make([]*scene2d.Scene2D, len(p.Floors))
	for i := range p.Floors {
		sc, r := scene2d.Assemble(&p.Floors[i], opts)
		scenes[i] = sc
		report.Merge(r)
	}
	return scenes, report
}

func runValidate(projectPath string, ov *overrides) error {
	cfg, err := loadConfig(projectPath, ov)
	if err != nil {
		return err
	}
	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	scenes, spatialReport := assembleAll(p, cfg.SceneOptions())
	schemaReport.Merge(spatialReport)

	printFloorSummary(scenes, p.Units)
	fmt.Println()
	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runResolve(projectPath, floor string, ov *overrides) error {
	cfg, err := loadConfig(projectPath, ov)
	if err != nil {
		return err
	}
	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("plan has validation errors")
	}

	if floor != "" {
		f := p.FloorByName(floor)
		if f == nil {
			return fmt.Errorf("floor %q not found", floor)
		}
		p.Floors = []plan.Floor{*f}
	}

	scenes, spatialReport := assembleAll(p, cfg.SceneOptions())
	schemaReport.Merge(spatialReport)

	output := map[string]any{
		"plan":       p.Name,
		"units":      p.Units,
		"validation": schemaReport,
		"floors":     scenes,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// exportFlags carries per-command options into an export run.
type exportFlags struct {
	overrides
	dimensions bool
}

// exportFormat renders one resolved floor to file contents.
type exportFormat struct {
	ext    string
	render func(sc *scene2d.Scene2D, units string, cfg config.Config) ([]byte, error)
}

var formatDXF = exportFormat{
	ext: ".dxf",
	render: func(sc *scene2d.Scene2D, units string, cfg config.Config) ([]byte, error) {
		return []byte(dxf.SerializeScene(sc, cfg.DXFOptions(units))), nil
	},
}

var formatGeoJSON = exportFormat{
	ext: ".geojson",
	render: func(sc *scene2d.Scene2D, _ string, _ config.Config) ([]byte, error) {
		return export.GeoJSON(sc).MarshalJSON()
	},
}

// runExport resolves and writes every floor concurrently. Each goroutine
// owns one floor and one output file.
func runExport(projectPath, outDir string, format exportFormat, flags exportFlags) error {
	cfg, err := loadConfig(projectPath, &flags.overrides)
	if err != nil {
		return err
	}
	if flags.dimensions {
		cfg.Dimensions = true
	}

	p, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("plan has validation errors")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	names := fileNames(p.Floors)
	paths := make([]string, len(p.Floors))
	reports := make([]*validation.Report, len(p.Floors))

	var g errgroup.Group
	for i := range p.Floors {
		i := i
		f := &p.Floors[i]
		g.Go(func() error {
			sc, r := scene2d.Assemble(f, cfg.SceneOptions())
			reports[i] = r

			data, err := format.render(sc, p.Units, cfg)
			if err != nil {
				return fmt.Errorf("rendering floor %q: %w", f.Name, err)
			}
			path := filepath.Join(outDir, names[i]+format.ext)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("writing floor %q: %w", f.Name, err)
			}
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	spatial := validation.NewReport()
	for _, r := range reports {
		spatial.Merge(r)
	}
	for _, path := range paths {
		fmt.Printf("wrote %s\n", path)
	}
	if len(spatial.Warnings) > 0 {
		fmt.Println()
		printValidationReport(spatial)
	}
	return nil
}

// fileName makes a floor name safe to use as a file name.
func fileName(floor string) string {
	name := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, floor)
	if name == "" {
		return "floor"
	}
	return name
}

// fileNames returns one distinct file name per floor. A name already taken
// by an earlier floor gets the floor's index as a prefix.
func fileNames(floors []plan.Floor) []string {
	names := make([]string, len(floors))
	used := make(map[string]bool, len(floors))
	for i, f := range floors {
		name := fileName(f.Name)
		for n := i + 1; used[name]; n++ {
			name = fmt.Sprintf("%02d-%s", n, fileName(f.Name))
		}
		used[name] = true
		names[i] = name
	}
	return names
}
