package main

import (
	"os"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/internal/server"
	"github.com/spf13/cobra"
)

// overrides holds global flags that take precedence over floorplan.yaml.
type overrides struct {
	tolerance float64
	scale     float64
}

func main() {
	var ov overrides

	rootCmd := &cobra.Command{
		Use:   "floorplan",
		Short: "Floor plan geometry engine: adjacency, openings, and CAD export",
	}
	rootCmd.PersistentFlags().Float64Var(&ov.tolerance, "tolerance", 0, "adjacency tolerance in plan units (default from config)")
	rootCmd.PersistentFlags().Float64Var(&ov.scale, "scale", 0, "DXF drawing units per plan unit (default from config)")

	rootCmd.AddCommand(validateCmd(&ov))
	rootCmd.AddCommand(resolveCmd(&ov))
	rootCmd.AddCommand(exportCmd(&ov))
	rootCmd.AddCommand(serveCmd(&ov))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateCmd(ov *overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a floor plan and report clamped or suppressed openings",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0], ov)
		},
	}
}

func resolveCmd(ov *overrides) *cobra.Command {
	var floor string

	cmd := &cobra.Command{
		Use:   "resolve [project-path]",
		Short: "Resolve adjacency, envelope, and openings and print the scenes as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runResolve(args[0], floor, ov)
		},
	}

	cmd.Flags().StringVarP(&floor, "floor", "f", "", "resolve only this floor")
	return cmd
}

func exportCmd(ov *overrides) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write each floor to a file",
	}
	cmd.AddCommand(exportDXFCmd(ov))
	cmd.AddCommand(exportGeoJSONCmd(ov))
	return cmd
}

func exportDXFCmd(ov *overrides) *cobra.Command {
	var out string
	var dims bool

	cmd := &cobra.Command{
		Use:   "dxf [project-path]",
		Short: "Export every floor as an AC1015 DXF document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], out, formatDXF, exportFlags{overrides: *ov, dimensions: dims})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	cmd.Flags().BoolVar(&dims, "dimensions", false, "add overall dimension lines")
	return cmd
}

func exportGeoJSONCmd(ov *overrides) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "geojson [project-path]",
		Short: "Export every floor as a GeoJSON feature collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runExport(args[0], out, formatGeoJSON, exportFlags{overrides: *ov})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", ".", "output directory")
	return cmd
}

func serveCmd(ov *overrides) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the HTTP API for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0], ov)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Port = port
			}
			srv := server.New(args[0], cfg.Port, cfg)
			return srv.Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (default from config, 3000)")
	return cmd
}
