package config

import (
	"errors"
	"fmt"

	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/dxf"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/openings"
	"github.com/faisalabbas001/ai-floors-plan-generators-sub000/pkg/scene2d"
	"github.com/spf13/viper"
)

// FileName is the optional config file looked up in the project directory
// and the working directory.
const FileName = "floorplan"

// EnvPrefix prefixes every environment override, e.g. FLOORPLAN_TOLERANCE.
const EnvPrefix = "FLOORPLAN"

// Config holds engine defaults shared by the CLI and the server.
type Config struct {
	Tolerance         float64 `mapstructure:"tolerance"`
	Scale             float64 `mapstructure:"scale"`
	InsUnits          int     `mapstructure:"ins_units"`
	TextHeight        float64 `mapstructure:"text_height"`
	Dimensions        bool    `mapstructure:"dimensions"`
	ClampMin          float64 `mapstructure:"clamp_min"`
	ClampMax          float64 `mapstructure:"clamp_max"`
	FrameGap          float64 `mapstructure:"frame_gap"`
	ExteriorThickness float64 `mapstructure:"exterior_thickness"`
	InteriorThickness float64 `mapstructure:"interior_thickness"`
	Port              int     `mapstructure:"port"`
	CacheSize         int     `mapstructure:"cache_size"`
}

func setDefaults(v *viper.Viper) {
	so := scene2d.DefaultOptions()
	do := dxf.DefaultOptions()

	v.SetDefault("tolerance", so.Tolerance)
	v.SetDefault("scale", do.Scale)
	// Zero derives $INSUNITS from the scale and plan units.
	v.SetDefault("ins_units", 0)
	v.SetDefault("text_height", do.TextHeight)
	v.SetDefault("dimensions", false)
	v.SetDefault("clamp_min", so.Openings.MinPosition)
	v.SetDefault("clamp_max", so.Openings.MaxPosition)
	v.SetDefault("frame_gap", so.Openings.FrameGap)
	v.SetDefault("exterior_thickness", so.ExteriorThickness)
	v.SetDefault("interior_thickness", so.InteriorThickness)
	v.SetDefault("port", 3000)
	v.SetDefault("cache_size", 64)
}

// Default returns the built-in configuration.
func Default() Config {
	c, _ := Load()
	return c
}

// Load reads floorplan.yaml from the given directories (first match wins)
// and applies FLOORPLAN_* environment overrides. A missing file is not an
// error.
func Load(dirs ...string) (Config, error) {
	var c Config

	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}

	// Environment variables take precedence over the config file.
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if len(dirs) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return c, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate rejects settings the engine cannot work with.
func (c Config) Validate() error {
	if c.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %g", c.Tolerance)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", c.Scale)
	}
	if c.ClampMin < 0 || c.ClampMax > 1 || c.ClampMin >= c.ClampMax {
		return fmt.Errorf("clamp range [%g, %g] must lie within [0, 1]", c.ClampMin, c.ClampMax)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	return nil
}

// SceneOptions converts the config to scene assembly options.
func (c Config) SceneOptions() scene2d.Options {
	return scene2d.Options{
		Tolerance: c.Tolerance,
		Openings: openings.Options{
			MinPosition: c.ClampMin,
			MaxPosition: c.ClampMax,
			FrameGap:    c.FrameGap,
		},
		ExteriorThickness: c.ExteriorThickness,
		InteriorThickness: c.InteriorThickness,
	}
}

// DXFOptions converts the config to serializer options.
func (c Config) DXFOptions(units string) dxf.Options {
	opts := dxf.Options{
		Scale:      c.Scale,
		InsUnits:   c.InsUnits,
		Units:      units,
		TextHeight: c.TextHeight,
		Dimensions: c.Dimensions,
	}
	if opts.InsUnits == 0 {
		opts.InsUnits = dxf.InsUnitsFor(units, c.Scale)
	}
	if units != "" {
		opts.AreaUnit = "sq " + units
	}
	return opts
}
