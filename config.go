package aureole

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/pelletier/go-toml/v2"
)

// RunConfig configures NewApp and Run. It can be loaded from TOML.
type RunConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	// NormalMap is the normal-map image path inside the asset filesystem.
	// Empty disables normal mapping.
	NormalMap string `toml:"normal_map"`

	ShowPanel   bool `toml:"show_panel"`
	ShowFPS     bool `toml:"show_fps"`
	Transparent bool `toml:"transparent"`
	Shadows     bool `toml:"shadows"`
	Debug       bool `toml:"debug"`

	ScreenshotDir string `toml:"screenshot_dir"`
	// Script is the path of a JSON test script to run. Empty runs none.
	Script          string `toml:"script"`
	ExitAfterScript bool   `toml:"exit_after_script"`

	MaxScroll float64 `toml:"max_scroll"`
	WheelStep float64 `toml:"wheel_step"`
}

// DefaultRunConfig returns the configuration of the stock ring scene.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:         "aureole",
		Width:         defaultViewportWidth,
		Height:        defaultViewportHeight,
		NormalMap:     "textures/NormalMap.png",
		ShowPanel:     true,
		ShowFPS:       true,
		Transparent:   true,
		Shadows:       true,
		ScreenshotDir: "screenshots",
		WheelStep:     defaultWheelStep,
	}
}

// ParseConfig decodes TOML over the defaults. Unknown keys are an error.
func ParseConfig(data []byte) (RunConfig, error) {
	cfg := DefaultRunConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return RunConfig{}, fmt.Errorf("aureole: parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return RunConfig{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML config file from fsys.
func LoadConfig(fsys fs.FS, name string) (RunConfig, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return RunConfig{}, fmt.Errorf("aureole: read config: %w", err)
	}
	return ParseConfig(data)
}

func (c RunConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("aureole: config: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.MaxScroll < 0 {
		return fmt.Errorf("aureole: config: max_scroll %g is negative", c.MaxScroll)
	}
	if c.WheelStep < 0 {
		return fmt.Errorf("aureole: config: wheel_step %g is negative", c.WheelStep)
	}
	return nil
}

// buildOptions maps the config onto BuildScene options.
func (c RunConfig) buildOptions() BuildOptions {
	return BuildOptions{
		Width:     c.Width,
		Height:    c.Height,
		Opaque:    !c.Transparent,
		NoShadows: !c.Shadows,
		HidePanel: !c.ShowPanel,
		ShowFPS:   c.ShowFPS,
		MaxScroll: c.MaxScroll,
		WheelStep: c.WheelStep,
	}
}
