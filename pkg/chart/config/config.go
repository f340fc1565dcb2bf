// Package config holds the tunable layout, zoom and styling settings of the
// chart, loaded from a YAML file over built-in defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"chronoscope/pkg/engine/input"
)

// Config is the full set of chart settings.
type Config struct {
	Layout struct {
		Width        int     `yaml:"width"`         // Window width in pixels
		Height       int     `yaml:"height"`        // Window height in pixels
		MarginTop    float64 `yaml:"margin_top"`    // Space above the plot area
		MarginBottom float64 `yaml:"margin_bottom"` // Space below the plot area (axis labels)
		MarginLeft   float64 `yaml:"margin_left"`
		MarginRight  float64 `yaml:"margin_right"`
		BarHeight    float64 `yaml:"bar_height"` // Default band thickness when the record gives none
		BandGap      float64 `yaml:"band_gap"`   // Gap between index-stacked bands
		BandPad      float64 `yaml:"band_pad"`   // Vertical padding marks keep from band edges
		LabelSize    float64 `yaml:"label_size"` // Band label font size
	} `yaml:"layout"`

	// Domain overrides the year range derived from the data when both are set.
	Domain struct {
		Min *float64 `yaml:"min"`
		Max *float64 `yaml:"max"`
	} `yaml:"domain"`

	Zoom struct {
		KMin      float64 `yaml:"k_min"`
		KMax      float64 `yaml:"k_max"`
		Threshold float64 `yaml:"threshold"`  // Zoom factor where overview switches to detail
		WheelStep float64 `yaml:"wheel_step"` // Zoom factor per wheel notch or key press
		PanStep   float64 `yaml:"pan_step"`   // Pixels per arrow key press
	} `yaml:"zoom"`

	Lanes struct {
		BaseRadius float64 `yaml:"base_radius"` // Mark radius at k=1
		MaxRadius  float64 `yaml:"max_radius"`
		SepX       float64 `yaml:"sep_x"` // Horizontal separation in radii
		SepY       float64 `yaml:"sep_y"` // Vertical separation in radii
	} `yaml:"lanes"`

	Tooltip struct {
		Margin   float64 `yaml:"margin"`    // Minimum gap to viewport edges
		Padding  float64 `yaml:"padding"`   // Gap between element and tooltip
		Offset   float64 `yaml:"offset"`    // Gap between pointer and tooltip
		MaxWidth float64 `yaml:"max_width"` // Wrap width for estimated text
		FontSize float64 `yaml:"font_size"`
	} `yaml:"tooltip"`

	Ticks struct {
		Interval float64 `yaml:"interval"` // Human years between ticks
	} `yaml:"ticks"`

	Colors struct {
		Background string   `yaml:"background"`
		Axis       string   `yaml:"axis"`
		Text       string   `yaml:"text"`
		Muted      string   `yaml:"muted"`
		Highlight  string   `yaml:"highlight"`
		Preview    string   `yaml:"preview"`
		Author     string   `yaml:"author"`
		Work       string   `yaml:"work"`
		Tooltip    string   `yaml:"tooltip"`
		Bands      []string `yaml:"bands"` // Palette cycled for bands without their own color
	} `yaml:"colors"`

	// Keys rebinds actions by config name ("zoom_in", "quit", ...) to a
	// single key code each. Arrows, Escape and Ctrl+C stay bound.
	Keys map[string]string `yaml:"keys"`
}

// Default returns the built-in settings.
func Default() Config {
	var c Config
	c.Layout.Width = 1280
	c.Layout.Height = 720
	c.Layout.MarginTop = 24
	c.Layout.MarginBottom = 40
	c.Layout.MarginLeft = 24
	c.Layout.MarginRight = 24
	c.Layout.BarHeight = 56
	c.Layout.BandGap = 16
	c.Layout.BandPad = 6
	c.Layout.LabelSize = 13

	c.Zoom.KMin = 1
	c.Zoom.KMax = 40
	c.Zoom.Threshold = 3
	c.Zoom.WheelStep = 1.2
	c.Zoom.PanStep = 40

	c.Lanes.BaseRadius = 3
	c.Lanes.MaxRadius = 8
	c.Lanes.SepX = 2.2
	c.Lanes.SepY = 2.2

	c.Tooltip.Margin = 4
	c.Tooltip.Padding = 8
	c.Tooltip.Offset = 12
	c.Tooltip.MaxWidth = 280
	c.Tooltip.FontSize = 12

	c.Ticks.Interval = 500

	c.Colors.Background = "#14161b"
	c.Colors.Axis = "#5c6370"
	c.Colors.Text = "#dcdfe4"
	c.Colors.Muted = "#8b929e"
	c.Colors.Highlight = "#ffd866"
	c.Colors.Preview = "#78dce8"
	c.Colors.Author = "#ab9df2"
	c.Colors.Work = "#ff6188"
	c.Colors.Tooltip = "#23262e"
	c.Colors.Bands = []string{"#3e6d9c", "#4f8a5b", "#9c6b3e", "#7a4f8a", "#8a4f5c", "#4f7f8a"}
	return c
}

// Load reads a YAML file and overlays it on the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// Validate reports settings the chart cannot work with.
func (c Config) Validate() error {
	var errs []error
	if c.Layout.Width <= 0 || c.Layout.Height <= 0 {
		errs = append(errs, fmt.Errorf("layout size must be positive, got %dx%d", c.Layout.Width, c.Layout.Height))
	}
	if c.Layout.BarHeight <= 0 {
		errs = append(errs, fmt.Errorf("layout.bar_height must be positive, got %v", c.Layout.BarHeight))
	}
	if c.Zoom.KMin < 1 {
		errs = append(errs, fmt.Errorf("zoom.k_min must be at least 1, got %v", c.Zoom.KMin))
	}
	if c.Zoom.KMax < c.Zoom.KMin {
		errs = append(errs, fmt.Errorf("zoom.k_max %v is below zoom.k_min %v", c.Zoom.KMax, c.Zoom.KMin))
	}
	if c.Zoom.Threshold < c.Zoom.KMin || c.Zoom.Threshold > c.Zoom.KMax {
		errs = append(errs, fmt.Errorf("zoom.threshold %v outside [%v, %v]", c.Zoom.Threshold, c.Zoom.KMin, c.Zoom.KMax))
	}
	if c.Zoom.WheelStep <= 1 {
		errs = append(errs, fmt.Errorf("zoom.wheel_step must be greater than 1, got %v", c.Zoom.WheelStep))
	}
	if c.Lanes.BaseRadius <= 0 || c.Lanes.MaxRadius < c.Lanes.BaseRadius {
		errs = append(errs, fmt.Errorf("lanes radius range [%v, %v] is invalid", c.Lanes.BaseRadius, c.Lanes.MaxRadius))
	}
	if c.Ticks.Interval <= 0 {
		errs = append(errs, fmt.Errorf("ticks.interval must be positive, got %v", c.Ticks.Interval))
	}
	if c.Domain.Min != nil && c.Domain.Max != nil && *c.Domain.Min > *c.Domain.Max {
		errs = append(errs, fmt.Errorf("domain.min %v is after domain.max %v", *c.Domain.Min, *c.Domain.Max))
	}
	if _, err := c.KeyBindings(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// KeyBindings resolves the keys section to actions.
func (c Config) KeyBindings() (map[input.Action]string, error) {
	out := make(map[input.Action]string, len(c.Keys))
	for name, code := range c.Keys {
		a, ok := input.ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("keys: unknown action %q", name)
		}
		out[a] = strings.ToLower(strings.TrimSpace(code))
	}
	return out, nil
}

// InnerSize returns the plot area inside the margins for a viewport.
func (c Config) InnerSize(width, height float64) (float64, float64) {
	w := width - c.Layout.MarginLeft - c.Layout.MarginRight
	h := height - c.Layout.MarginTop - c.Layout.MarginBottom
	return max(w, 1), max(h, 1)
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustHex is ParseHex falling back to fallback on a malformed value.
func MustHex(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return fallback
	}
	return c
}
