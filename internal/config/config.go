package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config controls the overview's appearance and engine tuning. It maps
// directly to an optional YAML file; absent or partial files fall back to the
// defaults, so the app always starts with a usable configuration.
type Config struct {
	Colors struct {
		Background string `yaml:"background"` // surface fill (hex, e.g. "#1e1e24")
		Axis       string `yaml:"axis"`       // base axis line and ticks
		Text       string `yaml:"text"`       // labels and the year readout
		Histogram  string `yaml:"histogram"`  // density bars along the top
		Event      string `yaml:"event"`      // point marker stem and dot
		Period     string `yaml:"period"`     // stacked range lines
		Age        string `yaml:"age"`        // unstacked range lines
		Bookmark   string `yaml:"bookmark"`   // bookmark marker and tooltip accent
		Note       string `yaml:"note"`
		Picture    string `yaml:"picture"`
		Character  string `yaml:"character"`
		Boundary   string `yaml:"boundary"`  // start/end boundary markers
		Indicator  string `yaml:"indicator"` // synchronized "now" indicator
	} `yaml:"colors"`
	Layout struct {
		LineSpacing     float64 `yaml:"line_spacing"`     // vertical gap per stacking level in pixels
		MarkerRadius    float64 `yaml:"marker_radius"`    // dot radius for point markers
		AxisInset       float64 `yaml:"axis_inset"`       // axis distance from the bottom edge
		HistogramHeight float64 `yaml:"histogram_height"` // height of the density band
		StemHeight      float64 `yaml:"stem_height"`      // stem length for point markers
		HitRadius       float64 `yaml:"hit_radius"`       // bookmark hover/click radius
		TooltipPadding  float64 `yaml:"tooltip_padding"`  // inner padding of the tooltip bubble
		GlowRadius      float64 `yaml:"glow_radius"`      // soft glow radius behind special markers
	} `yaml:"layout"`
	Density struct {
		Buckets int `yaml:"buckets"` // histogram resolution across the record span
	} `yaml:"density"`
	TargetFPS int `yaml:"target_fps"` // redraw throttle, frames per second
}

// Default returns the built-in configuration.
func Default() *Config {
	c := &Config{}
	c.Colors.Background = "#15151c"
	c.Colors.Axis = "#9a9aa8"
	c.Colors.Text = "#d8d8e0"
	c.Colors.Histogram = "#3c4a6e"
	c.Colors.Event = "#7fa8ff"
	c.Colors.Period = "#5ad0a0"
	c.Colors.Age = "#c08ae0"
	c.Colors.Bookmark = "#ffd166"
	c.Colors.Note = "#e0e0b0"
	c.Colors.Picture = "#80c8d8"
	c.Colors.Character = "#ef8a8a"
	c.Colors.Boundary = "#ff6b6b"
	c.Colors.Indicator = "#ffffff"
	c.Layout.LineSpacing = 7
	c.Layout.MarkerRadius = 3
	c.Layout.AxisInset = 28
	c.Layout.HistogramHeight = 32
	c.Layout.StemHeight = 10
	c.Layout.HitRadius = 8
	c.Layout.TooltipPadding = 6
	c.Layout.GlowRadius = 7
	c.Density.Buckets = 100
	c.TargetFPS = 60
	return c
}

// Load reads the YAML file at path on top of the defaults. A missing file is
// not an error; a malformed one logs a warning and the defaults win.
func Load(path string) *Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("cannot read config, using defaults")
		}
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("malformed config, using defaults")
		return Default()
	}
	cfg.sanitize()
	return cfg
}

// sanitize backfills values a partial or nonsensical file left unusable.
func (c *Config) sanitize() {
	def := Default()
	if c.Density.Buckets <= 0 {
		c.Density.Buckets = def.Density.Buckets
	}
	if c.TargetFPS <= 0 {
		c.TargetFPS = def.TargetFPS
	}
	if c.Layout.LineSpacing <= 0 {
		c.Layout.LineSpacing = def.Layout.LineSpacing
	}
	if c.Layout.MarkerRadius <= 0 {
		c.Layout.MarkerRadius = def.Layout.MarkerRadius
	}
	if c.Layout.AxisInset <= 0 {
		c.Layout.AxisInset = def.Layout.AxisInset
	}
	if c.Layout.HistogramHeight <= 0 {
		c.Layout.HistogramHeight = def.Layout.HistogramHeight
	}
	if c.Layout.StemHeight <= 0 {
		c.Layout.StemHeight = def.Layout.StemHeight
	}
	if c.Layout.HitRadius <= 0 {
		c.Layout.HitRadius = def.Layout.HitRadius
	}
	if c.Layout.TooltipPadding <= 0 {
		c.Layout.TooltipPadding = def.Layout.TooltipPadding
	}
	if c.Layout.GlowRadius <= 0 {
		c.Layout.GlowRadius = def.Layout.GlowRadius
	}
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color. The second result
// is false for anything unparseable.
func ParseHex(s string) (color.NRGBA, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = fmt.Sprintf("%c%c%c%c%c%c", s[0], s[0], s[1], s[1], s[2], s[2])
	case 6:
	default:
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}
