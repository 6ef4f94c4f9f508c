package fastscroll

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	drifterrors "github.com/go-drift/fastscroll/pkg/errors"
	"github.com/go-drift/fastscroll/pkg/graphics"
)

// Theme is the styling attribute bag applied to both children of a
// FastScrollView. Zero values fall back to the built-in defaults.
type Theme struct {
	HandleColor     graphics.Color
	TrackColor      graphics.Color
	BubbleColor     graphics.Color
	BubbleTextColor graphics.Color
	BubbleTextSize  float64

	// BackgroundColor paints behind both children. Transparent (the zero
	// value) paints nothing.
	BackgroundColor graphics.Color

	HandleWidth  float64
	TrackVisible bool

	HideScrollbar bool
	AutoHideDelay time.Duration

	// Width and Height size the container. Zero means fill-width and
	// wrap-height respectively.
	Width  float64
	Height float64
}

// DefaultTheme returns the built-in styling.
func DefaultTheme() *Theme {
	return &Theme{
		HandleColor:     graphics.RGB(0x61, 0x61, 0x61),
		TrackColor:      graphics.RGBA8(0x00, 0x00, 0x00, 0x1F),
		BubbleColor:     graphics.RGB(0x61, 0x61, 0x61),
		BubbleTextColor: graphics.ColorWhite,
		BubbleTextSize:  32,
		HandleWidth:     8,
		AutoHideDelay:   1500 * time.Millisecond,
	}
}

// themeFile is the YAML schema for theme files.
type themeFile struct {
	HandleColor string `yaml:"handle_color"`
	TrackColor  string `yaml:"track_color"`

	Bubble struct {
		Color     string  `yaml:"color"`
		TextColor string  `yaml:"text_color"`
		TextSize  float64 `yaml:"text_size"`
	} `yaml:"bubble"`

	BackgroundColor string `yaml:"background_color"`

	HandleWidth  float64 `yaml:"handle_width"`
	TrackVisible bool    `yaml:"track_visible"`

	HideScrollbar   bool `yaml:"hide_scrollbar"`
	AutoHideDelayMS int  `yaml:"auto_hide_delay_ms"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoadTheme reads a theme from a YAML file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &drifterrors.Error{
			Op:   "fastscroll.LoadTheme",
			Kind: drifterrors.KindConfig,
			Err:  err,
		}
	}
	theme, err := ParseTheme(data)
	if err != nil {
		return nil, &drifterrors.Error{
			Op:   "fastscroll.LoadTheme",
			Kind: drifterrors.KindConfig,
			Err:  fmt.Errorf("%s: %w", path, err),
		}
	}
	return theme, nil
}

// ParseTheme parses YAML theme data. Omitted fields keep default values.
func ParseTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	theme := DefaultTheme()
	if err := applyColor(&theme.HandleColor, file.HandleColor, "handle_color"); err != nil {
		return nil, err
	}
	if err := applyColor(&theme.TrackColor, file.TrackColor, "track_color"); err != nil {
		return nil, err
	}
	if err := applyColor(&theme.BubbleColor, file.Bubble.Color, "bubble.color"); err != nil {
		return nil, err
	}
	if err := applyColor(&theme.BubbleTextColor, file.Bubble.TextColor, "bubble.text_color"); err != nil {
		return nil, err
	}
	if err := applyColor(&theme.BackgroundColor, file.BackgroundColor, "background_color"); err != nil {
		return nil, err
	}
	if file.Bubble.TextSize > 0 {
		theme.BubbleTextSize = file.Bubble.TextSize
	}
	if file.HandleWidth > 0 {
		theme.HandleWidth = file.HandleWidth
	}
	theme.TrackVisible = file.TrackVisible
	theme.HideScrollbar = file.HideScrollbar
	if file.AutoHideDelayMS > 0 {
		theme.AutoHideDelay = time.Duration(file.AutoHideDelayMS) * time.Millisecond
	}
	if file.Width > 0 {
		theme.Width = file.Width
	}
	if file.Height > 0 {
		theme.Height = file.Height
	}
	return theme, nil
}

func applyColor(dst *graphics.Color, value, field string) error {
	if value == "" {
		return nil
	}
	color, err := graphics.ParseColor(value)
	if err != nil {
		return fmt.Errorf("theme field %s: %w", field, err)
	}
	*dst = color
	return nil
}
