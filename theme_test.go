package fastscroll_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	fastscroll "github.com/go-drift/fastscroll"
	drifterrors "github.com/go-drift/fastscroll/pkg/errors"
	"github.com/go-drift/fastscroll/pkg/graphics"
)

func TestParseTheme_Full(t *testing.T) {
	data := []byte(`
handle_color: "#FF5252"
track_color: "#33000000"
bubble:
  color: "#2196F3"
  text_color: "#FFFFFF"
  text_size: 28
background_color: "#FAFAFA"
handle_width: 10
track_visible: true
hide_scrollbar: true
auto_hide_delay_ms: 900
width: 320
height: 480
`)
	theme, err := fastscroll.ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}

	if theme.HandleColor != graphics.RGB(0xFF, 0x52, 0x52) {
		t.Errorf("HandleColor = %s", theme.HandleColor.Hex())
	}
	if theme.TrackColor != graphics.Color(0x33000000) {
		t.Errorf("TrackColor = %s", theme.TrackColor.Hex())
	}
	if theme.BubbleColor != graphics.RGB(0x21, 0x96, 0xF3) {
		t.Errorf("BubbleColor = %s", theme.BubbleColor.Hex())
	}
	if theme.BubbleTextColor != graphics.ColorWhite {
		t.Errorf("BubbleTextColor = %s", theme.BubbleTextColor.Hex())
	}
	if theme.BubbleTextSize != 28 {
		t.Errorf("BubbleTextSize = %v, want 28", theme.BubbleTextSize)
	}
	if theme.BackgroundColor != graphics.RGB(0xFA, 0xFA, 0xFA) {
		t.Errorf("BackgroundColor = %s", theme.BackgroundColor.Hex())
	}
	if theme.HandleWidth != 10 {
		t.Errorf("HandleWidth = %v, want 10", theme.HandleWidth)
	}
	if !theme.TrackVisible {
		t.Error("TrackVisible not applied")
	}
	if !theme.HideScrollbar {
		t.Error("HideScrollbar not applied")
	}
	if theme.AutoHideDelay != 900*time.Millisecond {
		t.Errorf("AutoHideDelay = %v, want 900ms", theme.AutoHideDelay)
	}
	if theme.Width != 320 || theme.Height != 480 {
		t.Errorf("size = %vx%v, want 320x480", theme.Width, theme.Height)
	}
}

func TestParseTheme_EmptyKeepsDefaults(t *testing.T) {
	theme, err := fastscroll.ParseTheme([]byte("{}"))
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	defaults := fastscroll.DefaultTheme()
	if theme.HandleColor != defaults.HandleColor {
		t.Error("empty theme must keep default handle color")
	}
	if theme.AutoHideDelay != defaults.AutoHideDelay {
		t.Error("empty theme must keep default auto-hide delay")
	}
}

func TestParseTheme_BadColor(t *testing.T) {
	_, err := fastscroll.ParseTheme([]byte(`handle_color: "not-a-color"`))
	if err == nil {
		t.Fatal("expected an error for an invalid color")
	}
}

func TestParseTheme_BadYAML(t *testing.T) {
	_, err := fastscroll.ParseTheme([]byte("handle_color: [unterminated"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestLoadTheme_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	content := []byte("handle_color: \"#123456\"\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	theme, err := fastscroll.LoadTheme(path)
	if err != nil {
		t.Fatalf("LoadTheme: %v", err)
	}
	if theme.HandleColor != graphics.RGB(0x12, 0x34, 0x56) {
		t.Errorf("HandleColor = %s", theme.HandleColor.Hex())
	}
}

func TestLoadTheme_Missing(t *testing.T) {
	_, err := fastscroll.LoadTheme(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	var derr *drifterrors.Error
	if !errors.As(err, &derr) {
		t.Fatalf("err type = %T, want *errors.Error", err)
	}
	if derr.Kind != drifterrors.KindConfig {
		t.Errorf("Kind = %v, want KindConfig", derr.Kind)
	}
}
