package graphics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 16
	// baseFaceSize is the nominal point size of the measuring face.
	baseFaceSize = 13
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightMedium FontWeight = 500
	FontWeightBold   FontWeight = 700
)

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      Color
	FontSize   float64
	FontWeight FontWeight
}

// TextLayout is measured text ready for drawing. Metrics come from the
// basicfont face scaled to the requested size; platform rasterizers may
// substitute their own face at draw time but must preserve the measured
// bounds.
type TextLayout struct {
	Text  string
	Style TextStyle
	size  Size
}

// NewTextLayout measures text with the given style.
func NewTextLayout(text string, style TextStyle) *TextLayout {
	if style.FontSize <= 0 {
		style.FontSize = defaultFontSize
	}
	scale := style.FontSize / baseFaceSize
	face := basicfont.Face7x13
	advance := font.MeasureString(face, text)
	metrics := face.Metrics()
	width := float64(advance.Round()) * scale
	height := float64((metrics.Ascent + metrics.Descent).Round()) * scale
	return &TextLayout{
		Text:  text,
		Style: style,
		size:  Size{Width: width, Height: height},
	}
}

// Size returns the measured bounds of the text.
func (l *TextLayout) Size() Size {
	return l.size
}
