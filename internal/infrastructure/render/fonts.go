// Package render draws the canvas UI primitives: rounded panels, buttons,
// centered text and letterboxed backgrounds.
package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/dreamroom/internal/domain/ui"
)

// Fonts holds the embedded Go font sources used for all UI text
type Fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	size float64
	bold bool
}

// LoadFonts parses the embedded Go Regular and Go Bold fonts
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}
	return &Fonts{
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

// Face returns a cached face of the given pixel size
func (f *Fonts) Face(size float64, bold bool) *text.GoTextFace {
	key := faceKey{size: size, bold: bold}
	if face, ok := f.faces[key]; ok {
		return face
	}

	src := f.regular
	if bold {
		src = f.bold
	}
	face := &text.GoTextFace{Source: src, Size: size}
	f.faces[key] = face
	return face
}

// Measure returns a width function for text wrapping at the given size
func (f *Fonts) Measure(size float64, bold bool) ui.MeasureFunc {
	face := f.Face(size, bold)
	return func(s string) float64 {
		w, _ := text.Measure(s, face, 0)
		return w
	}
}
