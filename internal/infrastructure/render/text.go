package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// TextCentered draws s centered on (cx, cy)
func TextCentered(dst *ebiten.Image, s string, face text.Face, cx, cy float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}

// TextTop draws s horizontally centered on cx with its top edge at top
func TextTop(dst *ebiten.Image, s string, face text.Face, cx, top float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, top)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignStart
	text.Draw(dst, s, face, op)
}
