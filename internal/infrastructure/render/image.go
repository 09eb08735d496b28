package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/dreamroom/internal/domain/ui"
)

// DrawContain draws img scaled uniformly to fit inside box, centered,
// without cropping. A nil or empty image draws nothing.
func DrawContain(dst, img *ebiten.Image, box ui.Rect) {
	if img == nil {
		return
	}
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())

	fit := ui.ContainFit(iw, ih, box)
	if fit.W <= 0 || fit.H <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(fit.W/iw, fit.H/ih)
	op.GeoM.Translate(fit.X, fit.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}
