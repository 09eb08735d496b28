package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/dreamroom/internal/domain/ui"
)

// whiteSubImage is the source texture for vertex-colored triangles.
// Created on first use so importing the package allocates no GPU images.
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	}
	return whiteSubImage
}

// CornerRadius limits radius so opposite corners never overlap
func CornerRadius(r ui.Rect, radius float64) float64 {
	return math.Max(0, math.Min(radius, math.Min(r.W/2, r.H/2)))
}

func roundRectPath(r ui.Rect, radius float64) *vector.Path {
	rr := float32(CornerRadius(r, radius))
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)

	var path vector.Path
	path.MoveTo(x+rr, y)
	path.ArcTo(x+w, y, x+w, y+h, rr)
	path.ArcTo(x+w, y+h, x, y+h, rr)
	path.ArcTo(x, y+h, x, y, rr)
	path.ArcTo(x, y, x+w, y, rr)
	path.Close()
	return &path
}

// FillRoundRect fills a rectangle with rounded corners
func FillRoundRect(dst *ebiten.Image, r ui.Rect, radius float64, c color.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vs, is := roundRectPath(r, radius).AppendVerticesAndIndicesForFilling(nil, nil)
	drawVertices(dst, vs, is, c)
}

// StrokeRoundRect outlines a rectangle with rounded corners
func StrokeRoundRect(dst *ebiten.Image, r ui.Rect, radius, width float64, c color.Color) {
	if r.W <= 0 || r.H <= 0 || width <= 0 {
		return
	}
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	}
	vs, is := roundRectPath(r, radius).AppendVerticesAndIndicesForStroke(nil, nil, op)
	drawVertices(dst, vs, is, c)
}

// FillRect fills an axis-aligned rectangle
func FillRect(dst *ebiten.Image, r ui.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// FillCircle fills a circle centered at (cx, cy)
func FillCircle(dst *ebiten.Image, cx, cy, radius float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius), c, true)
}

// Line strokes a straight segment
func Line(dst *ebiten.Image, x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func drawVertices(dst *ebiten.Image, vs []ebiten.Vertex, is []uint16, c color.Color) {
	cr, cg, cb, ca := VertexColor(c)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = cr
		vs[i].ColorG = cg
		vs[i].ColorB = cb
		vs[i].ColorA = ca
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	}
	dst.DrawTriangles(vs, is, whiteTexture(), op)
}

// VertexColor converts c to straight-alpha components in [0, 1]
func VertexColor(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}
