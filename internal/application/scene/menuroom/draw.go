package menuroom

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/dreamroom/internal/application/state"
	"github.com/younwookim/dreamroom/internal/domain/ui"
	"github.com/younwookim/dreamroom/internal/infrastructure/config"
	"github.com/younwookim/dreamroom/internal/infrastructure/render"
)

// Button labels
const (
	LabelStart     = "Start Game"
	LabelBackMenu  = "← Menu"
	LabelNewDream  = "New Dream"
	LabelLoadDream = "Load Dream (Coming Soon)"
	LabelHelp      = "Help"
	LabelCredits   = "Credits"
	LabelBackRoom  = "← Room"
)

const (
	buttonRadius     = 18
	panelRadius      = 22
	closeRadius      = 12
	strokeWidth      = 2
	closeCrossWidth  = 3
	closeCrossInset  = 14
	toggleLabelSize  = 13
	toggleLabelGap   = 14
	knobRadiusFactor = 0.38
	buttonFontFactor = 0.38
	titleSize        = 28
	titleOffset      = 18
	backdropAlpha    = 0.55
)

var (
	buttonFill      = color.NRGBA{255, 255, 255, 46}
	buttonStroke    = color.NRGBA{255, 255, 255, 140}
	labelColor      = color.NRGBA{255, 255, 255, 242}
	toggleDayFill   = color.NRGBA{255, 255, 255, 89}
	toggleNightFill = color.NRGBA{10, 20, 60, 140}
	toggleStroke    = color.NRGBA{255, 255, 255, 153}
	toggleLabel     = color.NRGBA{255, 255, 255, 230}
	panelFill       = color.NRGBA{20, 24, 40, 217}
	panelStroke     = color.NRGBA{255, 255, 255, 115}
	closeFill       = color.NRGBA{255, 255, 255, 31}
	closeCross      = color.NRGBA{255, 255, 255, 230}
	bodyColor       = color.NRGBA{255, 255, 255, 235}
)

// Draw paints the frame back to front: background, toggle, scene buttons,
// modal, fade overlay.
func (c *Controller) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	canvas := ui.Rect{W: c.cw, H: c.ch}
	if c.assets != nil {
		path := BackgroundPath(c.cfg.Backgrounds, c.scene, c.theme)
		render.DrawContain(screen, c.assets.Get(path), canvas)
	}

	c.drawToggle(screen)

	l := c.layout
	switch c.scene {
	case state.SceneMenu:
		c.drawButton(screen, l.Start, LabelStart)
	case state.SceneRoom:
		c.drawButton(screen, l.Back, LabelBackMenu)
		c.drawButton(screen, l.NewDream, LabelNewDream)
		c.drawButton(screen, l.LoadDream, LabelLoadDream)
		c.drawButton(screen, l.Help, LabelHelp)
		c.drawButton(screen, l.Credits, LabelCredits)
	case state.SceneDream:
		c.drawButton(screen, l.Back, LabelBackRoom)
	}

	switch c.modal {
	case state.ModalHelp:
		c.drawModal(screen, canvas, l.HelpPanel, l.HelpClose, c.cfg.Help)
	case state.ModalCredits:
		c.drawModal(screen, canvas, l.CreditsPanel, l.CreditsClose, c.cfg.Credits)
	}

	if c.transition.Active() {
		render.FillRect(screen, canvas, fadeColor(c.transition.Fade()))
	}
}

func fadeColor(alpha float64) color.Color {
	return color.NRGBA{A: uint8(math.Round(ui.Clamp(alpha, 0, 1) * 0xff))}
}

func (c *Controller) drawButton(screen *ebiten.Image, r ui.Rect, label string) {
	render.FillRoundRect(screen, r, buttonRadius, buttonFill)
	render.StrokeRoundRect(screen, r, buttonRadius, strokeWidth, buttonStroke)

	if c.fonts == nil {
		return
	}
	face := c.fonts.Face(math.Floor(r.H*buttonFontFactor), true)
	render.TextCentered(screen, label, face, r.CenterX(), r.CenterY(), labelColor)
}

func (c *Controller) drawToggle(screen *ebiten.Image) {
	r := c.layout.Toggle
	night := c.theme == state.ThemeNight

	fill := toggleDayFill
	if night {
		fill = toggleNightFill
	}
	render.FillRoundRect(screen, r, r.H/2, fill)
	render.StrokeRoundRect(screen, r, r.H/2, strokeWidth, toggleStroke)

	knobX := r.X + r.H/2
	if night {
		knobX = r.X + r.W - r.H/2
	}
	render.FillCircle(screen, knobX, r.CenterY(), r.H*knobRadiusFactor, labelColor)

	if c.fonts == nil {
		return
	}
	label := "Day"
	if night {
		label = "Night"
	}
	face := c.fonts.Face(toggleLabelSize, true)
	render.TextCentered(screen, label, face, r.CenterX(), r.Y+r.H+toggleLabelGap, toggleLabel)
}

func (c *Controller) drawModal(screen *ebiten.Image, canvas, panel, closeBtn ui.Rect, m config.ModalConfig) {
	render.FillRect(screen, canvas, fadeColor(backdropAlpha))

	render.FillRoundRect(screen, panel, panelRadius, panelFill)
	render.StrokeRoundRect(screen, panel, panelRadius, strokeWidth, panelStroke)

	c.drawClose(screen, closeBtn)

	if c.fonts == nil {
		return
	}
	render.TextTop(screen, m.Title, c.fonts.Face(titleSize, true), panel.CenterX(), panel.Y+titleOffset, labelColor)

	body := BodyBox(panel)
	lines := ui.WrapText(m.Body, body.W, c.fonts.Measure(m.FontSize, false))
	lines = ui.VisibleLines(lines, body.H, m.FontSize)

	face := c.fonts.Face(m.FontSize, false)
	lineH := ui.LineHeight(m.FontSize)
	for i, line := range lines {
		if line == "" {
			continue
		}
		render.TextTop(screen, line, face, body.CenterX(), body.Y+float64(i)*lineH, bodyColor)
	}
}

func (c *Controller) drawClose(screen *ebiten.Image, r ui.Rect) {
	render.FillRoundRect(screen, r, closeRadius, closeFill)
	render.StrokeRoundRect(screen, r, closeRadius, strokeWidth, panelStroke)

	const in = closeCrossInset
	render.Line(screen, r.X+in, r.Y+in, r.X+r.W-in, r.Y+r.H-in, closeCrossWidth, closeCross)
	render.Line(screen, r.X+r.W-in, r.Y+in, r.X+in, r.Y+r.H-in, closeCrossWidth, closeCross)
}

// BodyBox is the area of a modal panel available to wrapped body text
func BodyBox(panel ui.Rect) ui.Rect {
	return ui.Rect{
		X: panel.X + 40,
		Y: panel.Y + 80,
		W: panel.W - 80,
		H: panel.H - 120,
	}
}
