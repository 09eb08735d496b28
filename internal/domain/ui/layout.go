package ui

import "math"

const (
	// EdgePad is the distance between edge-anchored controls and the canvas border
	EdgePad = 18.0

	ToggleW = 110.0
	ToggleH = 46.0
	BackW   = 150.0
	BackH   = 46.0

	// CloseSize is the side of a modal's square close button
	CloseSize = 44.0
	// CloseInset is the close button's offset from its panel's top-right corner
	CloseInset = 12.0
)

// Layout is the set of interactive rectangles for one frame.
// It carries no state between frames; recompute it whenever the canvas may have changed.
type Layout struct {
	Toggle    Rect
	Back      Rect
	Start     Rect
	NewDream  Rect
	LoadDream Rect
	Help      Rect
	Credits   Rect

	HelpPanel    Rect
	HelpClose    Rect
	CreditsPanel Rect
	CreditsClose Rect
}

// ComputeLayout derives every rectangle from the canvas size
func ComputeLayout(cw, ch float64) Layout {
	var l Layout

	// Top corners
	l.Toggle = Rect{X: cw - ToggleW - EdgePad, Y: EdgePad, W: ToggleW, H: ToggleH}
	l.Back = Rect{X: EdgePad, Y: EdgePad, W: BackW, H: BackH}

	// Menu: centered start button
	l.Start.W = Clamp(cw*0.22, 220, 320)
	l.Start.H = Clamp(ch*0.085, 56, 80)
	l.Start.X = (cw - l.Start.W) / 2
	l.Start.Y = (ch - l.Start.H) / 2

	// Room: portal button slightly above center, three buttons along the bottom
	l.NewDream.W = Clamp(cw*0.28, 240, 360)
	l.NewDream.H = Clamp(ch*0.09, 56, 90)
	l.NewDream.X = (cw - l.NewDream.W) / 2
	l.NewDream.Y = ch*0.46 - l.NewDream.H/2

	buttonH := Clamp(ch*0.08, 54, 86)
	bottom := ch - EdgePad - buttonH

	l.LoadDream.W = Clamp(cw*0.22, 220, 320)
	l.LoadDream.H = buttonH
	l.LoadDream.X = cw * 0.10
	l.LoadDream.Y = bottom

	l.Help.W = Clamp(cw*0.20, 210, 300)
	l.Help.H = buttonH
	l.Help.X = cw*0.67 - l.Help.W/2
	l.Help.Y = bottom

	l.Credits.W = Clamp(cw*0.18, 190, 280)
	l.Credits.H = buttonH
	l.Credits.X = cw - EdgePad - l.Credits.W
	l.Credits.Y = bottom

	// Modals
	l.HelpPanel = centered(cw, ch, math.Min(720, cw*0.75), math.Min(420, ch*0.55))
	l.HelpClose = closeButton(l.HelpPanel)

	l.CreditsPanel = centered(cw, ch, math.Min(720, cw*0.75), math.Min(360, ch*0.50))
	l.CreditsClose = closeButton(l.CreditsPanel)

	return l
}

func centered(cw, ch, w, h float64) Rect {
	return Rect{X: (cw - w) / 2, Y: (ch - h) / 2, W: w, H: h}
}

func closeButton(panel Rect) Rect {
	return Rect{
		X: panel.X + panel.W - CloseSize - CloseInset,
		Y: panel.Y + CloseInset,
		W: CloseSize,
		H: CloseSize,
	}
}
