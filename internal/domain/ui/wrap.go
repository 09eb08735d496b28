package ui

import (
	"math"
	"strings"
)

// LineHeightFactor is the line pitch relative to the font size
const LineHeightFactor = 1.35

// MeasureFunc returns the rendered width of s in pixels
type MeasureFunc func(s string) float64

// WrapText greedily packs words into lines no wider than maxWidth.
// Paragraphs are split on newlines; blank paragraphs are kept as empty lines.
// A single word wider than maxWidth gets a line of its own and is not broken.
func WrapText(body string, maxWidth float64, measure MeasureFunc) []string {
	var lines []string
	for _, para := range strings.Split(body, "\n") {
		if strings.TrimSpace(para) == "" {
			lines = append(lines, "")
			continue
		}

		line := ""
		for _, word := range strings.Split(para, " ") {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if line != "" && measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = word
				continue
			}
			line = candidate
		}
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// LineHeight returns floor(fontSize * 1.35)
func LineHeight(fontSize float64) float64 {
	return math.Floor(fontSize * LineHeightFactor)
}

// VisibleLines drops the lines that do not fit into availH.
func VisibleLines(lines []string, availH, fontSize float64) []string {
	lh := LineHeight(fontSize)
	if lh <= 0 || availH <= 0 {
		return nil
	}
	limit := int(math.Floor(availH / lh))
	if limit < len(lines) {
		return lines[:limit]
	}
	return lines
}
