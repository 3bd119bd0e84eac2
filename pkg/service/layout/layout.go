// Package layout renders the request summary as a component tree of
// measured boxes onto a fixed-width raster canvas, and slices the result
// into page-sized bands.
package layout

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Raster geometry. The canvas is 210mm wide (one A4 page) at 4px/mm; one
// page band leaves a 10mm bottom margin on the 297mm page.
const (
	CanvasWidth = 840
	PxPerMM     = 4.0
	PageWindow  = 1148 // 287mm
)

// SeamTolerance is the fraction of a page window searched above a default
// cut point for a visually empty seam
const SeamTolerance = 0.05

// Box is one node of the layout tree. Measure returns the height the box
// needs at the given width; Draw paints it at (x, y). Measure is always
// called before Draw with the same width.
type Box interface {
	Measure(c *Canvas, width float64) float64
	Draw(c *Canvas, x, y, width float64)
}

// Canvas wraps the drawing context and the font set shared by all boxes
type Canvas struct {
	dc    *gg.Context
	fonts *FontSet
}

// FontSet holds the faces used across the summary block, keyed by role
type FontSet struct {
	Heading    font.Face // header band title
	HeadingSub font.Face // header band description
	Brand      font.Face // company name, section bars
	Title      font.Face // request title line
	Label      font.Face // field labels
	Value      font.Face // field values
	Body       font.Face // description body (monospaced)
	Score      font.Face // GUT badge score
	Small      font.Face // badge label, dates
	Tiny       font.Face // badge caption, GUT breakdown
}

// lineHeight returns the drawing line height for a face with the body
// line spacing applied
func lineHeight(face font.Face, spacing float64) float64 {
	m := face.Metrics()
	return float64(m.Height.Ceil()) * spacing
}

// vstack lays out children vertically with outer padding and a fixed gap
type vstack struct {
	padding  float64
	gap      float64
	children []Box
}

func (s *vstack) Measure(c *Canvas, width float64) float64 {
	inner := width - s.padding*2
	h := s.padding * 2
	for i, child := range s.children {
		if i > 0 {
			h += s.gap
		}
		h += child.Measure(c, inner)
	}
	return h
}

func (s *vstack) Draw(c *Canvas, x, y, width float64) {
	inner := width - s.padding*2
	cy := y + s.padding
	for i, child := range s.children {
		if i > 0 {
			cy += s.gap
		}
		h := child.Measure(c, inner)
		child.Draw(c, x+s.padding, cy, inner)
		cy += h
	}
}
