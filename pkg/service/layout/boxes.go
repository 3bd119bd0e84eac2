package layout

import (
	"fmt"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"golang.org/x/image/font"
)

const (
	boxPadding   = 10
	boxRadius    = 6
	cellRadius   = 5
	gridGap      = 10
	barHeight    = 30
	bodySpacing  = 1.6
	labelColumn  = 75
	accentStripe = 3
)

func (c *Canvas) setColor(r, g, b int) {
	c.dc.SetRGB255(r, g, b)
}

func (c *Canvas) setModelColor(col model.Color) {
	c.dc.SetRGB255(col.RGB())
}

// drawText draws s with its top edge at yTop
func (c *Canvas) drawText(face font.Face, s string, x, yTop float64) {
	c.dc.SetFontFace(face)
	ascent := float64(face.Metrics().Ascent.Ceil())
	c.dc.DrawString(s, x, yTop+ascent)
}

// drawTextAnchored draws s horizontally anchored at ax around x
func (c *Canvas) drawTextAnchored(face font.Face, s string, x, yTop, ax float64) {
	c.dc.SetFontFace(face)
	w, _ := c.dc.MeasureString(s)
	c.drawText(face, s, x-w*ax, yTop)
}

// wrapHeight measures the height of s wrapped to width
func (c *Canvas) wrapHeight(face font.Face, s string, width, spacing float64) float64 {
	c.dc.SetFontFace(face)
	lines := c.dc.WordWrap(s, width)
	return float64(len(lines)) * lineHeight(face, spacing)
}

// drawWrapped draws s wrapped to width with its top edge at yTop
func (c *Canvas) drawWrapped(face font.Face, s string, x, yTop, width, spacing float64) {
	c.dc.SetFontFace(face)
	lh := lineHeight(face, spacing)
	ascent := float64(face.Metrics().Ascent.Ceil())
	for i, line := range c.dc.WordWrap(s, width) {
		c.dc.DrawString(line, x, yTop+float64(i)*lh+ascent)
	}
}

// headerBand is the accent-colored document header: theme title and
// description on the left, company brand and generation date on the right
type headerBand struct {
	theme model.Theme
	date  string
}

func (h *headerBand) Measure(c *Canvas, width float64) float64 {
	return boxPadding*2 + lineHeight(c.fonts.Heading, 1.2) + 8 + lineHeight(c.fonts.HeadingSub, 1.2) + 8
}

func (h *headerBand) Draw(c *Canvas, x, y, width float64) {
	height := h.Measure(c, width)

	c.setModelColor(h.theme.Accent)
	c.dc.DrawRoundedRectangle(x, y, width, height, boxRadius)
	c.dc.Fill()

	c.setColor(255, 255, 255)
	ty := y + boxPadding
	c.drawText(c.fonts.Heading, h.theme.Title, x+12, ty)
	ty += lineHeight(c.fonts.Heading, 1.2) + 8
	c.drawText(c.fonts.HeadingSub, h.theme.Description, x+12, ty)

	c.drawTextAnchored(c.fonts.Brand, "COLET SISTEMAS", x+width-12, y+boxPadding, 1)
	c.drawTextAnchored(c.fonts.Small, h.date, x+width-12, y+boxPadding+lineHeight(c.fonts.Brand, 1.2)+5, 1)
}

// summaryRow is the two-column block under the header: request metadata on
// the left, the GUT criticality badge on the right
type summaryRow struct {
	title      string
	reporter   string
	date       string
	client     string
	accent     model.Color
	assessment model.Assessment
}

const summaryGap = 20

func (s *summaryRow) Measure(c *Canvas, width float64) float64 {
	left := s.leftHeight(c)
	right := s.badgeHeight(c)
	if right > left {
		return right
	}
	return left
}

func (s *summaryRow) leftHeight(c *Canvas) float64 {
	rowH := lineHeight(c.fonts.Value, 1.2) + 10
	return boxPadding + lineHeight(c.fonts.Title, 1.2) + 12 + 3*rowH + boxPadding
}

func (s *summaryRow) badgeHeight(c *Canvas) float64 {
	return boxPadding + lineHeight(c.fonts.Tiny, 1.2) + 3 +
		lineHeight(c.fonts.Score, 1.2) + 3 +
		lineHeight(c.fonts.Small, 1.2) + 6 +
		lineHeight(c.fonts.Tiny, 1.2) + boxPadding
}

func (s *summaryRow) Draw(c *Canvas, x, y, width float64) {
	height := s.Measure(c, width)
	badgeW := (width - summaryGap) / 4
	leftW := width - summaryGap - badgeW

	// metadata card with accent stripe
	c.setColor(0xf9, 0xfa, 0xfc)
	c.dc.DrawRoundedRectangle(x, y, leftW, height, boxRadius)
	c.dc.Fill()
	c.setModelColor(s.accent)
	c.dc.DrawRectangle(x, y, accentStripe, height)
	c.dc.Fill()

	tx := x + accentStripe + boxPadding
	ty := y + boxPadding
	c.setColor(0x44, 0x44, 0x44)
	c.drawText(c.fonts.Title, s.title, tx, ty)
	ty += lineHeight(c.fonts.Title, 1.2) + 4
	c.setColor(0xea, 0xec, 0xef)
	c.dc.DrawRectangle(tx, ty, leftW-accentStripe-boxPadding*2, 1)
	c.dc.Fill()
	ty += 8

	rowH := lineHeight(c.fonts.Value, 1.2) + 10
	rows := []struct{ label, value string }{
		{"Relator:", s.reporter},
		{"Data:", s.date},
		{"Cliente:", s.client},
	}
	for _, row := range rows {
		c.setColor(0x55, 0x55, 0x55)
		c.drawText(c.fonts.Label, row.label, tx, ty)
		c.setColor(0x33, 0x33, 0x33)
		c.drawText(c.fonts.Value, row.value, tx+labelColumn, ty)
		ty += rowH
	}

	s.drawBadge(c, x+leftW+summaryGap, y, badgeW, height)
}

func (s *summaryRow) drawBadge(c *Canvas, x, y, w, h float64) {
	a := s.assessment

	c.setModelColor(a.Band.Color())
	c.dc.DrawRoundedRectangle(x, y, w, h, 4)
	c.dc.Fill()

	cx := x + w/2
	ty := y + boxPadding
	c.setColor(255, 255, 255)
	c.drawTextAnchored(c.fonts.Tiny, "MATRIZ GUT", cx, ty, 0.5)
	ty += lineHeight(c.fonts.Tiny, 1.2) + 3
	c.drawTextAnchored(c.fonts.Score, fmt.Sprintf("%d", a.Score), cx, ty, 0.5)
	ty += lineHeight(c.fonts.Score, 1.2) + 3
	c.drawTextAnchored(c.fonts.Small, a.Band.Label(), cx, ty, 0.5)
	ty += lineHeight(c.fonts.Small, 1.2) + 6
	breakdown := fmt.Sprintf("G:%d  U:%d  T:%d", a.Severity, a.Urgency, a.Trend)
	c.drawTextAnchored(c.fonts.Tiny, breakdown, cx, ty, 0.5)
}

// section is a titled text block: dark title bar over a bordered body box.
// The body never shrinks below minHeight and grows with the wrapped text.
type section struct {
	title     string
	body      string
	minHeight float64
}

func (s *section) bodyHeight(c *Canvas, width float64) float64 {
	h := c.wrapHeight(c.fonts.Body, s.body, width-boxPadding*2, bodySpacing) + boxPadding*2
	if h < s.minHeight {
		h = s.minHeight
	}
	return h
}

func (s *section) Measure(c *Canvas, width float64) float64 {
	return barHeight + s.bodyHeight(c, width)
}

func (s *section) Draw(c *Canvas, x, y, width float64) {
	c.setColor(0x3a, 0x3a, 0x3a)
	c.dc.DrawRoundedRectangle(x, y, width, barHeight+boxRadius, boxRadius)
	c.dc.Fill()
	c.dc.DrawRectangle(x, y+boxRadius, width, barHeight-boxRadius)
	c.dc.Fill()
	c.setColor(255, 255, 255)
	c.drawText(c.fonts.Brand, s.title, x+12, y+(barHeight-lineHeight(c.fonts.Brand, 1.2))/2)

	bodyH := s.bodyHeight(c, width)
	by := y + barHeight
	c.setColor(255, 255, 255)
	c.dc.DrawRectangle(x, by, width, bodyH)
	c.dc.Fill()
	c.setColor(0xea, 0xec, 0xef)
	c.dc.DrawRectangle(x, by, width, bodyH)
	c.dc.SetLineWidth(1)
	c.dc.Stroke()

	c.setColor(0x33, 0x33, 0x33)
	c.drawWrapped(c.fonts.Body, s.body, x+boxPadding, by+boxPadding, width-boxPadding*2, bodySpacing)
}

// descriptionMinHeight grows the description box with the text length,
// clamped between 70 and 160 layout units
func descriptionMinHeight(text string) float64 {
	h := 70 + float64(len(text))/5
	if h > 160 {
		h = 160
	}
	return h
}

type gridField struct {
	label string
	value string
	span  bool
}

// techGrid is the technical information block: a dark title bar over a
// two-column grid of labeled cells; spanning fields take a full row
type techGrid struct {
	title  string
	fields []gridField
}

func (g *techGrid) cellHeight(c *Canvas) float64 {
	return 12 + lineHeight(c.fonts.Label, 1.2) + 6 + lineHeight(c.fonts.Value, 1.2) + 12
}

func (g *techGrid) rows() int {
	rows, col := 0, 0
	for _, f := range g.fields {
		if f.span {
			if col != 0 {
				rows++
				col = 0
			}
			rows++
			continue
		}
		col++
		if col == 2 {
			rows++
			col = 0
		}
	}
	if col != 0 {
		rows++
	}
	return rows
}

func (g *techGrid) Measure(c *Canvas, width float64) float64 {
	rows := g.rows()
	return barHeight + gridGap + float64(rows)*g.cellHeight(c) + float64(rows-1)*gridGap + gridGap
}

func (g *techGrid) Draw(c *Canvas, x, y, width float64) {
	height := g.Measure(c, width)

	c.setColor(0x3a, 0x3a, 0x3a)
	c.dc.DrawRoundedRectangle(x, y, width, barHeight+boxRadius, boxRadius)
	c.dc.Fill()
	c.dc.DrawRectangle(x, y+boxRadius, width, barHeight-boxRadius)
	c.dc.Fill()
	c.setColor(255, 255, 255)
	c.drawText(c.fonts.Brand, g.title, x+12, y+(barHeight-lineHeight(c.fonts.Brand, 1.2))/2)

	gy := y + barHeight
	c.setColor(255, 255, 255)
	c.dc.DrawRectangle(x, gy, width, height-barHeight)
	c.dc.Fill()
	c.setColor(0xea, 0xec, 0xef)
	c.dc.DrawRectangle(x, gy, width, height-barHeight)
	c.dc.SetLineWidth(1)
	c.dc.Stroke()

	cellH := g.cellHeight(c)
	cellW := (width - gridGap*3) / 2
	col, row := 0, 0
	for _, f := range g.fields {
		w := cellW
		if f.span {
			if col != 0 {
				row++
				col = 0
			}
			w = width - gridGap*2
		}
		cx := x + gridGap + float64(col)*(cellW+gridGap)
		cy := gy + gridGap + float64(row)*(cellH+gridGap)
		g.drawCell(c, f, cx, cy, w, cellH)
		if f.span {
			row++
			continue
		}
		col++
		if col == 2 {
			col = 0
			row++
		}
	}
}

func (g *techGrid) drawCell(c *Canvas, f gridField, x, y, w, h float64) {
	c.setColor(0xf8, 0xf9, 0xfa)
	c.dc.DrawRoundedRectangle(x, y, w, h, cellRadius)
	c.dc.Fill()

	c.setColor(0x55, 0x55, 0x55)
	c.drawText(c.fonts.Label, f.label, x+12, y+12)
	c.setColor(0x33, 0x33, 0x33)
	c.drawText(c.fonts.Value, f.value, x+12, y+12+lineHeight(c.fonts.Label, 1.2)+6)
}
