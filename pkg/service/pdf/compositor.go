// Package pdf assembles the final document: summary raster bands, the
// attachments section and page numbering.
package pdf

import (
	"bytes"
	"fmt"
	"image"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/service/layout"
	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
)

// A4 geometry in millimeters
const (
	pageWidth     = 210
	pageHeight    = 297
	headerBarH    = 12
	leftMargin    = 15
	footerY       = 287
	footerRightX  = 190
	creatorString = "COLET System"
)

// Metadata is stamped into the PDF document properties
type Metadata struct {
	Title   string
	Subject string
	Author  string
}

// Document accumulates pages for one artifact. Not safe for concurrent
// use; compositions are strictly sequential by design.
type Document struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	accent model.Color
}

// NewDocument creates an empty A4 portrait document with the shared
// footer (page i of N, bottom right) installed
func NewDocument(meta Metadata, accent model.Color) *Document {
	p := fpdf.New("P", "mm", "A4", "")
	p.SetTitle(meta.Title, true)
	p.SetSubject(meta.Subject, true)
	p.SetAuthor(meta.Author, true)
	p.SetCreator(creatorString, true)
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AliasNbPages("")

	d := &Document{
		pdf:    p,
		tr:     p.UnicodeTranslatorFromDescriptor(""),
		accent: accent,
	}

	p.SetFooterFunc(func() {
		p.SetFont("Helvetica", "", 8)
		p.SetTextColor(160, 160, 160)
		p.SetXY(footerRightX-40, footerY-4)
		p.CellFormat(40, 8, fmt.Sprintf("%d / {nb}", p.PageNo()), "", 0, "R", false, 0, "")
	})

	return d
}

// AddSummary lays the rasterized summary block across as many pages as
// the band boundaries dictate. The image is registered once; each page
// re-places it at a negative vertical offset inside a clip window, so
// only the page's own band shows.
func (d *Document) AddSummary(img image.Image, cuts []int) error {
	data, err := encodePNG(img)
	if err != nil {
		return goerr.Wrap(err, "failed to encode summary raster")
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader("summary", opts, bytes.NewReader(data))
	if err := d.pdf.Error(); err != nil {
		return goerr.Wrap(err, "failed to register summary raster")
	}

	fullHeight := float64(img.Bounds().Dy()) / layout.PxPerMM
	for i := 0; i+1 < len(cuts); i++ {
		top := float64(cuts[i]) / layout.PxPerMM
		bandHeight := float64(cuts[i+1]-cuts[i]) / layout.PxPerMM

		d.pdf.AddPage()
		d.pdf.ClipRect(0, 0, pageWidth, bandHeight, false)
		d.pdf.ImageOptions("summary", 0, -top, pageWidth, fullHeight, false, opts, 0, "")
		d.pdf.ClipEnd()
	}

	return d.pdf.Error()
}

// Output finalizes the document and returns its bytes and page count
func (d *Document) Output() ([]byte, int, error) {
	pages := d.pdf.PageCount()
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, 0, goerr.Wrap(err, "failed to write PDF")
	}
	return buf.Bytes(), pages, nil
}

// headerBar paints the accent band used by attachment pages
func (d *Document) headerBar(title string) {
	r, g, b := d.accent.RGB()
	d.pdf.SetFillColor(r, g, b)
	d.pdf.Rect(0, 0, pageWidth, headerBarH, "F")
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.Text(leftMargin, 8, d.tr(title))
}
