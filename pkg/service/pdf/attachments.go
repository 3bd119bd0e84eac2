package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/ctxlog"
)

// Attachment layout bounds, in millimeters
const (
	maxImageWidth  = 170
	maxImageHeight = 210
	imageMarginY   = 40  // safety margin required below an image
	imageLimitY    = 260 // an image must fit above this line
	overflowY      = 250 // page break threshold between attachments
	firstEntryY    = 25
	captionRunes   = 47
)

// AddAttachments appends the attachments section: one header page plus as
// many continuation pages as the entries need. Attachments are processed
// strictly in insertion order, images decoded one at a time. A broken
// attachment renders as an error card and never aborts the document.
// Nothing is appended when the list is empty.
func (d *Document) AddAttachments(ctx context.Context, attachments []model.Attachment) {
	if len(attachments) == 0 {
		return
	}

	d.pdf.AddPage()
	d.headerBar("Anexos")

	y := float64(firstEntryY)
	for i, att := range attachments {
		y = d.addEntry(ctx, i, &att, y)

		if y > overflowY && i < len(attachments)-1 {
			d.continuationPage()
			y = firstEntryY
		}
	}
}

func (d *Document) continuationPage() {
	d.pdf.AddPage()
	d.headerBar("Visualização dos Anexos (continuação)")
}

// addEntry writes one attachment and returns the new Y cursor
func (d *Document) addEntry(ctx context.Context, index int, att *model.Attachment, y float64) float64 {
	d.pdf.SetTextColor(80, 80, 80)
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.Text(leftMargin, y, d.tr(fmt.Sprintf("%d. %s", index+1, att.Filename)))

	d.pdf.SetFontSize(9)
	d.pdf.SetTextColor(120, 120, 120)
	d.pdf.Text(leftMargin, y+5, d.tr(fmt.Sprintf("%s · %.1f KB", att.DisplayType(), att.SizeKB())))

	y += 15

	if !att.IsImage() {
		return d.placeholderCard(att, y)
	}

	img, err := decodePreview(att.Data)
	if err != nil {
		ctxlog.From(ctx).Warn("attachment image decode failed",
			"filename", att.Filename,
			"error", err,
		)
		return d.errorCard(att, y)
	}

	data, err := encodePNG(img)
	if err != nil {
		ctxlog.From(ctx).Warn("attachment image re-encode failed",
			"filename", att.Filename,
			"error", err,
		)
		return d.errorCard(att, y)
	}

	bounds := img.Bounds()
	w, h := FitWithin(float64(bounds.Dx()), float64(bounds.Dy()), maxImageWidth, maxImageHeight)

	// break first if the image plus its safety margin cannot fit
	if y+h+imageMarginY > imageLimitY {
		d.continuationPage()
		y = firstEntryY
	}

	d.pdf.SetFillColor(248, 249, 250)
	d.pdf.SetDrawColor(200, 200, 200)
	d.pdf.RoundedRect(leftMargin, y, w+10, h+10, 3, "1234", "FD")

	name := fmt.Sprintf("attachment-%d", index+1)
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	d.pdf.ImageOptions(name, leftMargin+5, y+5, w, h, false, opts, 0, "")

	y += h + 15
	d.pdf.SetFontSize(8)
	d.pdf.SetTextColor(100, 100, 100)
	caption := fmt.Sprintf("Fig %d: %s", index+1, truncateName(att.Filename))
	textWidth := d.pdf.GetStringWidth(d.tr(caption))
	captionX := leftMargin + w/2 - textWidth/2
	if captionX < leftMargin {
		captionX = leftMargin
	}
	d.pdf.Text(captionX, y, d.tr(caption))

	return y + 20
}

// placeholderCard marks a non-previewable attachment; no decode is ever
// attempted for these
func (d *Document) placeholderCard(att *model.Attachment, y float64) float64 {
	d.pdf.SetDrawColor(220, 220, 220)
	d.pdf.SetFillColor(245, 245, 245)
	d.pdf.RoundedRect(leftMargin, y, 180, 15, 2, "1234", "FD")
	d.pdf.SetTextColor(100, 100, 100)
	d.pdf.SetFontSize(10)
	d.pdf.Text(leftMargin+5, y+9, d.tr(fmt.Sprintf("Arquivo não visualizável: %s", placeholderLabel(att.MimeType))))
	return y + 25
}

// placeholderLabel names the format on the placeholder card. The fallback
// differs from the caption line's "Tipo desconhecido" on purpose.
func placeholderLabel(mimeType string) string {
	if mimeType == "" {
		return "formato desconhecido"
	}
	return mimeType
}

// errorCard marks an attachment whose bytes could not be decoded
func (d *Document) errorCard(att *model.Attachment, y float64) float64 {
	d.pdf.SetDrawColor(220, 220, 220)
	d.pdf.SetFillColor(245, 245, 245)
	d.pdf.RoundedRect(leftMargin, y, 180, 20, 2, "1234", "FD")
	d.pdf.SetTextColor(180, 0, 0)
	d.pdf.SetFontSize(10)
	d.pdf.Text(leftMargin+5, y+12, d.tr(fmt.Sprintf("Erro ao processar a imagem: %s", att.Filename)))
	return y + 30
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= captionRunes+3 {
		return name
	}
	return string(runes[:captionRunes]) + "..."
}
