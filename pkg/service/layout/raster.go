package layout

import (
	"context"
	"image"
	"math"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/fogleman/gg"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Renderer rasterizes summary layout trees. Safe for concurrent use after
// construction; faces are read-only.
type Renderer struct {
	fonts *FontSet
}

// NewRenderer parses the embedded fonts and builds the face set. A failure
// here (or later in Render) is the one fatal error of the composition
// pipeline.
func NewRenderer() (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse regular font")
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse bold font")
	}
	mono, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse mono font")
	}

	face := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     96,
			Hinting: font.HintingFull,
		})
	}

	fonts := &FontSet{}
	specs := []struct {
		dst  *font.Face
		src  *opentype.Font
		size float64
	}{
		{&fonts.Heading, bold, 22},
		{&fonts.HeadingSub, regular, 13},
		{&fonts.Brand, bold, 14},
		{&fonts.Title, bold, 15},
		{&fonts.Label, bold, 12},
		{&fonts.Value, regular, 13},
		{&fonts.Body, mono, 13},
		{&fonts.Score, bold, 22},
		{&fonts.Small, regular, 12},
		{&fonts.Tiny, regular, 10},
	}
	for _, s := range specs {
		f, err := face(s.src, s.size)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to build font face",
				goerr.V("size", s.size))
		}
		*s.dst = f
	}

	return &Renderer{fonts: fonts}, nil
}

// Render builds the layout tree for the request and paints it onto a
// fresh canvas, one page width wide and as tall as the content needs
func (r *Renderer) Render(ctx context.Context, in *model.SummaryInput) (image.Image, error) {
	tree := buildSummary(in)

	// measuring pass on a scratch context
	scratch := &Canvas{dc: gg.NewContext(1, 1), fonts: r.fonts}
	height := tree.Measure(scratch, CanvasWidth)
	if height <= 0 || math.IsNaN(height) {
		return nil, goerr.New("layout measured to an empty canvas",
			goerr.V("height", height))
	}

	dc := gg.NewContext(CanvasWidth, int(math.Ceil(height)))
	dc.SetRGB255(255, 255, 255)
	dc.Clear()
	tree.Draw(&Canvas{dc: dc, fonts: r.fonts}, 0, 0, CanvasWidth)

	ctxlog.From(ctx).Debug("summary block rasterized",
		"width", CanvasWidth,
		"height", int(math.Ceil(height)),
		"score", in.Assessment.Score,
	)

	return dc.Image(), nil
}
