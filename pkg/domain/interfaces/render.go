package interfaces

import (
	"context"
	"image"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
)

// SummaryRenderer rasterizes the summary layout block of one request into
// a fixed-width image. A render failure here is fatal to the composition.
type SummaryRenderer interface {
	Render(ctx context.Context, in *model.SummaryInput) (image.Image, error)
}
