package usecase

import (
	"context"
	"time"

	"github.com/colet-sistemas/solicita/pkg/domain/interfaces"
	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/service/layout"
	"github.com/colet-sistemas/solicita/pkg/service/pdf"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultDisplayOffset shifts incident timestamps into the display
// timezone before formatting. The original deployment hard-coded -3h
// (UTC→America/Sao_Paulo); it is configurable here because callers
// passing already-local timestamps would otherwise be double-shifted.
const DefaultDisplayOffset = -3 * time.Hour

// ComposeOption is a functional option for configuring Compose
type ComposeOption func(*Compose)

// WithDisplayOffset overrides the display timezone offset
func WithDisplayOffset(offset time.Duration) ComposeOption {
	return func(u *Compose) {
		u.displayOffset = offset
	}
}

// Compose turns a validated request record into a finished PDF artifact
type Compose struct {
	renderer      interfaces.SummaryRenderer
	displayOffset time.Duration
}

// NewCompose creates a Compose use case
func NewCompose(renderer interfaces.SummaryRenderer, opts ...ComposeOption) *Compose {
	u := &Compose{
		renderer:      renderer,
		displayOffset: DefaultDisplayOffset,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Compose runs the full document pipeline: score, rasterize, paginate,
// attach, stamp, name. Attachment problems surface inside the document;
// only a rasterization failure is fatal.
func (u *Compose) Compose(ctx context.Context, record *model.RequestRecord, userName, userRole string, theme model.Theme) (*model.Artifact, error) {
	if err := record.Validate(); err != nil {
		return nil, err
	}

	displayTime := record.OccurredAt.Add(u.displayOffset)
	assessment := record.Assess()

	img, err := u.renderer.Render(ctx, &model.SummaryInput{
		Record:      record,
		UserName:    userName,
		UserRole:    userRole,
		Theme:       theme,
		Assessment:  assessment,
		DisplayTime: displayTime,
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to rasterize summary layout",
			goerr.V("title", record.Title))
	}

	cuts := layout.Paginate(img, layout.PageWindow, layout.SeamTolerance)

	doc := pdf.NewDocument(pdf.Metadata{
		Title:   theme.Title + ": " + record.Title,
		Subject: theme.Title + ": " + record.Title,
		Author:  userName,
	}, theme.Accent)

	if err := doc.AddSummary(img, cuts); err != nil {
		return nil, goerr.Wrap(err, "failed to compose summary pages")
	}
	doc.AddAttachments(ctx, record.Attachments)

	data, pages, err := doc.Output()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to finalize document")
	}

	artifact := &model.Artifact{
		Filename:  ArtifactName(theme.Title, record.Title, displayTime),
		PageCount: pages,
		Data:      data,
	}

	ctxlog.From(ctx).Info("document composed",
		"filename", artifact.Filename,
		"pages", artifact.PageCount,
		"score", assessment.Score,
		"band", assessment.Band.String(),
		"attachments", len(record.Attachments),
	)

	return artifact, nil
}
