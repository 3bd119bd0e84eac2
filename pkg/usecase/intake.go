package usecase

import (
	"context"

	"github.com/colet-sistemas/solicita/pkg/domain/model"
	"github.com/colet-sistemas/solicita/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Intake resolves submissions against the static catalog and hands the
// resulting record to the compositor
type Intake struct {
	catalog *model.Catalog
	compose *Compose
}

// NewIntake creates an Intake use case
func NewIntake(catalog *model.Catalog, compose *Compose) *Intake {
	return &Intake{
		catalog: catalog,
		compose: compose,
	}
}

// Users returns the portal user directory
func (u *Intake) Users() []model.User {
	return u.catalog.Users
}

// Clients returns the client names in catalog order
func (u *Intake) Clients() []string {
	return u.catalog.ClientNames()
}

// Databases returns the database identifiers for a client
func (u *Intake) Databases(client string) ([]string, error) {
	dbs := u.catalog.DatabasesForClient(client)
	if dbs == nil {
		return nil, goerr.Wrap(model.ErrClientNotFound, "unknown client",
			goerr.V("client", client))
	}
	return dbs, nil
}

// ERPModules returns the fixed ERP module list
func (u *Intake) ERPModules() []string {
	return u.catalog.ERPModules
}

// OperatingSystems returns the fixed operating system list
func (u *Intake) OperatingSystems() []string {
	return u.catalog.OperatingSystems
}

// CategoryInfo describes one request category for option lists
type CategoryInfo struct {
	ID          types.Category `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Accent      string         `json:"accent"`
}

// Categories returns the request categories with their themes
func (u *Intake) Categories() []CategoryInfo {
	cats := []types.Category{types.CategoryBug, types.CategoryImprovement}
	infos := make([]CategoryInfo, 0, len(cats))
	for _, cat := range cats {
		theme, err := u.catalog.ThemeFor(cat)
		if err != nil {
			continue
		}
		infos = append(infos, CategoryInfo{
			ID:          cat,
			Title:       theme.Title,
			Description: theme.Description,
			Accent:      theme.Accent.Hex(),
		})
	}
	return infos
}

// Submit validates a submission, resolves the reporting user and theme
// from the catalog, and composes the document
func (u *Intake) Submit(ctx context.Context, sub *model.Submission) (*model.Artifact, error) {
	user := u.catalog.FindUser(sub.User)
	if user == nil {
		return nil, goerr.Wrap(model.ErrUserNotFound, "unknown reporting user",
			goerr.V("user", sub.User))
	}

	theme, err := u.catalog.ThemeFor(sub.Category)
	if err != nil {
		return nil, err
	}

	record, err := sub.Record()
	if err != nil {
		return nil, err
	}

	id := types.NewSolicitationID()
	ctxlog.From(ctx).Info("solicitation received",
		"id", id.String(),
		"category", sub.Category.String(),
		"user", user.ID.String(),
		"attachments", len(sub.Attachments),
	)

	return u.compose.Compose(ctx, record, user.Name, user.Role, theme)
}
