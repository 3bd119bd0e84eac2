package usecase

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const titleBudget = 20 // bytes of the title kept in the filename

// ArtifactName builds the deterministic download filename:
// {category-title}_{YYYYMMDD}_{sanitized-title}.pdf, dated from the
// record's occurrence time rather than the wall clock.
func ArtifactName(categoryTitle, title string, occurredAt time.Time) string {
	category := strings.Join(strings.Fields(categoryTitle), "_")
	return fmt.Sprintf("%s_%s_%s.pdf", category, occurredAt.Format("20060102"), sanitizeTitle(title))
}

// sanitizeTitle truncates the title to the byte budget (never splitting a
// rune) and replaces everything outside ASCII letters and digits with an
// underscore
func sanitizeTitle(title string) string {
	if len(title) > titleBudget {
		cut := titleBudget
		for cut > 0 && !utf8.RuneStart(title[cut]) {
			cut--
		}
		title = title[:cut]
	}

	var b strings.Builder
	for _, r := range title {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
