package languages

import (
	"langshare/internal/models"
)

// languageTotals is the per-language byte count across repositories. Names keeps the order in
// which languages were first seen; shares are computed and normalized in that order.
type languageTotals struct {
	Names []string
	Sizes map[string]int64
	Total int64
}

// sumLanguageSizes folds every language edge of every repository into one accumulator per name.
func sumLanguageSizes(repositories []*models.Repository) *languageTotals {
	totals := &languageTotals{
		Names: make([]string, 0),
		Sizes: make(map[string]int64),
	}

	for _, repository := range repositories {
		for _, language := range repository.Languages {
			if _, seen := totals.Sizes[language.Name]; !seen {
				totals.Names = append(totals.Names, language.Name)
			}
			totals.Sizes[language.Name] += language.Size
			totals.Total += language.Size
		}
	}

	return totals
}
