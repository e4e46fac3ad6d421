package languages

import (
	"fmt"
	"sort"

	"langshare/internal/models"
	"langshare/internal/shares"
)

// ShareOptions controls how raw byte ratios are turned into reported shares.
type ShareOptions struct {
	Precision int // decimal places of every share
	MaxPasses int // redistribution passes, 1 keeps a single ordered pass
}

// buildReport normalizes the byte ratios of totals and returns the report sorted by
// descending count, together with the grid units by which the shares still miss 1.
func buildReport(totals *languageTotals, options ShareOptions) (*models.LanguageReport, int64, error) {
	if totals.Total == 0 {
		return models.NewEmptyLanguageReport(), 0, nil
	}

	raw := make([]float64, len(totals.Names))
	for i, name := range totals.Names {
		raw[i] = float64(totals.Sizes[name]) / float64(totals.Total)
	}

	normalized, err := shares.NormalizeWithPasses(raw, options.Precision, options.MaxPasses)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to normalize %d shares: %w", len(raw), err)
	}
	residual, err := shares.Residual(normalized, options.Precision)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to compute share residual: %w", err)
	}

	// zip by index before sorting, the normalizer works in first-seen order
	entries := make([]*models.LanguageShare, len(totals.Names))
	for i, name := range totals.Names {
		entries[i] = &models.LanguageShare{
			Name:  name,
			Count: totals.Sizes[name],
			Share: normalized[i],
		}
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return entries[a].Count > entries[b].Count
	})

	return &models.LanguageReport{
		Languages: entries,
		Total:     totals.Total,
	}, residual, nil
}
