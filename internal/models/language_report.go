package models

// LanguageReport is the language composition of a user's repositories.
//
// Entries are sorted by descending Count. Shares are fixed-precision and sum to exactly 1
// unless the report is empty.
//
// Example JSON:
//
//	{
//	  "languages": [
//	    {"name": "Go", "count": 700, "share": 0.7},
//	    {"name": "TypeScript", "count": 200, "share": 0.2},
//	    {"name": "Shell", "count": 100, "share": 0.1}
//	  ],
//	  "total": 1000
//	}
type LanguageReport struct {
	Languages []*LanguageShare `json:"languages"`
	Total     int64            `json:"total"`
}

type LanguageShare struct {
	Name  string  `json:"name"`
	Count int64   `json:"count"`
	Share float64 `json:"share"`
}

// NewEmptyLanguageReport returns a report for a user without any detected language.
func NewEmptyLanguageReport() *LanguageReport {
	return &LanguageReport{
		Languages: make([]*LanguageShare, 0),
		Total:     0,
	}
}

func (r *LanguageReport) IsEmpty() bool {
	return r.Total == 0
}
