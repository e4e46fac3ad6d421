package models

// Repository is a single repository as reported by the metadata service.
type Repository struct {
	Name       string          `json:"name"`
	IsArchived bool            `json:"isArchived"`
	Languages  []*LanguageSize `json:"languages"`
}

// LanguageSize is the number of bytes of one language detected in a repository.
type LanguageSize struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}
