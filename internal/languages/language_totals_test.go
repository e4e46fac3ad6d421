package languages

import (
	"testing"

	"langshare/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestSumLanguageSizes_KeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	repositories := []*models.Repository{
		{Name: "web", Languages: []*models.LanguageSize{{Name: "TypeScript", Size: 300}, {Name: "CSS", Size: 20}}},
		{Name: "api", Languages: []*models.LanguageSize{{Name: "Go", Size: 900}, {Name: "TypeScript", Size: 50}}},
		{Name: "docs"},
	}

	totals := sumLanguageSizes(repositories)

	assert.Equal(t, []string{"TypeScript", "CSS", "Go"}, totals.Names)
	assert.Equal(t, map[string]int64{"TypeScript": 350, "CSS": 20, "Go": 900}, totals.Sizes)
	assert.Equal(t, int64(1270), totals.Total)
}

func TestSumLanguageSizes_Empty(t *testing.T) {
	t.Parallel()

	totals := sumLanguageSizes(nil)

	assert.Empty(t, totals.Names)
	assert.Empty(t, totals.Sizes)
	assert.Equal(t, int64(0), totals.Total)
}

func TestSumLanguageSizes_ZeroSizedLanguageIsListed(t *testing.T) {
	t.Parallel()

	totals := sumLanguageSizes([]*models.Repository{
		{Name: "a", Languages: []*models.LanguageSize{{Name: "Go", Size: 0}, {Name: "Go", Size: 10}}},
	})

	assert.Equal(t, []string{"Go"}, totals.Names)
	assert.Equal(t, int64(10), totals.Sizes["Go"])
}
