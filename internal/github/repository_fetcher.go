package github

import (
	"context"
	"fmt"
	"strings"
	"time"

	"langshare/internal/models"
	"langshare/internal/shared/loggers"

	"github.com/shurcooL/githubv4"
)

// Querier is the part of *githubv4.Client used by the fetcher.
type Querier interface {
	Query(ctx context.Context, q any, variables map[string]any) error
}

//go:generate mockgen -source=repository_fetcher.go -destination=./mocks/repository_fetcher_mock.go -package=mocks
type RepositoryFetcher interface {
	// FetchRepositories walks every page of the login's owned repositories and returns the
	// non-archived ones, excluding the profile repository named after the login.
	FetchRepositories(ctx context.Context, login string) ([]*models.Repository, error)
}

// FetcherOptions bounds the size of each GraphQL page.
type FetcherOptions struct {
	PageSize         int // repositories per page, GitHub caps this at 100
	LanguagesPerRepo int // largest languages kept per repository
}

type repositoriesQuery struct {
	RateLimit rateLimit
	User      *struct {
		Repositories struct {
			Nodes    []repositoryNode
			PageInfo struct {
				HasNextPage bool
				EndCursor   githubv4.String
			}
		} `graphql:"repositories(first: $first, after: $after, ownerAffiliations: OWNER)"`
	} `graphql:"user(login: $login)"`
}

// rateLimit is the caller's GraphQL budget. Limit is zero when the endpoint does not report it.
type rateLimit struct {
	Limit     int
	Cost      int
	Remaining int
}

type repositoryNode struct {
	Name       string
	IsArchived bool
	Languages  struct {
		Edges []struct {
			Size int64
			Node struct {
				Name string
			}
		}
	} `graphql:"languages(first: $languagesFirst, orderBy: {field: SIZE, direction: DESC})"`
}

type repositoryFetcher struct {
	querier Querier
	options FetcherOptions
}

func NewRepositoryFetcher(querier Querier, options FetcherOptions) RepositoryFetcher {
	return &repositoryFetcher{querier: querier, options: options}
}

func (f *repositoryFetcher) FetchRepositories(ctx context.Context, login string) ([]*models.Repository, error) {
	logger := loggers.Ctx(ctx)

	variables := map[string]any{
		"login":          githubv4.String(login),
		"first":          githubv4.Int(f.options.PageSize),
		"languagesFirst": githubv4.Int(f.options.LanguagesPerRepo),
		"after":          (*githubv4.String)(nil),
	}

	repositories := make([]*models.Repository, 0)
	for page := 1; ; page++ {
		var q repositoriesQuery
		if err := f.query(ctx, &q, variables); err != nil {
			if isUserNotFound(err) {
				return nil, fmt.Errorf("%w: %q", ErrUserNotFound, login)
			}
			return nil, fmt.Errorf("failed to query repositories page %d: %w", page, err)
		}
		recordRateLimit(q.RateLimit)
		if q.User == nil {
			break
		}

		connection := q.User.Repositories
		kept := 0
		for _, node := range connection.Nodes {
			if node.IsArchived || isProfileRepository(login, node.Name) {
				continue
			}
			repositories = append(repositories, toRepository(node))
			kept++
		}

		logger.Debug().
			Str(loggers.FieldLogin, login).
			Int(loggers.FieldPage, page).
			Int(loggers.FieldRepositories, kept).
			Int(loggers.FieldRateLimitCost, q.RateLimit.Cost).
			Int(loggers.FieldRateLimitRemaining, q.RateLimit.Remaining).
			Msg("fetched repositories page")

		if !connection.PageInfo.HasNextPage {
			break
		}
		variables["after"] = githubv4.NewString(connection.PageInfo.EndCursor)
	}

	return repositories, nil
}

func (f *repositoryFetcher) query(ctx context.Context, q *repositoriesQuery, variables map[string]any) error {
	start := time.Now()
	err := f.querier.Query(ctx, q, variables)

	outcome := outcomeOK
	switch {
	case isUserNotFound(err):
		outcome = outcomeNotFound
	case err != nil:
		outcome = outcomeError
	}
	metricGraphQLRequestsTotal.WithLabelValues(outcome).Inc()
	metricGraphQLRequestDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return err
}

func recordRateLimit(limit rateLimit) {
	if limit.Limit == 0 {
		return
	}
	metricRateLimitRemaining.Set(float64(limit.Remaining))
}

// isProfileRepository reports whether name is the special <login>/<login> profile repository.
func isProfileRepository(login, name string) bool {
	return strings.EqualFold(login, name)
}

func toRepository(node repositoryNode) *models.Repository {
	languages := make([]*models.LanguageSize, 0, len(node.Languages.Edges))
	for _, edge := range node.Languages.Edges {
		languages = append(languages, &models.LanguageSize{
			Name: edge.Node.Name,
			Size: edge.Size,
		})
	}
	return &models.Repository{
		Name:       node.Name,
		IsArchived: node.IsArchived,
		Languages:  languages,
	}
}
