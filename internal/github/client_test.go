package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newGraphQLServer(t *testing.T, handle func(req graphQLRequest) string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var req graphQLRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(handle(req)))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestClient_FetchRepositoriesOverGraphQL(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, func(req graphQLRequest) string {
		assert.Contains(t, req.Query, "user(login: $login)")
		assert.Contains(t, req.Query, "repositories(first: $first, after: $after, ownerAffiliations: OWNER)")
		assert.Contains(t, req.Query, "languages(first: $languagesFirst, orderBy: {field: SIZE, direction: DESC})")
		assert.Contains(t, req.Query, "rateLimit{limit,cost,remaining}")
		assert.Equal(t, "octocat", req.Variables["login"])
		assert.Equal(t, float64(2), req.Variables["first"])
		assert.Equal(t, float64(5), req.Variables["languagesFirst"])

		if req.Variables["after"] == nil {
			return `{"data":{"user":{"repositories":{"nodes":[` +
				`{"name":"api","isArchived":false,"languages":{"edges":[{"size":700,"node":{"name":"Go"}}]}},` +
				`{"name":"octocat","isArchived":false,"languages":{"edges":[{"size":10,"node":{"name":"Markdown"}}]}}` +
				`],"pageInfo":{"hasNextPage":true,"endCursor":"Y3Vyc29yOjI="}}}}}`
		}
		assert.Equal(t, "Y3Vyc29yOjI=", req.Variables["after"])
		return `{"data":{"user":{"repositories":{"nodes":[` +
			`{"name":"web","isArchived":false,"languages":{"edges":[{"size":300,"node":{"name":"TypeScript"}}]}}` +
			`],"pageInfo":{"hasNextPage":false,"endCursor":"Y3Vyc29yOjM="}}}}}`
	})

	client := NewClient(context.Background(), ClientConfig{
		Endpoint: server.URL,
		Token:    "test-token",
		Timeout:  5 * time.Second,
	})
	fetcher := NewRepositoryFetcher(client, FetcherOptions{PageSize: 2, LanguagesPerRepo: 5})

	repositories, err := fetcher.FetchRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repositories, 2)
	assert.Equal(t, "api", repositories[0].Name)
	assert.Equal(t, "Go", repositories[0].Languages[0].Name)
	assert.Equal(t, int64(700), repositories[0].Languages[0].Size)
	assert.Equal(t, "web", repositories[1].Name)
	assert.Equal(t, int64(300), repositories[1].Languages[0].Size)
}

func TestClient_UnknownUserMapsToNotFound(t *testing.T) {
	t.Parallel()

	server := newGraphQLServer(t, func(req graphQLRequest) string {
		return `{"data":null,"errors":[{"type":"NOT_FOUND","path":["user"],` +
			`"locations":[{"line":1,"column":39}],` +
			`"message":"Could not resolve to a User with the login of 'ghost'."}]}`
	})

	client := NewClient(context.Background(), ClientConfig{
		Endpoint: server.URL,
		Token:    "test-token",
		Timeout:  5 * time.Second,
	})
	fetcher := NewRepositoryFetcher(client, FetcherOptions{PageSize: 100, LanguagesPerRepo: 10})

	repositories, err := fetcher.FetchRepositories(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, repositories)
}

func TestNewHTTPClient_SetsTimeout(t *testing.T) {
	t.Parallel()

	httpClient := NewHTTPClient(context.Background(), "test-token", 7*time.Second)
	assert.Equal(t, 7*time.Second, httpClient.Timeout)
}
