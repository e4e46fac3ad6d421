package github

import (
	"context"
	"net/http"
	"time"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// ClientConfig holds what is needed to talk to a GitHub GraphQL endpoint.
type ClientConfig struct {
	Endpoint string
	Token    string
	Timeout  time.Duration
}

// NewHTTPClient returns an http.Client that sends token as a bearer credential on every request.
func NewHTTPClient(ctx context.Context, token string, timeout time.Duration) *http.Client {
	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, tokenSource)
	httpClient.Timeout = timeout
	return httpClient
}

// NewClient creates a GraphQL client for cfg.Endpoint. The public API and GitHub Enterprise
// endpoints are handled the same way.
func NewClient(ctx context.Context, cfg ClientConfig) *githubv4.Client {
	return githubv4.NewEnterpriseClient(cfg.Endpoint, NewHTTPClient(ctx, cfg.Token, cfg.Timeout))
}
