package app

import (
	"context"
	"testing"
	"time"

	"langshare/internal/shared/configs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *configs.Config {
	return &configs.Config{
		Server: configs.ServerConfig{
			Port:              3000,
			ReadHeaderTimeout: 5,
			ReadTimeout:       10,
			WriteTimeout:      30,
			IdleTimeout:       60,
			ShutdownTimeout:   7,
		},
		Log: configs.LogConfig{Level: "info", Format: "json"},
		GitHub: configs.GitHubConfig{
			Endpoint:         "https://api.github.com/graphql",
			Token:            "test-token",
			PageSize:         100,
			LanguagesPerRepo: 10,
			RequestTimeout:   10,
		},
		Shares: configs.SharesConfig{Precision: 4, MaxPasses: 1},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	application, err := New(context.Background(), testConfig())
	require.NoError(t, err)

	assert.Equal(t, ":3000", application.server.Addr)
	assert.Equal(t, 5*time.Second, application.server.ReadHeaderTimeout)
	assert.Equal(t, 60*time.Second, application.server.IdleTimeout)
	assert.Equal(t, 7*time.Second, application.ShutdownTimeout())
	assert.NotNil(t, application.server.Handler)
}

func TestNew_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	config := testConfig()
	config.Log.Level = "loud"

	application, err := New(context.Background(), config)
	assert.Nil(t, application)
	assert.ErrorContains(t, err, "failed to initialize logger")
}

func TestNewLanguageService_RejectsInvalidLoginWithoutCallingGitHub(t *testing.T) {
	t.Parallel()

	service := NewLanguageService(context.Background(), testConfig())
	report, err := service.UserLanguages(context.Background(), "-not-a-login-")
	assert.Nil(t, report)
	assert.ErrorContains(t, err, "LANG_1000")
}
