package configs

import (
	"fmt"
	"strings"

	"langshare/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvGitHubToken is the environment variable that overrides github.token.
const EnvGitHubToken = "GITHUB_TOKEN"

// LoadConfig reads configuration from file, applies defaults and environment overrides,
// and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.BindEnv("github.token", EnvGitHubToken); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", EnvGitHubToken, err)
	}

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.shutdown_timeout", 10)
	v.SetDefault("log.format", "json")
	v.SetDefault("github.endpoint", "https://api.github.com/graphql")
	v.SetDefault("github.page_size", 100)
	v.SetDefault("github.languages_per_repo", 10)
	v.SetDefault("github.request_timeout", 10)
	v.SetDefault("shares.precision", 4)
	v.SetDefault("shares.max_passes", 1)
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.GitHub.PageSize" -> "github.pagesize"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
