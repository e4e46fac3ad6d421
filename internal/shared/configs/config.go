package configs

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Log    LogConfig    `mapstructure:"log" validate:"required"`
	GitHub GitHubConfig `mapstructure:"github" validate:"required"`
	Shares SharesConfig `mapstructure:"shares" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	ShutdownTimeout   int `mapstructure:"shutdown_timeout" validate:"required,min=1"`    // seconds (graceful drain)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required"`
	Format string `mapstructure:"format" validate:"required,oneof=json console"`
}

// GitHubConfig holds the GraphQL client configuration.
// Token is usually supplied through the GITHUB_TOKEN environment variable.
type GitHubConfig struct {
	Endpoint         string `mapstructure:"endpoint" validate:"required,url"`
	Token            string `mapstructure:"token" validate:"required"`
	PageSize         int    `mapstructure:"page_size" validate:"required,min=1,max=100"`
	LanguagesPerRepo int    `mapstructure:"languages_per_repo" validate:"required,min=1,max=100"`
	RequestTimeout   int    `mapstructure:"request_timeout" validate:"required,min=1"` // seconds
}

// SharesConfig holds share normalization configuration.
type SharesConfig struct {
	Precision int `mapstructure:"precision" validate:"min=0,max=15"`
	MaxPasses int `mapstructure:"max_passes" validate:"required,min=1"`
}
