package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// TokenPlaceholder is the access token value shipped in the example config.
// A token equal to it is treated the same as no token at all.
const TokenPlaceholder = "your_genius_access_token"

// TokenEnvVar names the environment variable that overrides the configured access token.
const TokenEnvVar = "GENIUS_ACCESS_TOKEN"

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Output      OutputConfig      `toml:"output"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Genius GeniusConfig `toml:"genius"`
}

// GeniusConfig contains Genius API credentials.
type GeniusConfig struct {
	AccessToken string `toml:"access_token"`
}

// OutputConfig contains default output settings, overridable per run via flags.
type OutputConfig struct {
	Format string `toml:"format"`
	Folder string `toml:"folder"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ResolveToken returns the Genius access token for this run.
//
// The GENIUS_ACCESS_TOKEN environment variable takes precedence over the
// configured value. An empty or placeholder token is a configuration error.
func (c *Config) ResolveToken() (string, error) {
	token := c.Credentials.Genius.AccessToken
	if env := os.Getenv(TokenEnvVar); env != "" {
		token = env
	}

	if token == "" || token == TokenPlaceholder {
		return "", fmt.Errorf("%w: set %s or [credentials.genius] access_token in config.toml", ErrMissingCredentials, TokenEnvVar)
	}

	return token, nil
}
