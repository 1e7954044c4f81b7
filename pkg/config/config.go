package config

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/authseal/config"
	ConfigFileName    = "authseal.yml"
)

// Config holds all AuthSeal server settings.
type Config struct {
	// Port is the HTTP listen port
	Port string `yaml:"port" json:"port"`

	// DatabaseURL is the Postgres connection URL for the salt keystore.
	// When empty, the server runs without a keystore and uses SaltKey.
	DatabaseURL string `yaml:"database_url" json:"database_url"`

	// Realm is the realm served by this instance
	Realm string `yaml:"realm" json:"realm"`

	// DefaultTokenTTL is the issued-token lifetime in seconds when the
	// caller does not request one
	DefaultTokenTTL int64 `yaml:"default_token_ttl" json:"default_token_ttl"`

	// MaxTokenTTL caps the lifetime a caller may request, in seconds
	MaxTokenTTL int64 `yaml:"max_token_ttl" json:"max_token_ttl"`

	// JWTExchangeIssuer is the required issuer claim for the JWT exchange
	// endpoint; exchange is disabled while it is empty
	JWTExchangeIssuer string `yaml:"jwt_exchange_issuer" json:"jwt_exchange_issuer"`

	// JWTExchangeClaim is the claim carrying the numeric auth id
	JWTExchangeClaim string `yaml:"jwt_exchange_claim" json:"jwt_exchange_claim"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Global singleton config
var (
	globalConfig *Config
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary.
func Get() *Config {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment.
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *Config {
	return &Config{
		Port:             "8080",
		Realm:            "default",
		DefaultTokenTTL:  3600,
		MaxTokenTTL:      86400,
		JWTExchangeClaim: "auth_id",
		sources:          make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("AUTHSEAL_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"port", "database_url", "realm", "default_token_ttl",
		"max_token_ttl", "jwt_exchange_issuer", "jwt_exchange_claim",
	}
}

func (c *Config) applyFileConfig(file *Config) {
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.Realm != "" {
		c.Realm = file.Realm
		c.sources["realm"] = "file"
	}
	if file.DefaultTokenTTL != 0 {
		c.DefaultTokenTTL = file.DefaultTokenTTL
		c.sources["default_token_ttl"] = "file"
	}
	if file.MaxTokenTTL != 0 {
		c.MaxTokenTTL = file.MaxTokenTTL
		c.sources["max_token_ttl"] = "file"
	}
	if file.JWTExchangeIssuer != "" {
		c.JWTExchangeIssuer = file.JWTExchangeIssuer
		c.sources["jwt_exchange_issuer"] = "file"
	}
	if file.JWTExchangeClaim != "" {
		c.JWTExchangeClaim = file.JWTExchangeClaim
		c.sources["jwt_exchange_claim"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("AUTHSEAL_REALM"); val != "" {
		c.Realm = val
		c.sources["realm"] = "environment"
	}
	if val := os.Getenv("AUTHSEAL_DEFAULT_TOKEN_TTL"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			c.DefaultTokenTTL = i
			c.sources["default_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("AUTHSEAL_MAX_TOKEN_TTL"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			c.MaxTokenTTL = i
			c.sources["max_token_ttl"] = "environment"
		}
	}
	if val := os.Getenv("AUTHSEAL_JWT_EXCHANGE_ISSUER"); val != "" {
		c.JWTExchangeIssuer = val
		c.sources["jwt_exchange_issuer"] = "environment"
	}
	if val := os.Getenv("AUTHSEAL_JWT_EXCHANGE_CLAIM"); val != "" {
		c.JWTExchangeClaim = val
		c.sources["jwt_exchange_claim"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Attribute is a single configuration value with its provenance
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "port", Value: c.Port, Source: c.Source("port")},
		{Name: "database_url", Value: c.DatabaseURL, Source: c.Source("database_url")},
		{Name: "realm", Value: c.Realm, Source: c.Source("realm")},
		{Name: "default_token_ttl", Value: strconv.FormatInt(c.DefaultTokenTTL, 10), Source: c.Source("default_token_ttl")},
		{Name: "max_token_ttl", Value: strconv.FormatInt(c.MaxTokenTTL, 10), Source: c.Source("max_token_ttl")},
		{Name: "jwt_exchange_issuer", Value: c.JWTExchangeIssuer, Source: c.Source("jwt_exchange_issuer")},
		{Name: "jwt_exchange_claim", Value: c.JWTExchangeClaim, Source: c.Source("jwt_exchange_claim")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-40s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// TokenTTL returns the default issued-token lifetime as a duration
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.DefaultTokenTTL) * time.Second
}

// ClampTTL bounds a requested lifetime to (0, MaxTokenTTL], falling back to
// the default when the request is zero.
func (c *Config) ClampTTL(requested int64) int64 {
	if requested <= 0 {
		return c.DefaultTokenTTL
	}
	if requested > c.MaxTokenTTL {
		return c.MaxTokenTTL
	}
	return requested
}

// DataKey reads and decodes the base64 data key that protects salt keys at
// rest. Secrets stay out of the config file; the key is env-only.
func DataKey() ([]byte, error) {
	encoded, ok := os.LookupEnv("AUTHSEAL_DATA_KEY")
	if !ok {
		return nil, fmt.Errorf("AUTHSEAL_DATA_KEY environment variable is required")
	}

	dataKey, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("failed to decode AUTHSEAL_DATA_KEY: %w", err)
	}
	return dataKey, nil
}

// SaltKey reads the env-only shared salt key used when the server runs
// without a keystore. Empty when unset.
func SaltKey() string {
	return os.Getenv("AUTHSEAL_SALT_KEY")
}

// JWTExchangeSecret reads the env-only HMAC secret for the JWT exchange
// endpoint. Empty when unset.
func JWTExchangeSecret() string {
	return os.Getenv("AUTHSEAL_JWT_EXCHANGE_SECRET")
}
