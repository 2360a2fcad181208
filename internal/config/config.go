package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied to zero-valued fields.
const (
	DefaultTimeoutSec          = 10
	DefaultTopK                = 3
	DefaultConfidenceThreshold = 0.75
	DefaultBatchMaxSize        = 100
	DefaultBatchWorkers        = 8

	maxTopK = 100
)

// PathEnv names an explicit config file path that bypasses the ENV lookup.
const PathEnv = "CONFIG_PATH"

var logLevels = map[string]struct{}{
	"": {}, "debug": {}, "info": {}, "warn": {}, "warning": {}, "error": {},
}

// Config holds the reasoner service configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Auth    AuthConfig    `yaml:"auth"`
	Engine  EngineConfig  `yaml:"engine"`
	Batch   BatchConfig   `yaml:"batch"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// EngineConfig holds ranking and fallback settings.
type EngineConfig struct {
	TopK                int     `yaml:"top_k"`
	ConfidenceThreshold float64 `yaml:"confidence_threshold"`
	CorpusPath          string  `yaml:"corpus_path"` // empty = built-in corpus
}

// BatchConfig holds batch reasoning settings.
type BatchConfig struct {
	MaxSize int `yaml:"max_size"`
	Workers int `yaml:"workers"`
}

// Load reads configuration for an environment (local, dev, prod). CONFIG_PATH,
// when set, names the file directly.
func Load(env string) (Config, error) {
	return LoadFile(findConfigPath(env))
}

// LoadFile reads, expands, defaults and validates one YAML config file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(expandEnvVars(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	for _, sec := range []*int{&c.HTTP.ReadTimeoutSec, &c.HTTP.WriteTimeoutSec, &c.HTTP.ShutdownSec} {
		if *sec <= 0 {
			*sec = DefaultTimeoutSec
		}
	}
	if c.Engine.TopK == 0 {
		c.Engine.TopK = DefaultTopK
	}
	if c.Engine.ConfidenceThreshold == 0 {
		c.Engine.ConfidenceThreshold = DefaultConfidenceThreshold
	}
	if c.Batch.MaxSize == 0 {
		c.Batch.MaxSize = DefaultBatchMaxSize
	}
	if c.Batch.Workers == 0 {
		c.Batch.Workers = DefaultBatchWorkers
	}
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs []error
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port))
	}
	if c.Engine.TopK < 1 || c.Engine.TopK > maxTopK {
		errs = append(errs, fmt.Errorf("engine.top_k must be between 1 and %d, got %d", maxTopK, c.Engine.TopK))
	}
	if c.Engine.ConfidenceThreshold <= 0 || c.Engine.ConfidenceThreshold > 1 {
		errs = append(errs, fmt.Errorf("engine.confidence_threshold must be in (0, 1], got %g", c.Engine.ConfidenceThreshold))
	}
	if c.Batch.MaxSize < 1 {
		errs = append(errs, fmt.Errorf("batch.max_size must be positive, got %d", c.Batch.MaxSize))
	}
	if c.Batch.Workers < 1 {
		errs = append(errs, fmt.Errorf("batch.workers must be positive, got %d", c.Batch.Workers))
	}
	if _, ok := logLevels[strings.ToLower(c.Logging.Level)]; !ok {
		errs = append(errs, fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level))
	}
	return errors.Join(errs...)
}

// findConfigPath resolves the config file: CONFIG_PATH, then ./config/<env>.yaml,
// then config/<env>.yaml next to the module root.
func findConfigPath(env string) string {
	if p := os.Getenv(PathEnv); p != "" {
		return p
	}

	rel := filepath.Join("config", env+".yaml")
	if fileExists(rel) {
		return rel
	}

	_, b, _, _ := runtime.Caller(0)
	root := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> module root
	if p := filepath.Join(root, rel); fileExists(p) {
		return p
	}
	return rel
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// envVarRegex matches ${VAR} and ${VAR:-default}.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		name, fallback, hasDefault := strings.Cut(string(match[2:len(match)-1]), ":-")
		if val := os.Getenv(name); val != "" || !hasDefault {
			return []byte(val)
		}
		return []byte(fallback)
	})
}
