package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vango-dev/htmlify/internal/errors"
	"github.com/vango-dev/htmlify/pkg/markup"
	"github.com/vango-dev/htmlify/pkg/publish"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "htmlify.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultPublishDir is the default publish output directory.
	DefaultPublishDir = "dist"

	// DefaultFormat is the default markup layout.
	DefaultFormat = "compat"
)

// Config represents the complete htmlify.json configuration.
type Config struct {
	// Server configures the preview server.
	Server ServerConfig `json:"server,omitempty"`

	// Render configures markup output.
	Render RenderConfig `json:"render,omitempty"`

	// Publish configures where rendered markup is stored.
	Publish PublishConfig `json:"publish,omitempty"`

	// Log configures logging.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server configuration.
type ServerConfig struct {
	Host  string `json:"host,omitempty"`
	Port  int    `json:"port,omitempty"`
	Title string `json:"title,omitempty"`
}

// RenderConfig contains markup rendering configuration.
type RenderConfig struct {
	// Format is "compat" or "compact".
	Format string `json:"format,omitempty"`

	// Sanitize passes document text through the UGC sanitizer policy.
	Sanitize bool `json:"sanitize,omitempty"`
}

// PublishConfig contains publishing configuration. When S3.Bucket is set
// markup is published to S3, otherwise to Dir.
type PublishConfig struct {
	Dir string   `json:"dir,omitempty"`
	S3  S3Config `json:"s3,omitempty"`
}

// S3Config contains S3 publishing configuration. Credentials come from the
// AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY environment variables.
type S3Config struct {
	Bucket    string `json:"bucket,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Region    string `json:"region,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	PathStyle bool   `json:"pathStyle,omitempty"`

	accessKey string
	secretKey string
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads htmlify.json from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile loads a configuration file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("H100").
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				Wrap(err)
		}
		return nil, errors.New("H101").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("H101").
			Wrap(err).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// FindProjectRoot walks up from startDir to the first directory holding
// htmlify.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("H100").
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or its parents")
		}
		dir = parent
	}
}

// Exists reports whether dir holds htmlify.json.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// LoadFromWorkingDir loads the nearest htmlify.json, falling back to the
// defaults when there is none. Environment overrides are applied.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	cfg := New()
	if root, err := FindProjectRoot(wd); err == nil {
		if cfg, err = Load(root); err != nil {
			return nil, err
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// Path returns the path the config was loaded from, or "" for defaults.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Title == "" {
		c.Server.Title = "htmlify preview"
	}
	if c.Render.Format == "" {
		c.Render.Format = DefaultFormat
	}
	if c.Publish.Dir == "" {
		c.Publish.Dir = DefaultPublishDir
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ApplyEnv applies HTMLIFY_PORT, HTMLIFY_HOST, HTMLIFY_FORMAT,
// HTMLIFY_LOG_LEVEL and the AWS credential variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("HTMLIFY_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("H102").WithDetail("HTMLIFY_PORT must be a number, got " + strconv.Quote(v))
		}
		c.Server.Port = port
	}
	if v, ok := lookup("HTMLIFY_HOST"); ok && v != "" {
		c.Server.Host = v
	}
	if v, ok := lookup("HTMLIFY_FORMAT"); ok && v != "" {
		c.Render.Format = v
	}
	if v, ok := lookup("HTMLIFY_LOG_LEVEL"); ok && v != "" {
		c.Log.Level = v
	}
	if v, ok := lookup("AWS_ACCESS_KEY_ID"); ok {
		c.Publish.S3.accessKey = v
	}
	if v, ok := lookup("AWS_SECRET_ACCESS_KEY"); ok {
		c.Publish.S3.secretKey = v
	}
	return nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("H102").WithDetail(fmt.Sprintf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if _, err := markup.ParseFormat(c.Render.Format); err != nil {
		return errors.New("H102").Wrap(err)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("H102").WithDetail("log.level must be debug, info, warn or error, got " + strconv.Quote(c.Log.Level))
	}
	return nil
}

// Address returns the preview server listen address.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// RendererConfig returns the markup renderer configuration.
func (c *Config) RendererConfig() markup.RendererConfig {
	format, err := markup.ParseFormat(c.Render.Format)
	if err != nil {
		format = markup.FormatCompat
	}
	return markup.RendererConfig{Format: format}
}

// PublishS3Config returns the S3 store configuration with credentials.
func (c *Config) PublishS3Config() publish.S3Config {
	s3 := c.Publish.S3
	return publish.S3Config{
		Bucket:    s3.Bucket,
		Prefix:    s3.Prefix,
		Region:    s3.Region,
		Endpoint:  s3.Endpoint,
		PathStyle: s3.PathStyle,
		AccessKey: s3.accessKey,
		SecretKey: s3.secretKey,
	}
}
