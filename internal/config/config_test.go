package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vango-dev/htmlify/internal/errors"
	"github.com/vango-dev/htmlify/pkg/markup"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Server.Port != DefaultPort || cfg.Server.Host != DefaultHost {
		t.Errorf("got %s, want localhost:3000", cfg.Address())
	}
	if cfg.Render.Format != "compat" {
		t.Errorf("Format = %q, want compat", cfg.Render.Format)
	}
	if cfg.Publish.Dir != "dist" {
		t.Errorf("Publish.Dir = %q, want dist", cfg.Publish.Dir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	data := `{"server": {"port": 8080}, "render": {"format": "compact", "sanitize": true}, "publish": {"s3": {"bucket": "site", "prefix": "p/"}}}`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 || cfg.Server.Host != DefaultHost {
		t.Errorf("got %s", cfg.Address())
	}
	if cfg.RendererConfig().Format != markup.FormatCompact {
		t.Error("format should be compact")
	}
	if !cfg.Render.Sanitize {
		t.Error("sanitize should be set")
	}
	if cfg.PublishS3Config().Bucket != "site" {
		t.Errorf("bucket = %q", cfg.PublishS3Config().Bucket)
	}
	if cfg.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	var he *errors.HtmlifyError
	if !stderrors.As(err, &he) || he.Code != "H100" {
		t.Errorf("missing file: got %v, want H100", err)
	}
	if !stderrors.Is(err, os.ErrNotExist) {
		t.Error("missing file should wrap os.ErrNotExist")
	}

	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = Load(dir)
	if !stderrors.As(err, &he) || he.Code != "H101" {
		t.Errorf("bad json: got %v, want H101", err)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"HTMLIFY_PORT":          "9000",
		"HTMLIFY_FORMAT":        "compact",
		"HTMLIFY_LOG_LEVEL":     "debug",
		"AWS_ACCESS_KEY_ID":     "key",
		"AWS_SECRET_ACCESS_KEY": "secret",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := New()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9000 || cfg.Render.Format != "compact" || cfg.Log.Level != "debug" {
		t.Errorf("env not applied: %+v", cfg)
	}
	s3 := cfg.PublishS3Config()
	if s3.AccessKey != "key" || s3.SecretKey != "secret" {
		t.Error("credentials not applied")
	}

	env["HTMLIFY_PORT"] = "abc"
	if err := New().ApplyEnv(lookup); err == nil {
		t.Error("expected error for non-numeric port")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"port too high", func(c *Config) { c.Server.Port = 70000 }},
		{"bad format", func(c *Config) { c.Render.Format = "pretty" }},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
