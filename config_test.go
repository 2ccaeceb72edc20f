package nvector

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func writeConf(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "conf.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv(ConfigEnv, "")
	cfg, err := ReadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model.ID != "WGS84" || cfg.Model.Surface != WGS84 || cfg.Precision != 7 || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestReadConfig(t *testing.T) {
	path := writeConf(t, t.TempDir(), `
[model]
id = "mola"

[output]
precision = 5

[log]
level = "DEBUG"
`)
	cfg, err := ReadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model.ID != "MOLA" || cfg.Model.LongitudeRange != L360 {
		t.Fatalf("model: %s", cfg.Model)
	}
	if cfg.Precision != 5 || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestReadConfigFromEnv(t *testing.T) {
	dir := t.TempDir()
	writeConf(t, dir, "[model]\nid = \"EARTH\"\n")
	t.Setenv(ConfigEnv, dir)
	cfg, err := ReadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model.Surface != EarthSphere {
		t.Fatalf("model: %s", cfg.Model)
	}
}

func TestConfigErrors(t *testing.T) {
	if _, err := ReadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
	dir := t.TempDir()
	if _, err := ReadConfig(writeConf(t, dir, "[model]\nid = \"FLAT_EARTH\"\n")); !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("expected an unknown model, got %v", err)
	}
	for _, tc := range []struct {
		key string
		val any
	}{
		{"output.precision", -1},
		{"output.precision", 10},
		{"log.level", "verbose"},
	} {
		v := viper.New()
		v.Set(tc.key, tc.val)
		if _, err := LoadConfig(v); err == nil {
			t.Fatalf("%s = %v should be rejected", tc.key, tc.val)
		}
	}
}
