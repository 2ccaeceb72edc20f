package nvector

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ConfigEnv is the environment variable pointing to the directory holding `conf.toml`.
const ConfigEnv = "NVECTOR_CONFIG"

// Config holds the settings shared by the nvector tools.
type Config struct {
	Model     Model  // model used to convert between positions and to measure distances
	Precision int    // number of decimal places of angles in reports
	LogLevel  string // debug, info, warn or error
}

// SetConfigDefaults registers the default settings in v.
func SetConfigDefaults(v *viper.Viper) {
	v.SetDefault("model.id", "WGS84")
	v.SetDefault("output.precision", 7)
	v.SetDefault("log.level", "info")
}

// LoadConfig reads the configuration from v.
func LoadConfig(v *viper.Viper) (Config, error) {
	SetConfigDefaults(v)
	model, err := ModelByID(v.GetString("model.id"))
	if err != nil {
		return Config{}, err
	}
	precision := v.GetInt("output.precision")
	if precision < 0 || precision > 9 {
		return Config{}, fmt.Errorf("output.precision must be in [0, 9], got %d", precision)
	}
	level := strings.ToLower(v.GetString("log.level"))
	switch level {
	case "debug", "info", "warn", "error":
	default:
		return Config{}, fmt.Errorf("unknown log level `%s`", level)
	}
	return Config{Model: model, Precision: precision, LogLevel: level}, nil
}

// ReadConfig reads the given TOML file, falling back to `conf.toml` in the directory named by
// NVECTOR_CONFIG when path is empty, and to the defaults when neither exists.
func ReadConfig(path string) (Config, error) {
	v := viper.New()
	if path == "" {
		if dir := os.Getenv(ConfigEnv); dir != "" {
			path = filepath.Join(dir, "conf.toml")
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	return LoadConfig(v)
}
