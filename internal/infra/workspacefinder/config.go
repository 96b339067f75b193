package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aalvaropc/imperial/internal/domain"
	"github.com/aalvaropc/imperial/internal/infra/clock"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the file that marks a workspace root.
const ConfigFile = "imperial.yaml"

// LoadConfig loads imperial.yaml from the workspace root and applies defaults.
// A missing file yields the defaults together with a KindNotFound error.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Imperial.Defaults.DateClass != nil {
		if err := domain.ValidateDateClass(*y.Imperial.Defaults.DateClass); err != nil {
			return domain.DefaultConfig(), invalidField(path, "imperial.defaults.date_class", err)
		}
		cfg.Defaults.DateClass = *y.Imperial.Defaults.DateClass
	}
	if y.Imperial.Defaults.Format != "" {
		f, err := domain.ParseOutputFormat(y.Imperial.Defaults.Format)
		if err != nil {
			return domain.DefaultConfig(), invalidField(path, "imperial.defaults.format", err)
		}
		cfg.Defaults.Format = f
	}
	if y.Imperial.Defaults.Timezone != "" {
		if _, err := clock.LoadLocation(y.Imperial.Defaults.Timezone); err != nil {
			return domain.DefaultConfig(), invalidField(path, "imperial.defaults.timezone", err)
		}
		cfg.Defaults.Timezone = y.Imperial.Defaults.Timezone
	}
	if y.Imperial.Paths.DatesDir != "" {
		cfg.Paths.DatesDir = y.Imperial.Paths.DatesDir
	}

	return cfg, nil
}

func invalidField(path, field string, err error) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %v: %w", field, err, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Imperial struct {
		Defaults struct {
			DateClass *int   `yaml:"date_class"`
			Format    string `yaml:"format"`
			Timezone  string `yaml:"timezone"`
		} `yaml:"defaults"`

		Paths struct {
			DatesDir string `yaml:"dates_dir"`
		} `yaml:"paths"`
	} `yaml:"imperial"`
}
