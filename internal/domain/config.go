package domain

import (
	"fmt"
	"strings"
)

// OutputFormat selects how conversions are printed.
type OutputFormat string

const (
	FormatPretty OutputFormat = "pretty"
	FormatJSON   OutputFormat = "json"
	FormatPlain  OutputFormat = "plain"
)

// ParseOutputFormat accepts pretty|json|plain (case-insensitive). Empty means
// pretty.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatPretty, nil
	case FormatPretty, FormatJSON, FormatPlain:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected pretty|json|plain)", s)
	}
}

// Config represents the imperial configuration loaded from imperial.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
}

type DefaultsConfig struct {
	DateClass int
	Format    OutputFormat
	// Timezone names the location used to read "today": Local, UTC or an
	// IANA name such as Europe/Vienna.
	Timezone string
}

type PathsConfig struct {
	DatesDir string
}

// DefaultConfig provides sane defaults if imperial.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			DateClass: MinDateClass,
			Format:    FormatPretty,
			Timezone:  "Local",
		},
		Paths: PathsConfig{
			DatesDir: "dates",
		},
	}
}

// WorkspaceSpec describes where `imperial init` scaffolds a workspace.
type WorkspaceSpec struct {
	Root string
}
