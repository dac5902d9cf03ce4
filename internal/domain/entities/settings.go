package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for codegen-tasks.
type Settings struct {
	Patch      PatchSettings      `yaml:"patch"`
	Regenerate RegenerateSettings `yaml:"regenerate"`
	Manifest   ManifestSettings   `yaml:"manifest"`
}

// PatchSettings configures the vendored-file patch step.
type PatchSettings struct {
	Enabled bool   `yaml:"enabled"`
	Package string `yaml:"package"` // package whose installed file is patched
	Target  string `yaml:"target"`  // path of the patched file, relative to the package entry
}

// RegenerateSettings configures the conditional client regeneration step.
type RegenerateSettings struct {
	Enabled       bool     `yaml:"enabled"`
	Package       string   `yaml:"package"`        // declared dependency that enables the step
	ClientPackage string   `yaml:"client_package"` // generated client package
	MarkerDir     string   `yaml:"marker_dir"`     // generator output, next to the client's node_modules root
	MarkerPackage string   `yaml:"marker_package"` // generator output, resolved on its own
	Command       string   `yaml:"command"`
	Args          []string `yaml:"args"`
}

// ManifestSettings configures the routes manifest step.
type ManifestSettings struct {
	Command string `yaml:"command"` // shell script, empty to skip
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		Patch: PatchSettings{
			Enabled: true,
			Package: "next",
			Target:  filepath.Join("..", "..", "client", "index.js"),
		},
		Regenerate: RegenerateSettings{
			Enabled:       true,
			Package:       "prisma",
			ClientPackage: "@prisma/client",
			MarkerDir:     ".prisma",
			MarkerPackage: ".prisma/client",
			Command:       "prisma",
			Args:          []string{"generate"},
		},
	}
}

// NewSettings reads a configuration file on top of the defaults, expanding
// environment variables in commands.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := NewDefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Manifest.Command = expandEnv(settings.Manifest.Command)
	settings.Regenerate.Command = expandEnv(settings.Regenerate.Command)
	for i := range settings.Regenerate.Args {
		settings.Regenerate.Args[i] = expandEnv(settings.Regenerate.Args[i])
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	locations := []string{
		".",
		".config",
		"configs",
	}

	patterns := []string{
		".codegen-tasks.yaml",
		".codegen-tasks.yml",
		"codegen-tasks.yaml",
		"codegen-tasks.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks for required configuration values.
func (it *Settings) Validate() error {
	if it.Patch.Enabled {
		if it.Patch.Package == "" {
			return errors.New("patch.package is required when patching is enabled")
		}
		if it.Patch.Target == "" {
			return errors.New("patch.target is required when patching is enabled")
		}
	}

	if it.Regenerate.Enabled {
		if it.Regenerate.Package == "" || it.Regenerate.ClientPackage == "" {
			return errors.New("regenerate.package and regenerate.client_package are required")
		}
		if it.Regenerate.Command == "" {
			return errors.New(
				"regenerate.command is required (set inline or via ${ENV_VAR})",
			)
		}
	}

	return nil
}

// expandEnv expands ${ENV_VAR} references, unset variables expand to "".
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
