package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdupgrade/internal/fileutil"
	"github.com/alnah/go-mdupgrade/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrInvalidWorkers   = errors.New("invalid worker count")
	ErrInvalidExtension = errors.New("invalid file extension")
)

// MaxWorkers caps the number of files processed concurrently.
const MaxWorkers = 64

// appDirName is the directory under os.UserConfigDir searched for named configs.
const appDirName = "go-mdupgrade"

// Config holds settings for the mdupgrade command.
type Config struct {
	Workers    int      `yaml:"workers"`    // 0 = auto
	Verify     bool     `yaml:"verify"`     // check fence counts before writing
	DryRun     bool     `yaml:"dryRun"`     // report changes without writing
	Extensions []string `yaml:"extensions"` // matched case-insensitively
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Extensions: []string{".md"},
	}
}

// Validate checks value ranges and extension syntax.
func (c *Config) Validate() error {
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d, 0 means auto)", ErrInvalidWorkers, c.Workers, MaxWorkers)
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("%w: %q must start with a dot", ErrInvalidExtension, ext)
		}
		if err := fileutil.ValidateExtension(strings.TrimPrefix(ext, ".")); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidExtension, ext, err)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is read directly; a bare name is
// searched as NAME.yaml then NAME.yml in the current directory and then
// in the user config directory. Fields not set in the file keep their defaults;
// an empty file yields the defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error
	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultConfig().Extensions
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appDirName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", &NotFoundError{Tried: triedPaths}
}

// NotFoundError lists the paths searched for a named config.
type NotFoundError struct {
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Tried, ", "))
}

// Unwrap makes NotFoundError match ErrConfigNotFound.
func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}
