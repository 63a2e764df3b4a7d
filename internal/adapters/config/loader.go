// Package config provides the layered configuration loader for abbsmeta.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.trai.ch/abbsmeta/internal/core/domain"
	"go.trai.ch/abbsmeta/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultFilename is the config file looked up in the working directory.
	DefaultFilename = "abbsmeta.yaml"
	// EnvFilename is the dotenv file looked up in the working directory.
	EnvFilename = ".env"
)

// Environment variables recognized by the loader.
const (
	EnvDatabase = "ABBSMETA_DB"
	EnvBasePath = "ABBSMETA_BASEPATH"
	EnvWorkers  = "ABBSMETA_WORKERS"
	EnvTimeout  = "ABBSMETA_TIMEOUT"
)

// Loader implements ports.ConfigLoader. Layers are applied in order:
// built-in defaults, the YAML file, the .env file, the process environment.
type Loader struct {
	logger ports.Logger
	lookup func(string) (string, bool)
}

var _ ports.ConfigLoader = (*Loader)(nil)

// NewLoader creates a new Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, lookup: os.LookupEnv}
}

// NewLoaderWithEnv creates a Loader that reads variables from env instead of
// the process environment.
func NewLoaderWithEnv(logger ports.Logger, env map[string]string) *Loader {
	return &Loader{
		logger: logger,
		lookup: func(key string) (string, bool) {
			v, ok := env[key]
			return v, ok
		},
	}
}

// Load resolves the configuration for a run started in cwd. An explicit path
// must exist; the default file is optional.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(cwd, DefaultFilename)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	if err := l.applyFile(cfg, path, explicit); err != nil {
		return nil, err
	}

	dotenv, err := readDotenv(filepath.Join(cwd, EnvFilename))
	if err != nil {
		return nil, err
	}
	if err := l.applyEnv(cfg, dotenv); err != nil {
		return nil, err
	}

	if !filepath.IsAbs(cfg.BasePath) {
		cfg.BasePath = filepath.Join(cwd, cfg.BasePath)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) applyFile(cfg *domain.Config, path string, explicit bool) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	l.logger.Debug("loaded config file " + path)

	if file.BasePath != nil {
		cfg.BasePath = *file.BasePath
	}
	if file.Database != nil {
		cfg.Database = *file.Database
	}
	if file.Workers != nil {
		cfg.Workers = *file.Workers
	}
	if file.Timeout != nil {
		d, err := time.ParseDuration(*file.Timeout)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "timeout", *file.Timeout)
		}
		cfg.Timeout = d
	}
	if file.Categories != nil {
		cfg.Categories = file.Categories
	}
	if file.Variants != nil {
		cfg.Variants = *file.Variants
	}
	if file.CacheSize != nil {
		cfg.CacheSize = *file.CacheSize
	}
	return nil
}

// applyEnv overlays the environment. Process variables win over the .env file.
func (l *Loader) applyEnv(cfg *domain.Config, dotenv map[string]string) error {
	get := func(key string) (string, bool) {
		if v, ok := l.lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	if v, ok := get(EnvDatabase); ok && v != "" {
		cfg.Database = v
	}
	if v, ok := get(EnvBasePath); ok && v != "" {
		cfg.BasePath = v
	}
	if v, ok := get(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), EnvWorkers, v)
		}
		cfg.Workers = n
	}
	if v, ok := get(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return zerr.With(errors.Join(domain.ErrConfigParseFailed, err), EnvTimeout, v)
		}
		cfg.Timeout = d
	}
	return nil
}

func readDotenv(path string) (map[string]string, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "path", path)
	}
	return env, nil
}

// Validate checks that cfg describes a runnable scan.
func Validate(cfg *domain.Config) error {
	switch {
	case cfg.Workers < 1:
		return zerr.With(domain.ErrInvalidConfig, "workers", cfg.Workers)
	case cfg.Timeout <= 0:
		return zerr.With(domain.ErrInvalidConfig, "timeout", cfg.Timeout.String())
	case len(cfg.Categories) == 0:
		return zerr.With(domain.ErrInvalidConfig, "categories", "empty")
	case cfg.CacheSize < 0:
		return zerr.With(domain.ErrInvalidConfig, "cache_size", cfg.CacheSize)
	case cfg.Database == "":
		return zerr.With(domain.ErrInvalidConfig, "database", "empty")
	}
	return nil
}
