// Package config loads the optional asyncwalk.yaml configuration file.
package config

import (
	"errors"
	"io/fs"
	"path/filepath"

	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	FS     FileSystem
}

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, FS: NewOSFS()}
}

// WithFileSystem replaces the filesystem the loader reads from.
func (l *Loader) WithFileSystem(fsys FileSystem) *Loader {
	l.FS = fsys
	return l
}

// Load finds the nearest config file at or above cwd and resolves it.
// Without a config file the defaults are returned.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}
	if root == "" {
		return domain.DefaultConfig(), nil
	}

	configPath := filepath.Join(root, domain.ConfigFileName)
	var file Configfile
	if err := l.readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	cfg, err := l.resolve(&file)
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}
	cfg.Root = root
	return cfg, nil
}

// DiscoverRoot walks up from cwd to the first directory containing the config
// file. It returns "" when there is none.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	current, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrRootResolveFailed.Error()), "cwd", cwd)
	}

	for {
		info, err := l.FS.Stat(filepath.Join(current, domain.ConfigFileName))
		switch {
		case err == nil && !info.IsDir():
			return current, nil
		case err != nil && !errors.Is(err, fs.ErrNotExist):
			return "", zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "dir", current)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

func (l *Loader) resolve(file *Configfile) (*domain.Config, error) {
	if file.Version != "" && file.Version != SupportedVersion && l.Logger != nil {
		l.Logger.Warn("unknown config version, reading it as version "+SupportedVersion, "version", file.Version)
	}

	cfg := domain.DefaultConfig()

	if file.Workers < 0 {
		return nil, zerr.With(domain.ErrInvalidWorkers, "workers", file.Workers)
	}
	cfg.Workers = file.Workers

	for _, p := range file.Ignore {
		if _, err := filepath.Match(p, ""); err != nil {
			return nil, zerr.With(domain.ErrInvalidIgnorePattern, "pattern", p)
		}
	}
	cfg.Ignore = file.Ignore

	if file.Output != "" {
		mode, err := ParseOutputMode(file.Output)
		if err != nil {
			return nil, err
		}
		cfg.Output = mode
	}

	if file.LogFormat != "" {
		format, err := ParseLogFormat(file.LogFormat)
		if err != nil {
			return nil, err
		}
		cfg.LogFormat = format
	}

	cfg.Stat = file.Stat
	return cfg, nil
}

// ParseOutputMode validates an output mode name.
func ParseOutputMode(s string) (domain.OutputMode, error) {
	switch mode := domain.OutputMode(s); mode {
	case domain.OutputAuto, domain.OutputTUI, domain.OutputLinear, domain.OutputJSON:
		return mode, nil
	default:
		return "", zerr.With(domain.ErrInvalidOutputMode, "output", s)
	}
}

// ParseLogFormat validates a log format name.
func ParseLogFormat(s string) (domain.LogFormat, error) {
	switch format := domain.LogFormat(s); format {
	case domain.LogPretty, domain.LogJSON:
		return format, nil
	default:
		return "", zerr.With(domain.ErrInvalidLogFormat, "log_format", s)
	}
}

func (l *Loader) readAndUnmarshalYAML(configPath string, target *Configfile) error {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
