// Package app implements the application layer for asyncwalk.
package app

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/asyncwalk/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/adapters/linear"   //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/adapters/pool"     //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/adapters/tui"      //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/adapters/watcher"  //nolint:depguard // Wired in app layer
	"go.trai.ch/asyncwalk/internal/core/domain"
	"go.trai.ch/asyncwalk/internal/core/ports"
	"go.trai.ch/asyncwalk/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fs           ports.FileSystem
	hasher       ports.Hasher
	tracer       ports.Tracer
	logger       ports.Logger
	watchers     *watcher.Factory

	stdout      io.Writer
	stderr      io.Writer
	getwd       func() (string, error)
	detect      func() domain.OutputMode
	teaOptions  []tea.ProgramOption
	disableTick bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fsys ports.FileSystem,
	hasher ports.Hasher,
	tracer ports.Tracer,
	log ports.Logger,
	watchers *watcher.Factory,
) *App {
	return &App{
		configLoader: loader,
		fs:           fsys,
		hasher:       hasher,
		tracer:       tracer,
		logger:       log,
		watchers:     watchers,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		getwd:        os.Getwd,
		detect:       detector.DetectEnvironment,
	}
}

// WithOutput redirects command output and diagnostics.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithDisableTick disables the TUI tick loop.
func (a *App) WithDisableTick() *App {
	a.disableTick = true
	return a
}

// CommonOptions are the flags shared by every traversal command.
// Zero values defer to the config file.
type CommonOptions struct {
	Root       string
	Workers    int
	Ignore     []string
	OutputMode string
	LogFormat  string
	Verbose    bool
	TraceStats bool
}

// runConfig is the configuration of one command after flags were applied.
type runConfig struct {
	root       string
	workers    int
	filter     *fs.Filter
	mode       domain.OutputMode
	stat       bool
	traceStats bool
}

type jsonLogger interface {
	SetJSON(enable bool)
}

type verboseLogger interface {
	SetVerbose(enable bool)
}

// resolve loads the config file and applies opts on top of it.
func (a *App) resolve(opts CommonOptions) (*runConfig, error) {
	cwd, err := a.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrRootResolveFailed.Error())
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, err
	}

	if opts.Workers < 0 {
		return nil, zerr.With(domain.ErrInvalidWorkers, "workers", opts.Workers)
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.OutputMode != "" {
		if cfg.Output, err = config.ParseOutputMode(opts.OutputMode); err != nil {
			return nil, err
		}
	}
	if opts.LogFormat != "" {
		if cfg.LogFormat, err = config.ParseLogFormat(opts.LogFormat); err != nil {
			return nil, err
		}
	}

	filter, err := fs.NewFilter(append(cfg.Ignore, opts.Ignore...))
	if err != nil {
		return nil, err
	}

	if l, ok := a.logger.(jsonLogger); ok {
		l.SetJSON(cfg.LogFormat == domain.LogJSON)
	}
	if l, ok := a.logger.(verboseLogger); ok {
		l.SetVerbose(opts.Verbose)
	}

	root := opts.Root
	if root == "" {
		root = "."
	}

	return &runConfig{
		root:       root,
		workers:    cfg.Workers,
		filter:     filter,
		mode:       detector.ResolveMode(a.detect(), cfg.Output),
		stat:       cfg.Stat,
		traceStats: opts.TraceStats,
	}, nil
}

// session owns the per-command worker pool and the scheduler built on it.
type session struct {
	pool  *pool.Pool
	sched *scheduler.Scheduler
}

func (a *App) newSession(rc *runConfig) *session {
	if rc.traceStats {
		setupOTel().Reset()
	}
	p := pool.New(rc.workers)
	a.logger.Debug("worker pool ready", "workers", p.Size())
	return &session{
		pool:  p,
		sched: scheduler.NewScheduler(a.fs, p, a.tracer, a.logger),
	}
}

func (a *App) closeSession(rc *runConfig, s *session) {
	if err := s.pool.Close(); err != nil {
		a.logger.Warn("failed to close worker pool", "error", err.Error())
	}
	if rc.traceStats {
		a.printStats(setupOTel().Snapshot())
	}
}

// newRenderer picks the renderer for mode. cancel is called when the user
// quits the interactive view.
func (a *App) newRenderer(ctx context.Context, mode domain.OutputMode, root string, cancel context.CancelFunc) ports.Renderer {
	switch mode {
	case domain.OutputTUI:
		model := tui.NewModel(a.stderr, root).WithOnQuit(cancel)
		if a.disableTick {
			model = model.WithDisableTick()
		}
		opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(a.stderr)}, a.teaOptions...)
		return tui.NewRenderer(&model, opts...)
	case domain.OutputJSON:
		return linear.NewRenderer(a.stdout, a.stderr, linear.FormatJSON)
	default:
		return linear.NewRenderer(a.stdout, a.stderr, linear.FormatText)
	}
}
