package domain

// OutputMode selects how results are rendered.
type OutputMode string

const (
	// OutputAuto picks tui on an interactive terminal and linear otherwise.
	OutputAuto OutputMode = "auto"
	// OutputTUI forces the interactive progress view.
	OutputTUI OutputMode = "tui"
	// OutputLinear prints one line per entry.
	OutputLinear OutputMode = "linear"
	// OutputJSON prints one JSON object per entry.
	OutputJSON OutputMode = "json"
)

// LogFormat selects the log handler.
type LogFormat string

const (
	// LogPretty is the colored human-readable handler.
	LogPretty LogFormat = "pretty"
	// LogJSON is slog's JSON handler.
	LogJSON LogFormat = "json"
)

// Config is the resolved configuration of a run.
type Config struct {
	// Root is the directory the config file was found in, empty when defaults are used.
	Root string
	// Workers is the worker pool capacity; zero means one per CPU.
	Workers   int
	Ignore    []string
	Output    OutputMode
	LogFormat LogFormat
	Stat      bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Output:    OutputAuto,
		LogFormat: LogPretty,
	}
}
