package config

// Configfile represents the structure of the asyncwalk.yaml configuration file.
type Configfile struct {
	Version   string   `yaml:"version"`
	Workers   int      `yaml:"workers"`
	Ignore    []string `yaml:"ignore"`
	Output    string   `yaml:"output"`
	LogFormat string   `yaml:"log_format"`
	Stat      bool     `yaml:"stat"`
}

// SupportedVersion is the only config schema version understood.
const SupportedVersion = "1"
