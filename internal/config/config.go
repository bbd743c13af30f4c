package config

import (
	"encoding/json"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/thatsimonsguy/watchface/internal/sysinfo"
)

const (
	OutputEPaper = "epaper"
	OutputPNG    = "png"
)

type Config struct {
	ConfigFile string
	LogLevel   zerolog.Level
	LogFile    string

	TickIntervalSeconds int    `json:"tick_interval_seconds"`
	Output              string `json:"output"`
	FramePath           string `json:"frame_path"`
	DisplayWidth        int    `json:"display_width"`
	DisplayHeight       int    `json:"display_height"`
	DBPath              string `json:"db_path"`

	RetainFrameDays int `json:"retain_frame_days"`

	EnableDatadog bool     `json:"enable_datadog"`
	DDAgentAddr   string   `json:"dd_agent_addr"`
	DDNamespace   string   `json:"dd_namespace"`
	DDTags        []string `json:"dd_tags"`

	Signals sysinfo.Paths `json:"signals"`
}

func Load() Config {
	var cfg Config
	var logLevel string

	flag.StringVar(&cfg.ConfigFile, "config-file", "config.json", "Path to watch face config file")
	flag.StringVar(&cfg.LogFile, "log-file", "", "Log file path (stderr console when empty)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	cfg.LogLevel = parseLogLevel(logLevel)

	file, err := os.Open(cfg.ConfigFile)
	if err != nil {
		panic("Failed to load config file: " + err.Error())
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		panic("Failed to parse config file: " + err.Error())
	}

	if cfg.TickIntervalSeconds == 0 {
		cfg.TickIntervalSeconds = 60
	}
	if cfg.Output == "" {
		cfg.Output = OutputEPaper
	}
	if cfg.RetainFrameDays == 0 {
		cfg.RetainFrameDays = 7
	}

	cfg.validate()
	return cfg
}

func parseLogLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (cfg *Config) validate() {
	if cfg.Output != OutputEPaper && cfg.Output != OutputPNG {
		panic("Invalid output: " + cfg.Output + " (want epaper or png)")
	}
	if cfg.Output == OutputPNG {
		if cfg.FramePath == "" {
			panic("frame_path is required for png output")
		}
		if cfg.DisplayWidth <= 0 || cfg.DisplayHeight <= 0 {
			panic("display_width and display_height must be positive for png output")
		}
	}
	if cfg.TickIntervalSeconds < 0 {
		panic("tick_interval_seconds must not be negative")
	}
	if cfg.DBPath == "" {
		panic("db_path is required")
	}
}
