package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type Storage struct {
	DataFile         string        `yaml:"dataFile" validate:"required|unixPath"`
	BackupFile       string        `yaml:"backupFile" validate:"required|unixPath"`
	SnapshotInterval time.Duration `yaml:"snapshotInterval" validate:"required|min:1"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type TrackingConfig struct {
	// Taps before this local hour are recorded as the previous day at 23:59.
	EarlyMorningCutover int    `yaml:"earlyMorningCutover" validate:"uint|max:23"`
	DefaultLanguage     string `yaml:"defaultLanguage" validate:"required|in:en,pt"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	Tracking  TrackingConfig `yaml:"tracking"`
	WebServer Server         `yaml:"webServer"`
	Storage   Storage        `yaml:"storage"`
	Logger    LoggerConfig   `yaml:"logger"`
	Cache     CacheConfig    `yaml:"cache"`
	Metrics   MetricsConfig  `yaml:"metrics"`
}
