package config

import "time"

// DaemonConfig holds daemon service configuration
type DaemonConfig struct {
	// PID file location
	PIDFile string `mapstructure:"pid_file"`

	// Maximum number of concurrently running voyages
	MaxVoyages int `mapstructure:"max_voyages" validate:"min=1"`

	// Resume unfinished auto-mode voyages on startup
	ResumeOnStart bool `mapstructure:"resume_on_start"`

	// Graceful shutdown timeout
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required"`
}
