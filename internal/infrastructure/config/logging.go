package config

// LoggingConfig controls where and how verbosely the simulator logs.
// Voyage reports and notifications go through the journal adapters, not
// here; this covers operational logging only.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// stdout, stderr or file
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`

	// FilePath names the log file when Output is "file".
	FilePath string `mapstructure:"file_path"`
}
