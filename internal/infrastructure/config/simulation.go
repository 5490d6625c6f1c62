package config

// SimulationConfig holds voyage simulation configuration
type SimulationConfig struct {
	// Simulated days per wall-clock second in auto mode; 0 means unthrottled
	DaysPerSecond float64 `mapstructure:"days_per_second" validate:"min=0"`

	// Directory of registry YAML overrides; empty uses the embedded registry
	RegistryDir string `mapstructure:"registry_dir"`

	// External weather command; empty uses the built-in generator
	WeatherCommand string `mapstructure:"weather_command"`

	// Default crew quality when a voyage config leaves it unset
	DefaultCrewQuality string `mapstructure:"default_crew_quality" validate:"omitempty,oneof=LANDLUBBER GREEN AVERAGE TRAINED CRACK OLD_SALTS"`
}
