package config

// Config holds app configuration
type Config struct {
	// ServerConfig is the path to server.cfg
	ServerConfig string `mapstructure:"server_config"`

	// Profile is the path to the server profile (*.Arma3Profile)
	Profile string `mapstructure:"profile"`

	// GameDir is the Arma 3 server install; missions are discovered in
	// its MPMissions folder
	GameDir string `mapstructure:"game_dir"`

	// Selection is a TOML mission selection: the input of save, and the
	// earlier choices missions carries over
	Selection string `mapstructure:"selection"`
	Output    string `mapstructure:"output"`

	// Append keeps the existing Missions block when saving and appends the
	// new one after it instead of replacing it
	Append bool `mapstructure:"append"`

	DryRun       bool   `mapstructure:"dry_run"`
	LogLevel     string `mapstructure:"log_level"`
	LogOutputDir string `mapstructure:"log_output_dir"`
}
