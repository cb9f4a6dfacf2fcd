package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Resources ResourcesConfig `mapstructure:"resources" validate:"required"`
	Playback  PlaybackConfig  `mapstructure:"playback" validate:"required"`
	Review    ReviewConfig    `mapstructure:"review"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	UI        UIConfig        `mapstructure:"ui"`
}

// ResourcesConfig locates the bundled content files. An empty Dir means the
// resource directory is searched for at startup.
type ResourcesConfig struct {
	Dir         string `mapstructure:"dir"`
	CatalogFile string `mapstructure:"catalog_file" validate:"required"`
	ClipPattern string `mapstructure:"clip_pattern" validate:"required,contains=%d"`
	ChartImage  string `mapstructure:"chart_image" validate:"required"`
	HebrewFont  string `mapstructure:"hebrew_font"`
}

// PlaybackConfig holds the initial player settings
type PlaybackConfig struct {
	Speed     float64 `mapstructure:"speed" validate:"gte=0.5,lte=3"`
	Loop      bool    `mapstructure:"loop"`
	Narration bool    `mapstructure:"narration"`
}

// ReviewConfig controls the rating prompt
type ReviewConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	StoreURL string `mapstructure:"store_url" validate:"omitempty,url"`
}

// LogConfig controls diagnostics output
type LogConfig struct {
	Level   string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Console bool   `mapstructure:"console"`
}

// UIConfig holds presentation preferences
type UIConfig struct {
	Language string `mapstructure:"language" validate:"omitempty,oneof=system en ru pt"`
}
