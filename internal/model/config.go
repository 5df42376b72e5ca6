package model

// AppConfig is the application-level preference record persisted to
// app_config.json: the process-wide current font, which seeds the font of
// every newly created note, and the last window geometry.
type AppConfig struct {
	CurrentFont FontDescriptor `json:"current_font" mapstructure:"current_font"`
	WindowSize  string         `json:"window_size" mapstructure:"window_size"`
}

// DefaultAppConfig returns the configuration used when no file exists or
// the existing one cannot be parsed.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		CurrentFont: DefaultFont(),
		WindowSize:  "1200x800",
	}
}
