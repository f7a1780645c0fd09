package icehockey_nhl

// Config contains the NHL odds parameters
type Config struct {
	// Sport identification
	SportKey    string
	DisplayName string

	// Bookmaker regions to request
	Regions []string

	// Window configuration for upcoming games
	Window WindowConfig
}

// WindowConfig bounds the horizon of the upcoming-games view
type WindowConfig struct {
	// Horizon used when the caller does not ask for one
	DefaultHours int

	// Largest horizon honored; larger requests are clamped
	MaxHours int
}

// DefaultConfig returns the NHL configuration
func DefaultConfig() *Config {
	return &Config{
		SportKey:    "icehockey_nhl",
		DisplayName: "NHL Hockey",
		Regions:     []string{"us"},

		Window: WindowConfig{
			DefaultHours: 24,
			MaxHours:     72,
		},
	}
}
