package contracts

// SportModule defines the odds parameters of one sport.
// This lets the odds routes serve several sports from one code path.
type SportModule interface {
	// GetSportKey returns the vendor sport identifier (e.g., "icehockey_nhl")
	GetSportKey() string

	// GetDisplayName returns the human-readable name (e.g., "NHL Hockey")
	GetDisplayName() string

	// GetRegions returns the bookmaker regions to request (e.g., ["us"])
	GetRegions() []string

	// GetFeaturedMarkets returns the markets to request
	GetFeaturedMarkets() []string

	// GetDefaultWindowHours returns the horizon used when none is requested
	GetDefaultWindowHours() int

	// GetMaxWindowHours returns the largest horizon the sport allows
	GetMaxWindowHours() int
}
