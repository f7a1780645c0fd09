package icehockey_nhl

import (
	"github.com/Slim0909/nhl-bets/pkg/contracts"
)

// Module implements the SportModule interface for NHL hockey
type Module struct {
	config *Config
}

var _ contracts.SportModule = (*Module)(nil)

// NewModule creates a new NHL sport module
func NewModule() *Module {
	return &Module{
		config: DefaultConfig(),
	}
}

// GetSportKey returns the sport identifier
func (m *Module) GetSportKey() string {
	return m.config.SportKey
}

// GetDisplayName returns the human-readable name
func (m *Module) GetDisplayName() string {
	return m.config.DisplayName
}

// GetRegions returns the regions to request
func (m *Module) GetRegions() []string {
	return m.config.Regions
}

// GetFeaturedMarkets returns the markets to request
func (m *Module) GetFeaturedMarkets() []string {
	return FeaturedMarkets()
}

// GetDefaultWindowHours returns the default upcoming-games horizon
func (m *Module) GetDefaultWindowHours() int {
	return m.config.Window.DefaultHours
}

// GetMaxWindowHours returns the largest upcoming-games horizon
func (m *Module) GetMaxWindowHours() int {
	return m.config.Window.MaxHours
}
