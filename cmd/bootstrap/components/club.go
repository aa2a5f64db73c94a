package components

import (
	"time"

	"clubhouse/internal/pkg/clock"
	"clubhouse/internal/pkg/config"

	"go.uber.org/fx"
)

// ClubModule provides the club's calendar: its time zone and a clock that
// reports wall time in it.
var ClubModule = fx.Module("club",
	fx.Provide(
		NewClubConfig,
		NewClubLocation,
		NewClock,
	),
)

func NewClubConfig(cfg config.Config) config.ClubConfig {
	return cfg.Club
}

func NewClubLocation(cfg config.ClubConfig) (*time.Location, error) {
	return cfg.Location()
}

func NewClock(loc *time.Location) clock.Clock {
	return clock.NewRealClockIn(loc)
}
