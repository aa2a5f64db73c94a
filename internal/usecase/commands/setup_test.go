//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"time"

	"clubhouse/internal/pkg/config"
)

func testClubConfig() config.ClubConfig {
	return config.ClubConfig{
		TimeZone:            "UTC",
		FreezeMonthlyFee:    2000,
		ActivationGraceDays: 7,
		ClaimWindow:         5 * time.Minute,
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
