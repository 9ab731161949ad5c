package jobs

import (
	"fmt"
	"time"

	"AdServeDesk/api/inventory"
	"AdServeDesk/internal/config"
	"AdServeDesk/internal/logger"

	"github.com/robfig/cron/v3"
)

// FixedPropConfig drives the monthly fixed-property generation job.
type FixedPropConfig struct {
	Schedule   string
	TimeZone   string
	ConfigFile string
}

// NewDefaultFixedPropConfig creates a config with default values from the
// config package.
func NewDefaultFixedPropConfig() *FixedPropConfig {
	return &FixedPropConfig{
		Schedule: config.DefaultFixedPropSchedule,
		TimeZone: config.DefaultTimeZone,
	}
}

// RunFixedPropScheduler registers the monthly fixed-property job and starts
// the cron runner. The caller owns the returned cron and stops it on
// shutdown.
func RunFixedPropScheduler(cfg *FixedPropConfig) (*cron.Cron, error) {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone for fixed-property generator: %v", err)
	}

	invCfg, err := inventory.LoadConfig(cfg.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load inventory config: %v", err)
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(cfg.Schedule, func() {
		now := time.Now().In(loc)
		month := now.Month().String()
		year := now.Year()
		if logger.GlobalLogger != nil {
			logger.GlobalLogger.LogAudit(fmt.Sprintf("Running Fixed Property Generator for %s %d", month, year))
		}
		out, rows, err := inventory.RunFixedProperties(invCfg, month, year)
		if err != nil {
			if logger.GlobalLogger != nil {
				logger.GlobalLogger.LogAudit(fmt.Sprintf("Fixed Property Generator failed: %v", err))
			}
			return
		}
		if logger.GlobalLogger != nil {
			logger.GlobalLogger.LogAudit(fmt.Sprintf("Fixed Property Generator wrote %d rows to %s", rows, out))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("schedule fixed-property generator: %v", err)
	}

	c.Start()
	return c, nil
}
