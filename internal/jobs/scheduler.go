package jobs

import (
	"fmt"
	"log"

	"AdServeDesk/internal/logger"
	"AdServeDesk/internal/serviceiface"

	"github.com/robfig/cron/v3"
)

type CronService struct {
	config map[string]interface{}
	cron   *cron.Cron
}

func NewCronService(cfg map[string]interface{}) serviceiface.Service {
	return &CronService{config: cfg}
}

func (s *CronService) Name() string {
	return "cron"
}

func (s *CronService) Start() error {
	log.Println("Starting cron service...")

	jobCfg := NewDefaultFixedPropConfig()
	if s.config != nil {
		if schedule, ok := s.config["fixedprop_schedule"].(string); ok && schedule != "" {
			jobCfg.Schedule = schedule
		}
		if cfgFile, ok := s.config["config_file"].(string); ok && cfgFile != "" {
			jobCfg.ConfigFile = cfgFile
		}
	}

	c, err := RunFixedPropScheduler(jobCfg)
	if err != nil {
		return fmt.Errorf("failed to start fixed-property scheduler: %v", err)
	}
	s.cron = c

	if logger.GlobalLogger != nil {
		logger.GlobalLogger.LogAudit("Cron service started with fixed-property generator")
	}
	log.Println("Cron service started — Fixed Property Generator scheduled")
	return nil
}

func (s *CronService) Stop() error {
	if s.cron != nil {
		s.cron.Stop()
	}
	log.Println("Cron service stopped.")
	return nil
}
