package inventory

import (
	"AdServeDesk/internal/config"
	"AdServeDesk/internal/serviceiface"
)

type InventoryService struct {
	config map[string]interface{}
	cfg    *Config
}

func NewInventoryService(config map[string]interface{}) serviceiface.Service {
	return &InventoryService{config: config}
}

func (s *InventoryService) Name() string {
	return "inventory"
}

func (s *InventoryService) Start() error {
	configFile, _ := s.config["config_file"].(string)
	cfg, err := LoadConfig(configFile)
	if err != nil {
		return err
	}
	if dir, ok := s.config["output_dir"].(string); ok && dir != "" {
		cfg.OutputDir = dir
	}
	s.cfg = cfg

	port := config.DefaultInventoryPort
	if p, ok := s.config["port"].(int); ok && p > 0 {
		port = p
	}
	go StartInventoryService(cfg, port)
	return nil
}

func (s *InventoryService) Stop() error {
	return nil
}
