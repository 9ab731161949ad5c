package api

import (
	"fmt"

	"AdServeDesk/internal/config"
	"AdServeDesk/internal/serviceiface"
)

type GatewayService struct {
	config map[string]interface{}
}

func NewGatewayService(cfg map[string]interface{}) serviceiface.Service {
	return &GatewayService{config: cfg}
}

func (s *GatewayService) Name() string {
	return "gateway"
}

func (s *GatewayService) Start() error {
	port := config.DefaultGatewayPort
	if p, ok := s.config["port"].(int); ok && p > 0 {
		port = p
	}

	var targets []string
	if raw, ok := s.config["inventory_targets"].([]interface{}); ok {
		for _, t := range raw {
			if s, ok := t.(string); ok && s != "" {
				targets = append(targets, s)
			}
		}
	}
	if len(targets) == 0 {
		inventoryPort := config.DefaultInventoryPort
		if p, ok := s.config["inventory_port"].(int); ok && p > 0 {
			inventoryPort = p
		}
		targets = []string{fmt.Sprintf("http://localhost:%d", inventoryPort)}
	}

	go StartGateway(port, targets)
	return nil
}

func (s *GatewayService) Stop() error {
	// Implement stop logic if needed
	return nil
}
