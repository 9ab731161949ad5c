package inventory

import (
	"fmt"
	"os"

	"AdServeDesk/internal/config"

	"gopkg.in/yaml.v3"
)

// TemplateRow is one curated fixed-price property row; the calendar expander
// copies it once per day of the requested month.
type TemplateRow struct {
	Property    string `yaml:"property"`
	PriceType   string `yaml:"price_type"`
	Rate        int64  `yaml:"rate"`
	Page        string `yaml:"page"`
	Supply      int64  `yaml:"supply"`
	Allocation  int64  `yaml:"allocation"`
	BU          string `yaml:"bu"`
	Event       string `yaml:"event"`
	Impressions int64  `yaml:"impressions"`
}

// HPFixedValues are the constant output columns of the homepage-targeting
// feed.
type HPFixedValues struct {
	Property  string `yaml:"property"`
	BU        string `yaml:"bu"`
	Page      string `yaml:"page"`
	PriceType string `yaml:"price_type"`
}

// Config carries the curated constant tables and output locations. These are
// injected configuration, not runtime discoveries; the YAML file overrides
// the defaults below field by field.
type Config struct {
	OutputDir        string            `yaml:"output_dir"`
	VerificationFile string            `yaml:"verification_file"`
	PLAPropertyMap   map[string]string `yaml:"pla_property_map"`
	FixedTemplate    []TemplateRow     `yaml:"fixed_template"`
	HPTargeting      HPFixedValues     `yaml:"hp_targeting"`
	MonetisedRate    int64             `yaml:"monetised_rate"`
}

// NewDefaultConfig mirrors the curated tables the operations desk runs with.
func NewDefaultConfig() *Config {
	return &Config{
		OutputDir:        config.DefaultOutputDir,
		VerificationFile: config.DefaultVerificationFile,
		PLAPropertyMap: map[string]string{
			"Men's Casual Wear":       "PLA - MCW",
			"Men's Work Wear":         "PLA - MWW",
			"Men's Essentials":        "PLA - MEN'S ESSENTIALS",
			"International Brands":    "PLA - IB",
			"Jewellery":               "PLA - JEWELLERY",
			"Watches and Wearables":   "PLA - WATCHES AND WEARABLES",
			"Women's LTA":             "PLA - WOMEN'S LTA",
			"Men's LTA & Eyewear":     "PLA - MEN'S LTA",
			"Lingerie and Loungewear": "PLA - LINGERIE AND LOUNGEWEAR",
			"Personal Care":           "PLA - PC",
			"Home Furnishing":         "PLA - HOME FURNISHING",
		},
		FixedTemplate: []TemplateRow{
			{Property: "Instagram Post", PriceType: PriceCPD, Rate: 150000, Page: PageSocial, Supply: 1, Allocation: 1, BU: "OPEN ALLOCATION", Event: DefaultEvent, Impressions: 1},
			{Property: "Instagram Story", PriceType: PriceCPD, Rate: 150000, Page: PageSocial, Supply: 1, Allocation: 1, BU: "OPEN ALLOCATION", Event: DefaultEvent, Impressions: 1},
			{Property: "Facebook Post", PriceType: PriceCPD, Rate: 75000, Page: PageSocial, Supply: 1, Allocation: 1, BU: "OPEN ALLOCATION", Event: DefaultEvent, Impressions: 1},
			{Property: "Facebook Story", PriceType: PriceCPD, Rate: 75000, Page: PageSocial, Supply: 1, Allocation: 1, BU: "OPEN ALLOCATION", Event: DefaultEvent, Impressions: 1},
			{Property: "Push Notification", PriceType: PriceCPD, Rate: 150000, Page: PageCRM, Supply: 1, Allocation: 1, BU: "OPEN ALLOCATION", Event: DefaultEvent, Impressions: 1},
			{Property: "Push Notification-Custom", PriceType: PriceCPD, Rate: 200000, Page: PageCRM, Supply: 1, Allocation: 1, BU: "SUPPLY TEAM", Event: DefaultEvent, Impressions: 1},
			{Property: "In App Notification", PriceType: PriceCPD, Rate: 50000, Page: PageCRM, Supply: 1, Allocation: 1, BU: "SUPPLY TEAM", Event: DefaultEvent, Impressions: 1},
		},
		HPTargeting: HPFixedValues{
			Property:  "HP_TARGETING 1",
			BU:        "PERSONAL CARE",
			Page:      PageHome,
			PriceType: PriceCPM,
		},
		MonetisedRate: 50,
	}
}

// LoadConfig reads the YAML config over the defaults. A missing file is not
// an error: the desk's curated defaults apply.
func LoadConfig(path string) (*Config, error) {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read inventory config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse inventory config: %w", err)
	}
	return cfg, nil
}
