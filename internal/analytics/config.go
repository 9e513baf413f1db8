package analytics

import (
	"os"

	"feedback-main/internal/app"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CfgDB        app.ConfigDB    `yaml:"db"`
	CfgKafka     app.ConfigKafka `yaml:"kafka"`
	GroupID      string          `yaml:"group_id"`
	MaxOpenConns int             `yaml:"max_open_conns"`
	ServerPort   string          `yaml:"srv_port"`
}

func NewConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var cfg Config
	if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}

	if password := os.Getenv("DB_PASSWORD"); password != "" {
		cfg.CfgDB.Password = password
	}
	cfg.CfgKafka.SetDefaults()
	if cfg.GroupID == "" {
		cfg.GroupID = "analytics-group"
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = ":8082"
	}

	return &cfg, nil
}
