package app

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath - путь к конфигу, если не задан CONFIG_PATH
const DefaultConfigPath = "config/config.yaml"

type Config struct {
	CfgDB           ConfigDB      `yaml:"db"`
	CfgRedis        ConfigRedis   `yaml:"redis"`
	CfgKafka        ConfigKafka   `yaml:"kafka"`
	CfgES           ConfigES      `yaml:"es"`
	ETLTimeout      time.Duration `yaml:"etl_search_timeout"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MigrationsPath  string        `yaml:"migrations_path"`
	Secret          string        `yaml:"secret"`
	ServerPort      string        `yaml:"srv_port"`
	SessionDuration time.Duration `yaml:"session_duration"`
}

type ConfigDB struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Port     uint   `yaml:"port"`
	Database string `yaml:"database"`
	Host     string `yaml:"host"`
}

type ConfigRedis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type ConfigKafka struct {
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic"`
}

func (c *ConfigKafka) SetDefaults() {
	if len(c.Brokers) == 0 {
		c.Brokers = []string{"kafka:9092"}
	}
	if c.Topic == "" {
		c.Topic = "feedback-events"
	}
}

type ConfigES struct {
	Addresses []string `yaml:"addresses"`
	Index     string   `yaml:"index"`
}

// ConfigPath - CONFIG_PATH из окружения или DefaultConfigPath
func ConfigPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return DefaultConfigPath
}

func NewConfig(configPath string) (*Config, error) {
	cfg, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var c Config
	err = yaml.Unmarshal(cfg, &c)
	if err != nil {
		return nil, err
	}

	// секреты не обязаны лежать в файле
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		c.CfgDB.Password = password
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		c.Secret = secret
	}

	c.setDefaults()

	return &c, nil
}

func (c *Config) setDefaults() {
	if c.CfgDB.Port == 0 {
		c.CfgDB.Port = 5432
	}
	if c.CfgRedis.Addr == "" {
		c.CfgRedis.Addr = "redis:6379"
	}
	c.CfgKafka.SetDefaults()
	if len(c.CfgES.Addresses) == 0 {
		c.CfgES.Addresses = []string{"http://elasticsearch:9200"}
	}
	if c.CfgES.Index == "" {
		c.CfgES.Index = "forms"
	}
	if c.ETLTimeout == 0 {
		c.ETLTimeout = time.Minute
	}
	if c.MaxOpenConns == 0 {
		c.MaxOpenConns = 10
	}
	if c.MigrationsPath == "" {
		c.MigrationsPath = "file://migrations"
	}
	if c.ServerPort == "" {
		c.ServerPort = ":8080"
	}
	if c.SessionDuration == 0 {
		c.SessionDuration = 24 * time.Hour
	}
}
