package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Database   Database   `yaml:"database"`
	Billing    Billing    `yaml:"billing"`
	CORS       CORS       `yaml:"cors"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     int    `yaml:"port" env-default:"5432"`
	User     string `yaml:"user" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env-default:"car_rental"`
	SSLMode  string `yaml:"sslmode" env-default:"disable"`
}

// Billing selects the pricer wired into the storage layer.
// Mode "per-day" uses each car's daily rate; "flat" charges FlatAmount
// regardless of duration.
type Billing struct {
	Mode       string `yaml:"mode" env-default:"per-day"`
	FlatAmount int    `yaml:"flat_amount" env-default:"100"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ORIGINS" env-default:"http://localhost:5173"`
}

// MustLoad reads the YAML config named by CONFIG_PATH, applying env
// overrides, and exits the process on any failure.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
