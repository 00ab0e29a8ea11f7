package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type BookingConfig struct {
	Env            string `yaml:"env"`
	BookingDB      `yaml:"booking_db"`
	LogConfig      `yaml:"log_config"`
	KafkaService   `yaml:"kafka-service"`
	PaymentGateway `yaml:"payment-gateway"`
	MetricsServer  `yaml:"metrics_server"`
	Jobs           `yaml:"jobs"`
	Security       `yaml:"security"`
}

type BookingDB struct {
	Dsn            string `yaml:"dsn" env:"BOOKING_DB_DSN"`
	MigrationsPath string `yaml:"migrations_path" env-default:"db/migrations"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env-default:"info"`
	LogFormat string `yaml:"log_format" env-default:"json"`
	LogOutput string `yaml:"log_output" env-default:"stdout"`
}

type KafkaService struct {
	Host         string `yaml:"host"`
	Port         string `yaml:"port"`
	BookingTopic string `yaml:"booking_topic" env-default:"booking-events"`
	PayoutTopic  string `yaml:"payout_topic" env-default:"payout-events"`
}

type PaymentGateway struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MetricsServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"9090"`
}

type Jobs struct {
	DeadlineSweepInterval string `yaml:"deadline_sweep_interval" env-default:"10m"`
	PayoutSweepInterval   string `yaml:"payout_sweep_interval" env-default:"24h"`
}

type Security struct {
	// Base64-encoded 256-bit key for the bank detail vault.
	EncryptionKey string `yaml:"encryption_key" env:"BOOKING_ENCRYPTION_KEY"`
}

func MustLoad() *BookingConfig {

	// Processing env config variable and file
	configPath := os.Getenv("BOOKING_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("BOOKING_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg BookingConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
