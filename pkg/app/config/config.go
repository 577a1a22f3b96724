package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config is read from FLW_* environment variables; a .env file in the working
// directory is loaded first when present.
type Config struct {
	HTTPAddress string `envconfig:"HTTP_ADDRESS" default:":8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	// InMemory switches storage to the process-local store. Meant for
	// development and demos; state is lost on exit.
	InMemory bool `envconfig:"IN_MEMORY" default:"false"`

	DBUser     string `envconfig:"DB_USER" default:"flw"`
	DBPassword string `envconfig:"DB_PASSWORD" default:""`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"3306"`
	DBName     string `envconfig:"DB_NAME" default:"flw"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if err := envconfig.Process("flw", &c); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}
	return &c, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}
