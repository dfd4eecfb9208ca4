// Package config handles configuration for the ipotracker tools,
// including defaults, an optional .env file, process environment
// variables, and command-line flags.
package config

import "fmt"

// Config holds the connection settings for the PostgreSQL store.
//
// Fields:
//   - Host / Port: database server address.
//   - Name: database name.
//   - User / Password: credentials. The default password is empty, which
//     matches a local trust-authenticated server; override it anywhere else.
type Config struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// LoadDefaults populates Config with local development defaults.
func (c *Config) LoadDefaults() {
	c.Host = "localhost"
	c.Port = "5432"
	c.Name = "ipos"
	c.User = "postgres"
	c.Password = ""
}

// DSN returns a keyword/value connection string accepted by the pgx
// stdlib driver.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name,
	)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional .env file and the process environment, and finally from
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
