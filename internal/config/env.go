package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the process environment. A .env file
// in the working directory is loaded first, if present; variables already
// set in the environment win over the file, per godotenv semantics.
//
// Recognized variables: DB_HOST, DB_PORT, DB_NAME, DB_USER, DB_PASSWORD.
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setIfPresent(&config.Host, "DB_HOST")
	setIfPresent(&config.Port, "DB_PORT")
	setIfPresent(&config.Name, "DB_NAME")
	setIfPresent(&config.User, "DB_USER")
	setIfPresent(&config.Password, "DB_PASSWORD")
}

func setIfPresent(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}
