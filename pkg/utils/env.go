package utils

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// LoadEnv loads a .env file from the given directory (if present) and
// enables viper's automatic env binding. Missing .env is not an error:
// production deployments configure through real environment variables.
func LoadEnv(path string) {
	envFile := filepath.Join(path, ".env")
	if err := godotenv.Load(envFile); err != nil {
		logrus.Debugf("no .env file loaded from %s: %v", envFile, err)
	}
	viper.AutomaticEnv()
}
