package bootstrap

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/hojattop/hojattop-api/consts"
)

const envPrefix = "hojattop"

func setDefaults() {
	viper.SetDefault("log.level", "info")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.trace", false)
	viper.SetDefault("store.driver", "memory")
	viper.SetDefault("mongo.database", "hojattop")
	viper.SetDefault("cache.driver", "memory")
	viper.SetDefault("cache.path", "hojattop-cache.db")
	viper.SetDefault("redis.prefix", "hojattop:")
	viper.SetDefault("geo.latitude", consts.TashkentLatitude)
	viper.SetDefault("geo.longitude", consts.TashkentLongitude)
}

// LoadConfig reads .env, the config file and HOJATTOP_* environment
// variables, in increasing precedence, and sets up logging. A missing
// config file is not an error.
func LoadConfig(configFile string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	setDefaults()

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			log.WithField("prefix", "config").WithField("file", configFile).Warn("config file not found, use defaults")
		}
	}

	level, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	return nil
}
