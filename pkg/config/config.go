package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/go-playground/validator.v9"
	"gopkg.in/ini.v1"
)

var (
	configFiles = []string{
		"/etc/dataarchitect/dataarchitect.conf",
		filepath.Join(os.Getenv("HOME"), ".dataarchitect.conf"),
	}

	GlobalSettings Settings
)

func InitSettings(settings Settings) {
	GlobalSettings = settings
}

// LoadConfig reads the first non-empty config file from the search paths
// (or the given paths) and maps it onto the defaults. A missing config
// file is not an error: the defaults match the original demo database.
func LoadConfig(paths ...string) Settings {
	if len(paths) == 0 {
		paths = configFiles
	}

	config := defaultConfig()

	var validConfigFile string
	for _, configFile := range paths {
		fileInfo, statErr := os.Stat(configFile)
		if statErr != nil {
			if os.IsNotExist(statErr) {
				continue
			}
			log.Error().Err(statErr).Msgf("Error accessing config file %s", configFile)
			continue
		}

		if fileInfo.Size() == 0 {
			log.Debug().Msgf("Config file %s is empty, skipping...", configFile)
			continue
		}

		validConfigFile = configFile
		break
	}

	if validConfigFile != "" {
		log.Debug().Msgf("Using config file %s", validConfigFile)

		iniData, err := ini.Load(validConfigFile)
		if err != nil {
			log.Fatal().Err(err).Msgf("Failed to load config file %s", validConfigFile)
		}

		err = iniData.MapTo(&config)
		if err != nil {
			log.Fatal().Err(err).Msgf("Failed to parse config file %s", validConfigFile)
		}
	} else {
		log.Debug().Msg("No config file found, using default settings")
	}

	if config.Logging.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	settings, err := validateConfig(config)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration. Aborting...")
	}

	return settings
}

func defaultConfig() Config {
	var config Config
	config.Database.Host = "localhost"
	config.Database.Port = 5432
	config.Database.Name = "example"
	config.Database.User = "postgres"
	config.Database.Password = "password"
	config.Demo.Machines = 10
	config.Collect.Interval = 60
	return config
}

func validateConfig(config Config) (Settings, error) {
	log.Debug().Msg("Validating configuration fields...")

	err := validator.New().Struct(config)
	if err != nil {
		return Settings{}, err
	}

	settings := Settings{
		Host:            config.Database.Host,
		Port:            config.Database.Port,
		Database:        config.Database.Name,
		User:            config.Database.User,
		Password:        config.Database.Password,
		Machines:        config.Demo.Machines,
		CollectInterval: time.Duration(config.Collect.Interval) * time.Second,
		Debug:           config.Logging.Debug,
	}

	return settings, nil
}
