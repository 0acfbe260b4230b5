package config

import (
	"errors"
	"strings"

	"github.com/getzep/csmentor/internal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// We're bootstrapping so avoid any imports from other packages
var log = logrus.New()

const (
	EnvPrefix          = "CSMENTOR"
	DefaultIntentsPath = "intents.json"
	DefaultContextPath = "context.txt"
	DefaultPort        = 8000
)

// LoadConfig loads the config file and ENV variables into a Config struct.
// A missing default config file is not an error: defaults and ENV are used instead.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetConfigType("yaml")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, err
		}
		log.Debug("config file not found, using defaults and environment")
	}

	// Environment variables take precedence over config file
	loadDotEnv()

	err := v.BindEnv("auth.secret", "CSMENTOR_AUTH_SECRET")
	if err != nil {
		log.Fatalf("Error binding environment variable: %s", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// NewDefaultConfig returns a Config populated only with defaults. Useful for tests
// and for the CLI subcommands that don't need a config file.
func NewDefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Unmarshalling plain defaults cannot fail
	_ = v.Unmarshal(&cfg)

	return &cfg
}

// setDefaults registers every key. AutomaticEnv only reaches keys viper
// already knows, so a key missing here can't be set from the environment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", internal.LogFormatText)
	v.SetDefault("intents.path", DefaultIntentsPath)
	v.SetDefault("answer.strategy", "intents")
	v.SetDefault("answer.match_threshold", 0.4)
	v.SetDefault("answer.accept_threshold", 0.5)
	v.SetDefault("answer.word_weight", 0.7)
	v.SetDefault("answer.sequence_weight", 0.3)
	v.SetDefault("qa.context_path", DefaultContextPath)
	v.SetDefault("qa.server_url", "")
	v.SetDefault("qa.min_confidence", 0.3)
	v.SetDefault("qa.timeout_seconds", 30)
	v.SetDefault("qa.max_retries", 3)
	v.SetDefault("auth.secret", "")
	v.SetDefault("auth.required", false)
}

// loadDotEnv loads environment variables from .env file
func loadDotEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Debug(".env file not found or unable to load")
	}
}

// SetLogLevel applies log.level and log.format. The level defaults to INFO if
// not set or invalid.
func SetLogLevel(cfg *Config) {
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	internal.SetLogFormat(cfg.Log.Format)
	internal.SetLogLevel(level)
	log.Info("Log level set to: ", level)
}
