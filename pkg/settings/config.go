package settings

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Buffer   Buffer   `mapstructure:"buffer"`
	Workload Workload `mapstructure:"workload"`
	Logger   Logger   `mapstructure:"logger"`
}

// Buffer is the configuration for the shared buffer
type Buffer struct {
	Capacity int `mapstructure:"capacity" validate:"gt=0"`
}

// Workload is the configuration for the producer/consumer driver
type Workload struct {
	Producers        int `mapstructure:"producers" validate:"gte=1"`
	Consumers        int `mapstructure:"consumers" validate:"gte=1"`
	ItemsPerProducer int `mapstructure:"items_per_producer" validate:"gte=1"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAge      int    `mapstructure:"max_age"`
	MaxSize     int    `mapstructure:"max_size"`
	Compress    bool   `mapstructure:"compress"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads a config file and unmarshals it into a validated Config.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("logger.log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config %q", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration invariants.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
