package config

import (
	"fmt"
	"strings"

	"github.com/mcuadros/go-defaults"
	"github.com/spf13/viper"

	"github.com/lucasa/framework/core/validator"
)

type Config struct {
	ServerHost string `mapstructure:"SERVER_HOST" default:"0.0.0.0"`
	ServerPort string `mapstructure:"SERVER_PORT" default:"8080"`

	DBHost     string `mapstructure:"DB_HOST" default:"localhost"`
	DBPort     int    `mapstructure:"DB_PORT" default:"5432"`
	DBName     string `mapstructure:"DB_NAME" default:"framework"`
	DBUser     string `mapstructure:"DB_USER" default:"postgres"`
	DBPassword string `mapstructure:"DB_PASSWORD" default:""`
	DBSSLMode  string `mapstructure:"DB_SSL_MODE" default:"disable"`

	// Global feature flags of the query layer. They gate whether a parsed
	// context is applied downstream, not whether it is parsed.
	SortEnabled       bool `mapstructure:"CRUD_SORT_ENABLED" default:"true"`
	FilterEnabled     bool `mapstructure:"CRUD_FILTER_ENABLED" default:"true"`
	PaginationEnabled bool `mapstructure:"CRUD_PAGINATION_ENABLED" default:"true"`
	DefaultPagination int  `mapstructure:"CRUD_DEFAULT_PAGINATION" default:"20" validate:"omitempty,gte=1"`
	MaxPageSize       int  `mapstructure:"CRUD_MAX_PAGE_SIZE" default:"100" validate:"omitempty,gte=1"`

	LogLevel string `mapstructure:"LOG_LEVEL" default:"info" validate:"omitempty,oneof=debug info warn error fatal"`
}

// Validate checks the loaded values against their constraints.
func (c *Config) Validate() error {
	return validator.ValidateStruct(c)
}

var config Config

// LoadConfig returns application configuration
func LoadConfig() (Config, error) {
	viper.SetConfigName("config")
	viper.AddConfigPath("./")
	viper.AddConfigPath("../")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("config file was not found. Env vars and defaults will be used")
		} else {
			return config, err
		}
	}

	defaults.SetDefaults(&config)

	err = viper.Unmarshal(&config)
	if err != nil {
		return config, fmt.Errorf("unable to unmarshal config to struct: %v\n", err)
	}

	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
