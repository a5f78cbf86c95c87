package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Bot        BotConfig        `mapstructure:"bot"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Strategy   StrategyConfig   `mapstructure:"strategy"`
	Navigation NavigationConfig `mapstructure:"navigation"`
}

// BotConfig identifies the bot to the game engine
type BotConfig struct {
	// Name sent during the handshake; also used in the log file name
	Name string `mapstructure:"name" validate:"required,max=32"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Directory for the per-game log file. stdout belongs to the engine.
	Dir string `mapstructure:"dir" validate:"required"`
}

// StrategyConfig holds the phase transition parameters
type StrategyConfig struct {
	// Exact turn on which the EXPAND check fires
	ExpandTurn int `mapstructure:"expand_turn" validate:"min=1,max=300"`

	// EXPAND requires strictly more players than this
	ExpandMinPlayers int `mapstructure:"expand_min_players" validate:"min=0,max=4"`
}

// NavigationConfig holds thrust and obstacle avoidance parameters
type NavigationConfig struct {
	MaxThrust      int     `mapstructure:"max_thrust" validate:"min=1,max=7"`
	MaxCorrections int     `mapstructure:"max_corrections" validate:"min=1,max=360"`
	AngularStepDeg float64 `mapstructure:"angular_step_deg" validate:"gte=0.1,lte=45"`
}

// Load loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (bot.yaml)
// 3. Defaults (lowest priority)
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("bot")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("HALITE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - the bot normally runs without one
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
