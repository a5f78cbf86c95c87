package config

import "github.com/spf13/viper"

// setDefaults registers every key so environment overrides are picked up
// by Unmarshal even without a config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("bot.name", "ValueNetwork")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.dir", ".")

	v.SetDefault("strategy.expand_turn", 30)
	v.SetDefault("strategy.expand_min_players", 2)

	v.SetDefault("navigation.max_thrust", 7)
	v.SetDefault("navigation.max_corrections", 90)
	v.SetDefault("navigation.angular_step_deg", 1.0)
}
