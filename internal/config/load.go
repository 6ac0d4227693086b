package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// BEADMATCH_DEBUG=1 or BEADMATCH_SEARCH_TOP_N=5.
const EnvPrefix = "BEADMATCH"

// SetDefaults registers Defaults() with v so every key is known to viper
// (required for environment overrides of unset keys).
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("catalog", d.Catalog)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_file", d.LogFile)
	v.SetDefault("log_format", d.LogFormat)
	v.SetDefault("search.top_n", d.Search.TopN)
	v.SetDefault("search.tie_break", d.Search.TieBreak)
	v.SetDefault("search.cache", d.Search.Cache)
	v.SetDefault("sprite.max_colors", d.Sprite.MaxColors)
	v.SetDefault("sprite.alpha_threshold", d.Sprite.AlphaThreshold)
	v.SetDefault("ui.swatches", d.UI.Swatches)
	v.SetDefault("ui.max_name_width", d.UI.MaxNameWidth)
}

// BindEnv enables BEADMATCH_* environment overrides on v.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load unmarshals and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	cfg := Defaults()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
