// Package config loads server settings from flags, environment and an
// optional config.yaml.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the resolved server configuration.
type Config struct {
	Addr             string        `mapstructure:"addr"`
	Mode             string        `mapstructure:"mode"`
	StaticDir        string        `mapstructure:"static_dir"`
	DBPath           string        `mapstructure:"db_path"`
	TrackVisitors    bool          `mapstructure:"track_visitors"`
	VisitorRetention time.Duration `mapstructure:"visitor_retention"`
	SessionTTL       time.Duration `mapstructure:"session_ttl"`
	CV               CV            `mapstructure:"cv"`
	Admin            Admin         `mapstructure:"admin"`
}

// CV configures the pre-built résumé download.
type CV struct {
	// PrebuiltURL is fetched by GET /cv. Empty means the site's own
	// /static/cv/<file>, fetched over loopback on the listen port.
	PrebuiltURL string `mapstructure:"prebuilt_url"`
}

// Admin holds the dashboard credentials.
type Admin struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// DefaultAddr is used when neither addr nor PORT is set.
const DefaultAddr = ":8080"

// EnvPrefix is prepended to every environment override, e.g. PROFILO_ADDR.
const EnvPrefix = "PROFILO"

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("mode", "release")
	v.SetDefault("static_dir", "static")
	v.SetDefault("db_path", "profilo.db")
	v.SetDefault("track_visitors", true)
	v.SetDefault("visitor_retention", 365*24*time.Hour)
	v.SetDefault("session_ttl", 2*time.Hour)
	v.SetDefault("cv.prebuilt_url", "")
	v.SetDefault("admin.username", "")
	v.SetDefault("admin.password", "")
}

// Load reads cfgFile (or ./config.yaml when empty) and the environment into a
// Config. A missing default config file is not an error.
func Load(v *viper.Viper, cfgFile string) (Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is what most hosts set
	_ = v.BindEnv("port", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Printf("Using config file: %s", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
		if port := v.GetString("port"); port != "" {
			cfg.Addr = ":" + port
		}
	}
	return cfg, nil
}
