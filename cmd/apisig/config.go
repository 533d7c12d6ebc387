package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/dhamidi/apisig/sig/parser"
)

// config is loaded with the following priority (highest to lowest):
// environment variables (APISIG_*), a .apisig.yaml config file in the
// working directory or home directory, built-in defaults.
type config struct {
	// Output is the default output format for the parse command.
	Output string `mapstructure:"output"`
	// AnnotationPrefixes maps additional shortened annotation names to the
	// package prefix they expand to.
	AnnotationPrefixes map[string]string `mapstructure:"annotation_prefixes"`
}

func loadConfig() (*config, error) {
	v := viper.New()

	v.SetConfigName(".apisig")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}

	v.SetEnvPrefix("APISIG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("output", "sig")
	v.SetDefault("annotation_prefixes", map[string]string{})

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := &config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func parserOptions(cfg *config) []parser.Option {
	var opts []parser.Option
	if len(cfg.AnnotationPrefixes) > 0 {
		opts = append(opts, parser.WithShortAnnotations(cfg.AnnotationPrefixes))
	}
	return opts
}
