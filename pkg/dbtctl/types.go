package dbtctl

import (
	"context"

	"github.com/solo-io/dbt/pkg/config"
	"github.com/solo-io/dbt/pkg/dbt"
	"github.com/spf13/viper"
)

type Options struct {
	Dbt config.Dbt

	// Json switches listings to json
	Json bool

	// ConfigFile overrides the default location of the config file
	ConfigFile string

	ctx   context.Context
	probe *dbt.VersionProbe
	viper *viper.Viper

	// Internal contains cli-specific metadata
	Internal Internal

	// Config holds values that only come from the config file
	Config Config
}

type Internal struct {
	// ConfigLoaded should be set once the config has been loaded
	ConfigLoaded bool
}

type Config struct {
	logCmds bool
}
