package dbtctl

import (
	"io/ioutil"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/solo-io/dbt/pkg/options"
	"github.com/spf13/pflag"
)

// readConfigValues blends the config file into the options. Flags given on the
// command line take precedence over the file, the file over flag defaults.
func (top *Options) readConfigValues(f *pflag.FlagSet) error {
	if err := top.prepareViperConfig(); err != nil {
		return err
	}

	v := top.viper
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, f.Lookup(name)); err != nil {
			return errors.Wrapf(err, "binding flag %s", name)
		}
	}

	c := &top.Dbt
	c.Debuggers = v.GetStringSlice("debuggers")
	c.Preludes = v.GetStringSlice("preludes")
	c.Jobs = v.GetInt("jobs")
	c.TimeoutSeconds = v.GetInt("timeout_seconds")
	c.WorkDir = v.GetString("work_dir")
	c.Extensions = v.GetStringSlice("extensions")
	c.Debuggee = v.GetString("debuggee")
	c.Output = v.GetString("output")
	c.Verbose = v.GetBool("verbose")
	top.Config.logCmds = v.GetBool("log_commands")
	return nil
}

func writeDefaultConfigFile(fp string) error {
	log.Infof("dbt config file not found. Writing default config to %v.", fp)
	var defaultConfigYaml = []byte(`# dbt configuration file
# Every value can be overridden with the flag of the same name.
# debuggers: [gdb]
# preludes: ["gdb:set print pretty on"]
# jobs: 4
# timeout_seconds: 60
# work_dir: /tmp
# extensions: [.rs, .c, .cpp, .go]
# output: text
verbose: false
log_commands: false
createdby: dbt-initialization
`)
	if err := os.MkdirAll(filepath.Dir(fp), 0755); err != nil {
		return err
	}
	return ioutil.WriteFile(fp, defaultConfigYaml, 0644)
}

// This needs to be called before viper can read any config values
func (top *Options) prepareViperConfig() error {
	if top.Internal.ConfigLoaded {
		// only load the config once
		return nil
	}

	cfgFile := top.ConfigFile
	if cfgFile == "" {
		dir, err := dbtDir()
		if err != nil {
			return err
		}
		cfgFile = filepath.Join(dir, options.ConfigFileName)
	}
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		if err := writeDefaultConfigFile(cfgFile); err != nil {
			return errors.Wrap(err, "writing default config")
		}
	}

	top.viper.SetConfigFile(cfgFile)
	top.viper.SetConfigType("yaml")
	if err := top.viper.ReadInConfig(); err != nil {
		return errors.Wrap(err, "Can't read config")
	}
	top.Internal.ConfigLoaded = true
	return nil
}

func dbtDir() (string, error) {
	// Find home directory.
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, options.ConfigDirName), nil
}
