package dbtctl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func (o *Options) setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if o.Dbt.Verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
}

var logFileName = "cmd.log"

func (o *Options) logCmd(cmd *cobra.Command, args []string) {
	if !o.Config.logCmds {
		return
	}

	cmdWithArgs := fmt.Sprintf("%v %v", cmd.CommandPath(), strings.Join(args, " "))
	flagSpec := getFlagSpec(cmd)
	cmdSpec := fmt.Sprintf("%v %v", cmdWithArgs, flagSpec)

	dir, err := dbtDir()
	if err != nil {
		log.WithField("err", err).Warn("can't log command")
		return
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.WithField("err", err).Warn("can't log command")
		return
	}
	defer f.Close()
	content := fmt.Sprintf("%v, %v\n", time.Now(), cmdSpec)
	if _, err := f.Write([]byte(content)); err != nil {
		log.WithField("err", err).Warn("can't log command")
	}
}

func getChangedFlags(cmd *cobra.Command) map[string]pflag.Value {
	setFlags := make(map[string]pflag.Value)
	ff := func(f *pflag.Flag) {
		if f.Changed {
			setFlags[f.Name] = f.Value
		}
	}
	cmd.Flags().VisitAll(ff)
	return setFlags
}

func getFlagSpec(cmd *cobra.Command) string {
	flagsChanged := getChangedFlags(cmd)
	str := ""
	for k, v := range flagsChanged {
		switch v.Type() {
		case "bool":
			str += fmt.Sprintf("--%v ", k)
		default:
			str += fmt.Sprintf("--%v \"%v\" ", k, v)
		}
	}
	return str
}
