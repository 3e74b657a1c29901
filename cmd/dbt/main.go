package main

import (
	"fmt"
	"os"

	"github.com/solo-io/dbt/pkg/dbtctl"
	"github.com/solo-io/dbt/pkg/version"
)

func main() {
	app, err := dbtctl.App(version.Version)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := app.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
