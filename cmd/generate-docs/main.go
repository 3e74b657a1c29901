package main

import (
	"log"

	"github.com/solo-io/dbt/pkg/dbtctl"
	"github.com/solo-io/dbt/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// writes the markdown reference of the dbt cli to ./docs/cli
func main() {
	app, err := dbtctl.App(version.Version)
	if err != nil {
		log.Fatal(err)
	}

	disableAutoGenTag(app)

	err = doc.GenMarkdownTree(app, "./docs/cli")
	if err != nil {
		log.Fatal(err)
	}
}

func disableAutoGenTag(c *cobra.Command) {
	c.DisableAutoGenTag = true
	for _, c := range c.Commands() {
		disableAutoGenTag(c)
	}
}
