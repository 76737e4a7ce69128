package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/maxslion/algod/pkg/algorithm"
	"github.com/maxslion/algod/pkg/config"
	"github.com/maxslion/algod/pkg/plugins"
)

var schemesCmd = &cobra.Command{
	Use:   "schemes",
	Short: "List the registered algorithm schemes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := plugins.Load(cfg.PluginManifest); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CODE\tNAME\tRESOURCE\tMODEL")
		for _, meta := range algorithm.Schemes() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", meta.Code, meta.Name, meta.ResourceType, meta.Model)
		}
		return w.Flush()
	},
}
