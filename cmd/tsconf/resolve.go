package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/tsconf"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [file-or-dir]",
	Short: "Print the resolved configuration path",
	Long: `Resolve the configuration path without parsing it. Prints nothing and
exits 0 when the no-argument search finds no marker file; an explicit
argument that does not resolve is an error.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := tsconf.Resolve(context.Background(), workingDir(), optionalArg(args), loaderOptions()...)
		if err != nil {
			fatal("Error resolving configuration", err)
		}
		if path != "" {
			fmt.Println(path)
		}
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
