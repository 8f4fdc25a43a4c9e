package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/tsconf"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tsconf",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tsconf version %s\n", strings.TrimSpace(tsconf.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
