package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/tsconf"
)

var filesCmd = &cobra.Command{
	Use:   "files [file-or-dir]",
	Short: "List the files selected by the configuration",
	Long: `Load the configuration, then expand its files/include/exclude members
into the selected file list, one path per line, relative to the directory
containing the configuration file.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := tsconf.Load(context.Background(), workingDir(), optionalArg(args), loaderOptions()...)
		if err != nil {
			fatal("Error loading configuration", err)
		}

		rootDir := workingDir()
		if res.Path != "" {
			rootDir = filepath.Dir(res.Path)
		}

		selected, err := tsconf.Files(rootDir, res.Config)
		if err != nil {
			fatal("Error expanding file selection", err)
		}
		for _, f := range selected {
			fmt.Println(f)
		}
	},
}

func init() {
	rootCmd.AddCommand(filesCmd)
}
