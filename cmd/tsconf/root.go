package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool
	marker  string
	strict  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tsconf",
	Short: "Locate and parse tsconfig.json-style configuration files",
	Long: `tsconf resolves a project configuration file by walking up the directory
tree, sanitizes its relaxed JSON syntax (comments, trailing commas), and
prints the strict-JSON result.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&marker, "marker", "", "Marker filename to search for (default tsconfig.json)")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Decode numbers as json.Number to preserve precision")
}
