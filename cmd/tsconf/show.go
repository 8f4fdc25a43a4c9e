package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tsconf"
)

var showFormat string

var showCmd = &cobra.Command{
	Use:   "show [file-or-dir]",
	Short: "Load and print the configuration document",
	Long: `Load the configuration and print it as strict JSON (or YAML).
With no argument the marker file is searched upwards from the working
directory; a missing marker prints the default empty document.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		res, err := tsconf.Load(context.Background(), workingDir(), optionalArg(args), loaderOptions()...)
		if err != nil {
			fatal("Error loading configuration", err)
		}

		if res.Path != "" {
			slog.Debug("configuration resolved", "path", res.Path)
		}

		switch showFormat {
		case "json":
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(res.Config); err != nil {
				fatal("Error encoding JSON", err)
			}
		case "yaml":
			encoder := yaml.NewEncoder(os.Stdout)
			encoder.SetIndent(2)
			if err := encoder.Encode(res.Config); err != nil {
				fatal("Error encoding YAML", err)
			}
			encoder.Close()
		default:
			fatal("Unknown format", fmt.Errorf("%q (want json or yaml)", showFormat))
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showFormat, "format", "json", "Output format: json or yaml")
}

// workingDir returns the current directory or exits.
func workingDir() string {
	wd, err := os.Getwd()
	if err != nil {
		fatal("Error getting working directory", err)
	}
	return wd
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func loaderOptions() []tsconf.Option {
	opts := []tsconf.Option{
		tsconf.WithLogger(slog.Default()),
		tsconf.WithStrict(strict),
	}
	if marker != "" {
		opts = append(opts, tsconf.WithMarkerName(marker))
	}
	return opts
}
