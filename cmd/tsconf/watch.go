package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/tsconf"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file-or-dir]",
	Short: "Follow the configuration file and reprint it on change",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := tsconf.Resolve(context.Background(), workingDir(), optionalArg(args), loaderOptions()...)
		if err != nil {
			fatal("Error resolving configuration", err)
		}
		if path == "" {
			fatal("Nothing to watch", fmt.Errorf("no %s found", markerOrDefault()))
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		watcher, err := tsconf.Watch(ctx, path, loaderOptions()...)
		if err != nil {
			fatal("Error starting watcher", err)
		}
		defer watcher.Stop(context.Background())

		slog.Info("watching", "path", path)

		for event := range watcher.Events() {
			switch {
			case event.Err != nil:
				slog.Error("reload failed", "path", event.Path, "error", event.Err)
			case event.Type == tsconf.EventRemove:
				slog.Warn("configuration removed", "path", event.Path)
			default:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(event.Config); err != nil {
					fatal("Error encoding JSON", err)
				}
			}
		}
	},
}

func markerOrDefault() string {
	if marker != "" {
		return marker
	}
	return tsconf.DefaultMarkerName
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
