package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/internal/config"
	"github.com/wayfind-dev/wayfind/internal/dev"
	"github.com/wayfind-dev/wayfind/pkg/routes"
	"github.com/wayfind-dev/wayfind/pkg/telemetry"
)

func devCmd() *cobra.Command {
	var (
		port    int
		host    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server.

The server watches the routes directory, re-resolves the route
tree on every change, and pushes updates to connected WebSocket
clients. Resolution errors are pushed too, so tooling can show
them without polling.

Examples:
  wayfind dev
  wayfind dev --port=8080
  wayfind dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(port, host, verbose)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from wayfind.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from wayfind.json)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every HTTP request")

	return cmd
}

func runDev(port int, host string, verbose bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}

	if port > 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}

	printBanner()
	fmt.Println("  dev")
	fmt.Println()

	server := dev.NewServer(dev.ServerOptions{
		Config:  cfg,
		Verbose: verbose,
		OnResolve: func(tree *routes.RouteNode, err error) {
			if err != nil {
				errorMsg("%s", err)
				return
			}
			if tree == nil {
				warn("No routes found in %s", cfg.RoutesPath())
				return
			}
			success("%d routes resolved", telemetry.CountNodes(tree)-1)
		},
		OnReload: func(clients int) {
			if clients > 0 {
				info("notified %d clients", clients)
			}
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\n\n  Shutting down...")
		cancel()
	}()

	info("watching %s", cfg.RoutesPath())
	info("serving on http://%s", cfg.DevAddress())
	fmt.Println()

	return server.Start(ctx)
}
