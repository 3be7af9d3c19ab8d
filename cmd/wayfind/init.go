package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/internal/config"
)

func initCmd() *cobra.Command {
	var routesDir string

	cmd := &cobra.Command{
		Use:   "init [name]",
		Short: "Create a wayfind.json in the current directory",
		Long: `Create a wayfind.json configuration file and the routes
directory it points at.

Examples:
  wayfind init
  wayfind init myapp --routes=src/routes`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}
			return runInit(name, routesDir)
		},
	}

	cmd.Flags().StringVarP(&routesDir, "routes", "r", config.DefaultRoutesDir, "Routes directory")

	return cmd
}

func runInit(name, routesDir string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	if config.Exists(wd) {
		return fmt.Errorf("%s already exists in %s", config.ConfigFileName, wd)
	}

	if name == "" {
		name = filepath.Base(wd)
	}

	cfg := config.New()
	cfg.Name = name
	cfg.Routes = routesDir

	if err := os.MkdirAll(filepath.Join(wd, routesDir), 0o755); err != nil {
		return err
	}
	if err := cfg.SaveTo(filepath.Join(wd, config.ConfigFileName)); err != nil {
		return err
	}

	printBanner()
	fmt.Println()
	success("Created %s", config.ConfigFileName)
	success("Created %s/", routesDir)
	fmt.Println()
	info("Add route files to %s and run:", routesDir)
	info("  wayfind resolve")
	fmt.Println()
	return nil
}
