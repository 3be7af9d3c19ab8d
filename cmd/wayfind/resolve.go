package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/spf13/cobra"

	"github.com/wayfind-dev/wayfind/internal/config"
	"github.com/wayfind-dev/wayfind/internal/errors"
	"github.com/wayfind-dev/wayfind/pkg/routes"
	"github.com/wayfind-dev/wayfind/pkg/source"
	"github.com/wayfind-dev/wayfind/pkg/telemetry"
)

func resolveCmd() *cobra.Command {
	var (
		dir        string
		platform   string
		asJSON     bool
		production bool
		showFiles  bool
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the route tree and print it",
		Long: `Resolve the project's routes directory into a route tree.

By default the tree is printed in a human-readable form. Use
--json for machine-readable output.

Examples:
  wayfind resolve
  wayfind resolve --platform=ios
  wayfind resolve --json > routes.json
  wayfind resolve --production`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(dir, platform, asJSON, production, showFiles)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Project directory (default: nearest wayfind.json)")
	cmd.Flags().StringVarP(&platform, "platform", "P", "", "Platform to resolve for (default from wayfind.json)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the tree as JSON")
	cmd.Flags().BoolVar(&production, "production", false, "Tolerate duplicate routes, last one wins")
	cmd.Flags().BoolVar(&showFiles, "files", false, "Show contributing files per route")

	return cmd
}

func runResolve(dir, platform string, asJSON, production, showFiles bool) error {
	var (
		cfg *config.Config
		err error
	)
	if dir != "" {
		cfg, err = config.Load(dir)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return err
	}

	if platform != "" {
		cfg.Platform = platform
	}

	opts, err := cfg.ResolveOptions(production)
	if err != nil {
		return err
	}
	opts.StripLoadRoute = true

	src := source.NewDirSource(cfg.RoutesPath())
	tree, err := routes.Resolve(src, opts)
	if err != nil {
		return errors.FromError(err, "W001")
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	}

	if tree == nil {
		return errors.New("W002").WithDetail("Looked in " + cfg.RoutesPath())
	}

	root := gtree.NewRoot(routeLabel(tree, showFiles))
	addChildren(root, tree, showFiles)
	if err := gtree.OutputProgrammably(os.Stdout, root); err != nil {
		return err
	}

	total := telemetry.CountNodes(tree) - 1
	fmt.Println()
	success("%d routes resolved for %s", total, opts.Platform)
	return nil
}

func addChildren(node *gtree.Node, rn *routes.RouteNode, showFiles bool) {
	for _, child := range rn.Children {
		sub := node.Add(routeLabel(child, showFiles))
		addChildren(sub, child, showFiles)
	}
}

// routeLabel renders a single node for tree output.
func routeLabel(rn *routes.RouteNode, showFiles bool) string {
	name := rn.Route
	if name == "" {
		name = "/"
	}

	var tags []string
	for _, d := range rn.Dynamic {
		if d.Deep {
			tags = append(tags, "catch-all:"+d.Name)
		} else {
			tags = append(tags, "param:"+d.Name)
		}
	}
	if rn.Generated {
		tags = append(tags, "generated")
	}
	if showFiles && len(rn.EntryPoints) > 0 {
		tags = append(tags, strings.Join(rn.EntryPoints, ", "))
	}

	if len(tags) == 0 {
		return name
	}
	return name + "  (" + strings.Join(tags, " ") + ")"
}
