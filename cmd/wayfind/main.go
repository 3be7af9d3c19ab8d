package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	werrors "github.com/wayfind-dev/wayfind/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦ ╦┌─┐┬ ┬┌─┐┬┌┐┌┌┬┐
  ║║║├─┤└┬┘├┤ ││││ ││
  ╚╩╝┴ ┴ ┴ └  ┴┘└┘─┴┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "wayfind",
		Short: "File-based route resolution for app directories",
		Long: `Wayfind resolves a directory of route files into a single
navigable route tree.

It understands the file conventions of app-directory routing:

  • _layout files nest their siblings
  • [param] and [...rest] dynamic segments
  • (group) and (a,b) array group directories
  • platform-specific variants (index.ios.tsx, index.web.tsx)
  • +not-found fallbacks and +api handlers`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		resolveCmd(),
		devCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		var werr *werrors.WayfindError
		if errors.As(err, &werr) {
			fmt.Fprint(os.Stderr, werr.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Wayfind ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
