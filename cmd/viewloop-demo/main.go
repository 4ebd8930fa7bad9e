// Viewloop-demo is a small interactive application showcasing the viewloop
// runtime.
//
// It runs the render/handle-event loop over three swappable views: a menu,
// a counter, and a Bubble Tea text input embedded through the teaview
// adapter. Use it to see deferred view swapping and cooperative shutdown in
// action.
//
// Usage:
//
//	viewloop-demo [flags]
//
// See 'viewloop-demo --help' for available options.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/viewloop/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "viewloop-demo",
	Short: "Viewloop Demo Application",
	Long: `An interactive demo of the viewloop terminal application runtime.

The demo starts on a menu view; selecting an entry swaps the active view
in place using the runtime's deferred view-change protocol. Press 'q' or
ctrl+c from any view to quit.`,
	Version: version.Version,
	RunE:    runDemo,
}

// Flags
var (
	logLevel  string
	logFile   string
	startView string
)

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when empty")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Log file path (default viewloop.log when logging is enabled)")
	rootCmd.Flags().StringVar(&startView, "view", "", "View to start on (menu, counter, editor)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("viewloop-demo %s (commit: %s)\n", version.Version, version.Commit)
	},
}
