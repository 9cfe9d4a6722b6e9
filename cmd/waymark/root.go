package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "waymark",
	Short: "Waymark assembles typed walkthroughs from annotated documents",
	Long: `Waymark turns an annotated Markdown document into a typed walkthrough:
tasks, numbered steps, verification checkpoints with success/fail messaging,
and side-panel resources, ready to serve as JSON or render in a terminal.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to the waymark.yaml config file")
	rootCmd.PersistentFlags().StringArray("attr", nil, "Parser attribute as key=value (repeatable)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging on stderr")
}

// resolveDocument returns the document path from args, defaulting to
// walkthrough.md in the working directory.
func resolveDocument(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "walkthrough.md"
}
