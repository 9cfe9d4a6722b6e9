package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/waymark"
	"github.com/aretw0/waymark/internal/cli"
	"github.com/aretw0/waymark/internal/logging"
	mcpAdapter "github.com/aretw0/waymark/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp [document]",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Assembles the document and exposes the walkthrough as an MCP server
over stdio, so AI agents (like Claude Desktop) can read tasks, checkpoints,
and resources as structured tools.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		attrFlags, _ := cmd.Flags().GetStringArray("attr")
		debug, _ := cmd.Flags().GetBool("debug")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}

		logger := logging.Default(debug)
		slog.SetDefault(logger)

		path := resolveDocument(args)
		wt, err := waymark.LoadFile(path,
			waymark.WithAttributes(cfg.MergeAttributes(cli.ParseAttrFlags(attrFlags))),
			waymark.WithLogger(logger),
		)
		if err != nil {
			log.Fatalf("Error assembling %s: %v", path, err)
		}

		srv := mcpAdapter.NewServer(wt, waymark.Version)

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		slog.Info("Starting Waymark MCP Server (Stdio)...", "document", path)
		if err := srv.ServeStdio(); err != nil {
			slog.Error("MCP Server execution failed", "err", err)
			os.Exit(1)
		}
		fmt.Println("MCP Server stopped")
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
