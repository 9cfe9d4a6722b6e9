package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/waymark/internal/cli"
)

var buildCmd = &cobra.Command{
	Use:   "build [document]",
	Short: "Assemble a document and print the walkthrough as JSON",
	Long:  `Parses the document, assembles the walkthrough graph, and writes it to stdout as JSON.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		attrFlags, _ := cmd.Flags().GetStringArray("attr")
		debug, _ := cmd.Flags().GetBool("debug")
		pretty, _ := cmd.Flags().GetBool("pretty")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		opts := cli.BuildOptions{
			Path:       resolveDocument(args),
			Pretty:     pretty,
			Attributes: cfg.MergeAttributes(cli.ParseAttrFlags(attrFlags)),
			Debug:      debug,
			Out:        os.Stdout,
		}

		if err := cli.Build(opts); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().Bool("pretty", false, "Indent the JSON output")
}
