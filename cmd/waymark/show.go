package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/waymark/internal/cli"
)

var showCmd = &cobra.Command{
	Use:   "show [document]",
	Short: "Render a walkthrough for the terminal",
	Long: `Renders the document source for the terminal and prints a structural
outline of the assembled walkthrough: tasks, steps, checkpoints, and resources.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		attrFlags, _ := cmd.Flags().GetStringArray("attr")
		debug, _ := cmd.Flags().GetBool("debug")
		plain, _ := cmd.Flags().GetBool("plain")

		cfg, err := cli.LoadConfig(configPath)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		opts := cli.ShowOptions{
			Path:       resolveDocument(args),
			Attributes: cfg.MergeAttributes(cli.ParseAttrFlags(attrFlags)),
			Debug:      debug,
			Plain:      plain,
			Out:        os.Stdout,
		}

		if err := cli.Show(opts); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("plain", false, "Skip terminal styling and print the raw source")
}
