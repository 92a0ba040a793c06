package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "subwatch",
	Short: "Subtitle gap monitor for an organized media library",
	Long: `subwatch - subtitle gap monitor for an organized media library

Reads the historical log of original file names, finds where each file
lives in the library today, and downloads the subtitle languages that
are still missing next to it.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.toml", "Path to config file")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("subwatch {{.Version}}\n")
}
