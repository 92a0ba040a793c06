package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/subwatch/subwatch/internal/config"
	"github.com/subwatch/subwatch/internal/library"
	"github.com/subwatch/subwatch/pkg/guess"
)

var parseCmd = &cobra.Command{
	Use:   "parse <name>",
	Short: "Show how a raw file name is parsed and where it maps in the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse(args[0])
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(raw string) error {
	d := guess.Parse(raw)

	fmt.Printf("Title:   %q\n", d.Title)
	fmt.Printf("Kind:    %s\n", d.Kind)
	if d.Kind == guess.KindEpisode {
		fmt.Printf("Season:  %d\n", d.Season)
		fmt.Printf("Episode: %d\n", d.Episode)
	}
	if d.Year != 0 {
		fmt.Printf("Year:    %d\n", d.Year)
	}
	if d.Ext != "" {
		fmt.Printf("Ext:     %s\n", d.Ext)
	}

	// The library mapping needs the configured roots and show aliases, so it
	// is only shown when a config file is available.
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil
	}

	shows := library.NewShowNamer(cfg.Library.ShowAliases)
	recon := library.NewReconstructor(library.Config{
		Root:         cfg.Library.Root,
		MovieSubtree: cfg.Library.MovieSubtree,
		TVSubtree:    cfg.Library.TVSubtree,
	}, shows)

	path, err := recon.Reconstruct(raw)
	if err != nil {
		if errors.Is(err, library.ErrNoTitle) {
			fmt.Println("Library: (no usable title)")
			return nil
		}
		return err
	}
	fmt.Printf("Library: %s\n", path)
	return nil
}
