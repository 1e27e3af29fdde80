package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"gridview/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		sessionPath string
		debug       bool
	)

	cmd := &cobra.Command{
		Use:   "gridview",
		Short: "Pan, zoom and rotate over an adaptive world grid",
		Long: `gridview renders a level-of-detail grid under a movable, zoomable and
rotatable camera into a fixed internal resolution, letterboxed onto a
resizable window.

Configuration is read from a YAML (.yaml, .yml) or Starlark (.star) file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(os.Stderr)
			if debug {
				log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
			} else {
				log.SetFlags(log.LstdFlags)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, sessionPath, cmd.Flags().Changed("session"))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (.yaml, .yml or .star)")
	cmd.Flags().StringVarP(&sessionPath, "session", "s", "", "session file (default from config, empty string disables)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging with source locations")
	return cmd
}

func run(configPath, sessionPath string, sessionSet bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if !sessionSet {
		sessionPath = cfg.SessionFile
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	game, err := NewGame(cfg, sessionPath)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
