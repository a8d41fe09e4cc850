package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/app"
	"github.com/phanxgames/canopy/internal/config"
	"github.com/phanxgames/canopy/internal/demo"
)

func newRunCmd(c *cli) *cobra.Command {
	var (
		showFPS bool
		script  string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "open a window and run the demo scene",
		Long: `Run the demo scene in a window.

Left and right arrows spin the scene, space stops it and escape quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("fps") {
				c.cfg.Window.ShowFPS = showFPS
			}
			font, err := c.font()
			if err != nil {
				return err
			}
			rc := runConfig(c.cfg, font)
			if script != "" {
				if rc.Script, err = app.LoadScript(script); err != nil {
					return err
				}
			}
			prog := demo.Program(demo.OptionsFromConfig(c.cfg.Demo))
			return app.Run(rc, prog)
		},
	}
	cmd.Flags().BoolVar(&showFPS, "fps", false, "show the FPS/TPS overlay")
	cmd.Flags().StringVar(&script, "script", "", "JSON input script to play (keys, clicks, waits, screenshots)")
	return cmd
}

// runConfig maps the window section of cfg to app settings.
func runConfig(cfg *config.Config, font *canopy.Typeface) app.RunConfig {
	return app.RunConfig{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		TPS:           cfg.Window.TPS,
		ClearColor:    cfg.ClearColor(),
		Font:          font,
		ShowFPS:       cfg.Window.ShowFPS,
		ScreenshotDir: cfg.Snapshot.Dir,
	}
}
