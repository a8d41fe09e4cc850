package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/internal/config"
	"github.com/phanxgames/canopy/internal/demo"
	"github.com/phanxgames/canopy/raster"
)

func newSnapshotCmd(c *cli) *cobra.Command {
	var (
		seconds float64
		dir     string
		label   string
		spin    float64
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render the demo scene to a PNG without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if flags.Changed("time") {
				c.cfg.Snapshot.Time = seconds
			}
			if flags.Changed("dir") {
				c.cfg.Snapshot.Dir = dir
			}
			font, err := c.font()
			if err != nil {
				return err
			}
			m := simulate(c.cfg, spin)
			path, err := raster.SaveSnapshot(demo.View(m), snapshotOptions(c.cfg, font), c.cfg.Snapshot.Dir, label)
			if err != nil {
				return fmt.Errorf("failed to save snapshot: %w", err)
			}
			canopy.Logger().Info("snapshot written", "path", path, "time", c.cfg.Snapshot.Time, "angle", m.Angle)
			fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("wrote"), path)
			return nil
		},
	}
	f := cmd.Flags()
	f.Float64Var(&seconds, "time", 0, "seconds of simulated time before capture")
	f.StringVar(&dir, "dir", "", "output directory")
	f.StringVar(&label, "label", "demo", "file name label")
	f.Float64Var(&spin, "spin", 0, "rotation velocity in degrees per second during the simulation")
	return cmd
}

// simulate runs the demo for the configured snapshot time at the window's
// tick rate.
func simulate(cfg *config.Config, spin float64) demo.Model {
	m := demo.New(demo.OptionsFromConfig(cfg.Demo))
	m.Velocity = spin
	return demo.Advance(m, cfg.Snapshot.Time, cfg.Window.TPS)
}

func snapshotOptions(cfg *config.Config, font *canopy.Typeface) raster.Options {
	return raster.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Background: cfg.ClearColor(),
		Font:       font,
	}
}
