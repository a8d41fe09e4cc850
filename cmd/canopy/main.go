// Command canopy runs the canopy demo scene in a window, renders it to PNG
// snapshots headlessly, and plots easing curves in the terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy"
	"github.com/phanxgames/canopy/internal/config"
	"github.com/phanxgames/canopy/internal/logging"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

// cli holds state shared by every subcommand.
type cli struct {
	configPath string
	logLevel   string
	logFormat  string
	width      int
	height     int

	cfg    *config.Config
	closer io.Closer
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:          "canopy",
		Short:        "declarative 2D scenes and animations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.closer != nil {
				c.closer.Close()
			}
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "config file path (yaml)")
	pf.StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&c.logFormat, "log-format", "", "log format: text or json")
	pf.IntVar(&c.width, "width", 0, "canvas width in pixels")
	pf.IntVar(&c.height, "height", 0, "canvas height in pixels")

	root.AddCommand(
		newRunCmd(c),
		newSnapshotCmd(c),
		newCurvesCmd(c),
		newConfigCmd(c),
	)
	return root
}

// setup loads the configuration, applies flag overrides and installs the
// logger.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = c.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = c.logFormat
	}
	if flags.Changed("width") {
		cfg.Window.Width = c.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = c.height
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	c.cfg = cfg
	c.closer = logging.Setup(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	}, os.Stderr)
	canopy.Logger().Debug("configuration loaded", "path", c.configPath, "width", cfg.Window.Width, "height", cfg.Window.Height)
	return nil
}

// font returns the configured typeface, or Go Regular when none is set.
func (c *cli) font() (*canopy.Typeface, error) {
	if c.cfg.Font == "" {
		return canopy.DefaultTypeface(), nil
	}
	return canopy.LoadTypeface(c.cfg.Font)
}
