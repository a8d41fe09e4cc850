package main

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/phanxgames/canopy/ease"
)

func newCurvesCmd(c *cli) *cobra.Command {
	var (
		list   bool
		width  int
		height int
	)
	cmd := &cobra.Command{
		Use:   "curves [name...]",
		Short: "plot easing curves in the terminal",
		Long: `Plot easing curves over t in [0, 1].

With no names the configured demo ease is plotted. Use --list to see every
registered name.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, name := range ease.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			if len(args) == 0 {
				args = []string{c.cfg.Demo.Ease}
			}
			for _, name := range args {
				graph, err := plotCurve(name, width, height)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, titleStyle.Render(name))
				fmt.Fprintln(out, graph)
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.BoolVar(&list, "list", false, "list easing names")
	f.IntVar(&width, "cols", 60, "plot width in columns")
	f.IntVar(&height, "rows", 12, "plot height in rows")
	return cmd
}

// sampleCurve evaluates fn at n evenly spaced points from 0 to 1 inclusive.
func sampleCurve(fn ease.Func, n int) []float64 {
	if n < 2 {
		n = 2
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = fn(float64(i) / float64(n-1))
	}
	return data
}

// plotCurve renders the named easing function as an ASCII graph.
func plotCurve(name string, width, height int) (string, error) {
	fn, ok := ease.Lookup(name)
	if !ok {
		return "", fmt.Errorf("unknown ease %q (try --list)", name)
	}
	data := sampleCurve(fn, width)
	lo, hi := data[0], data[0]
	for _, v := range data {
		lo, hi = min(lo, v), max(hi, v)
	}
	caption := fmt.Sprintf("%s  min %.2f  max %.2f", strings.ToLower(strings.TrimSpace(name)), lo, hi)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(dimStyle.Render(caption)),
	), nil
}
