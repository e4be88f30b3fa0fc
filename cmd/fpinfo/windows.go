package main

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/urfave/cli.v1"

	"github.com/cwbudde/algo-fixed/dsp/window"
)

type windowEntry struct {
	name string
	typ  window.Type
}

var registry = []windowEntry{
	{"rectangular", window.TypeRectangular},
	{"hann", window.TypeHann},
	{"hamming", window.TypeHamming},
	{"blackman", window.TypeBlackman},
	{"blackman-harris-4t", window.TypeBlackmanHarris4Term},
	{"flat-top", window.TypeFlatTop},
}

var windowsCommand = cli.Command{
	Name:      "windows",
	Usage:     "Print spectral properties of the fixed-point windows",
	ArgsUsage: "[window-name...]",
	Flags: []cli.Flag{
		cli.IntFlag{Name: "size", Usage: "window length in samples", Value: 1024},
		cli.BoolFlag{Name: "periodic", Usage: "use periodic (FFT) form instead of symmetric"},
		cli.BoolFlag{Name: "list", Usage: "list available window names"},
	},
	Action: runWindows,
}

func lookupWindow(name string) (window.Type, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, e := range registry {
		if e.name == name {
			return e.typ, true
		}
	}
	return 0, false
}

func runWindows(ctx *cli.Context) error {
	w := ctx.App.Writer
	if ctx.Bool("list") {
		names := make([]string, len(registry))
		for i, e := range registry {
			names[i] = e.name
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintln(w, n)
		}
		return nil
	}

	entries := registry
	if ctx.NArg() > 0 {
		entries = nil
		for _, name := range ctx.Args() {
			typ, ok := lookupWindow(name)
			if !ok {
				return fmt.Errorf("unknown window %q (use --list to see available)", name)
			}
			entries = append(entries, windowEntry{strings.ToLower(name), typ})
		}
	}

	var opts []window.Option
	if ctx.Bool("periodic") {
		opts = append(opts, window.WithPeriodic())
	}
	size := ctx.Int("size")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tNominal ENBW\tSidelobe [dB]\n")
	fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t------------\t-------------\n")
	for _, e := range entries {
		coeffs := window.Float64(e.typ, size, opts...)
		cg, err := window.CoherentGain(coeffs)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		enbw, err := window.EquivalentNoiseBandwidth(coeffs)
		if err != nil {
			return fmt.Errorf("%s: %w", e.name, err)
		}
		info := window.Info(e.typ)
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.2f\t%.1f\n", e.name, size, cg, enbw, info.ENBW, info.HighestSidelobe)
	}
	return tw.Flush()
}
