package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/urfave/cli.v1"

	dspsignal "github.com/cwbudde/algo-fixed/dsp/signal"
	"github.com/cwbudde/algo-fixed/cordic"
	"github.com/cwbudde/algo-fixed/fixed"
	"github.com/cwbudde/algo-fixed/fmath"
	"github.com/cwbudde/algo-fixed/measure/accuracy"
	"github.com/cwbudde/algo-fixed/measure/thd"
	timestats "github.com/cwbudde/algo-fixed/stats/time"
)

var (
	accuracyCommand = cli.Command{
		Name:      "accuracy",
		Usage:     "Sweep fmath functions against float64 references",
		ArgsUsage: "[function...]",
		Action:    runAccuracy,
	}
	tablesCommand = cli.Command{
		Name:   "tables",
		Usage:  "Compare the CORDIC tables with values rebuilt from float64",
		Action: runTables,
	}
	thdCommand = cli.Command{
		Name:  "thd",
		Usage: "Measure spectral purity of the fixed-point sine generator",
		Flags: []cli.Flag{
			cli.Float64Flag{Name: "freq", Usage: "tone frequency in Hz"},
			cli.Float64Flag{Name: "rate", Usage: "sample rate in Hz"},
			cli.IntFlag{Name: "length", Usage: "number of samples"},
			cli.StringFlag{Name: "window", Usage: "analysis window name"},
		},
		Action: runTHD,
	}
	evalCommand = cli.Command{
		Name:      "eval",
		Usage:     "Evaluate one function and print value and raw encoding",
		ArgsUsage: "<function> <value> [value]",
		// Negative values must not be parsed as flags.
		SkipArgReorder: true,
		Action:         runEval,
	}
)

func runAccuracy(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}

	names := []string(ctx.Args())
	if len(names) == 0 {
		names = cfg.Accuracy.Functions
	}
	fns, err := resolveFunctions(names)
	if err != nil {
		return err
	}

	sctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("Starting accuracy sweep", "functions", len(fns), "samples", cfg.Accuracy.Samples, "workers", cfg.Accuracy.Workers)
	reports, err := accuracy.SweepAll(sctx, fns, accuracy.NewConfig(
		accuracy.WithSamples(cfg.Accuracy.Samples),
		accuracy.WithWorkers(cfg.Accuracy.Workers),
	))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Function\tRange\tSamples\tMax error\tRMS error\tMean error\tWorst input\n")
	fmt.Fprintf(tw, "--------\t-----\t-------\t---------\t---------\t----------\t-----------\n")
	for i, r := range reports {
		kind := "abs"
		if fns[i].Relative {
			kind = "rel"
		}
		slog.Debug("Sweep finished", "function", r.Name, "max", r.MaxAbsError)
		fmt.Fprintf(tw, "%s\t[%g, %g]\t%d\t%.3e %s\t%.3e\t%+.3e\t%.6f\n",
			r.Name, fns[i].Lo, fns[i].Hi, r.Samples, r.MaxAbsError, kind, r.RMSError, r.MeanError, r.WorstInput)
	}
	return tw.Flush()
}

func resolveFunctions(names []string) ([]accuracy.Function, error) {
	if len(names) == 0 {
		return accuracy.Standard(), nil
	}
	fns := make([]accuracy.Function, 0, len(names))
	for _, name := range names {
		fn, ok := accuracy.Lookup(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("unknown function %q", name)
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

func runTables(ctx *cli.Context) error {
	built := cordic.BuildTables()
	atan := cordic.AtanTable()
	atanh := cordic.AtanhTable()

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "i\tatan\tbuilt\tdelta\tatanh\tbuilt\tdelta\t\n")
	for i := range cordic.Iterations {
		fmt.Fprintf(tw, "%d\t%#x\t%#x\t%d\t%#x\t%#x\t%d\t\n",
			i, atan[i], built.Atan[i], built.Atan[i]-atan[i],
			atanh[i], built.Atanh[i], built.Atanh[i]-atanh[i])
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(ctx.App.Writer, "gain %#x built %#x delta %d\n",
		cordic.Gain(), built.Gain, built.Gain-cordic.Gain())
	fmt.Fprintf(ctx.App.Writer, "hyperbolic gain %#x built %#x delta %d\n",
		cordic.HyperbolicGain(), built.HyperbolicGain, built.HyperbolicGain-cordic.HyperbolicGain())
	return nil
}

func runTHD(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	tc := cfg.THD
	if ctx.IsSet("freq") {
		tc.Frequency = ctx.Float64("freq")
	}
	if ctx.IsSet("rate") {
		tc.SampleRate = ctx.Float64("rate")
	}
	if ctx.IsSet("length") {
		tc.Samples = ctx.Int("length")
	}
	if ctx.IsSet("window") {
		tc.Window = ctx.String("window")
	}

	winType, ok := lookupWindow(tc.Window)
	if !ok {
		return fmt.Errorf("unknown window %q", tc.Window)
	}

	g := dspsignal.NewGenerator(dspsignal.WithSampleRate(tc.SampleRate))
	x, err := g.Sine(tc.Frequency, tc.Samples)
	if err != nil {
		return err
	}
	slog.Info("Generated tone", "freq", tc.Frequency, "rate", tc.SampleRate, "samples", len(x))

	res, err := thd.Analyze(x, thd.Config{
		SampleRate: tc.SampleRate,
		Frequency:  tc.Frequency,
		Window:     winType,
	})
	if err != nil {
		return err
	}
	resid, err := thd.Residual(x, tc.Frequency, tc.SampleRate, g.Config().Amplitude)
	if err != nil {
		return err
	}
	slog.Debug("Analyzed tone", "bin", res.Bin, "harmonics", len(res.Harmonics))

	st := timestats.Calculate(x)

	w := ctx.App.Writer
	fmt.Fprintf(w, "RMS          %v (%.2f dB)\n", st.RMS, st.RMS_dB.Float64())
	fmt.Fprintf(w, "peak         %v\n", st.Peak)
	fmt.Fprintf(w, "crest        %v\n", st.CrestFactor)
	fmt.Fprintf(w, "fundamental  %.3f Hz (level %.9f)\n", res.Frequency, res.Level)
	fmt.Fprintf(w, "THD          %.2f dB\n", res.THD_dB)
	fmt.Fprintf(w, "THD+N        %.2f dB\n", res.THDN_dB)
	fmt.Fprintf(w, "SINAD        %.2f dB\n", res.SINAD)
	fmt.Fprintf(w, "max error    %.3e\n", resid.MaxAbs)
	fmt.Fprintf(w, "error RMS    %.2f dB\n", resid.DB)
	return nil
}

type (
	unaryFunc  func(fixed.Fixed) fixed.Fixed
	binaryFunc func(fixed.Fixed, fixed.Fixed) fixed.Fixed
)

var extraUnary = map[string]unaryFunc{
	"floor": fmath.Floor,
	"ceil":  fmath.Ceil,
	"round": fmath.Round,
	"abs":   fmath.Abs,
	"sign":  fmath.Sign,
}

var binary = map[string]binaryFunc{
	"atan2": fmath.Atan2,
	"pow":   fmath.Pow,
	"min":   fmath.Min,
	"max":   fmath.Max,
	"div":   fixed.Fixed.Div,
	"mul":   fixed.Fixed.Mul,
}

func runEval(ctx *cli.Context) error {
	args := ctx.Args()
	if len(args) < 2 {
		return fmt.Errorf("usage: eval <function> <value> [value]")
	}
	name := strings.ToLower(args.First())

	vals := make([]fixed.Fixed, 0, 2)
	for _, s := range args.Tail() {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", s, err)
		}
		vals = append(vals, fixed.FromFloat(v))
	}

	var r fixed.Fixed
	switch {
	case binary[name] != nil:
		if len(vals) != 2 {
			return fmt.Errorf("%s takes two values", name)
		}
		if name == "div" && vals[1] == 0 {
			return fixed.ErrDivisionByZero
		}
		r = binary[name](vals[0], vals[1])
	default:
		f, err := lookupUnary(name)
		if err != nil {
			return err
		}
		if len(vals) != 1 {
			return fmt.Errorf("%s takes one value", name)
		}
		r = f(vals[0])
	}

	fmt.Fprintf(ctx.App.Writer, "%s(%s) = %s (raw 0x%016x)\n", name, joinFixed(vals), r, uint64(r.Raw()))
	return nil
}

func lookupUnary(name string) (unaryFunc, error) {
	if fn, ok := accuracy.Lookup(name); ok {
		return fn.Eval, nil
	}
	if f, ok := extraUnary[name]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown function %q", name)
}

func joinFixed(vals []fixed.Fixed) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
