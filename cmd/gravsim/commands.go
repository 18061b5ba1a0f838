package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/config"
	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/gui"
	"github.com/san-kum/gravsim/internal/metrics"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/san-kum/gravsim/internal/storage"
	"github.com/san-kum/gravsim/internal/viz"
)

func runSimulation(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadScenario(cmd, args, opts.scenario)
	if err != nil {
		return err
	}
	b, err := cfg.State()
	if err != nil {
		return err
	}
	stepper, err := dynamo.LookupStepper(cfg.Stepper)
	if err != nil {
		return err
	}

	st := storage.New(opts.dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim := dynamo.New(stepper)
	for _, m := range metrics.All() {
		sim.AddMetric(m)
	}
	if opts.every > 0 {
		sim.AddObserver(&frameLogger{w: cmd.ErrOrStderr(), every: opts.every})
	}

	out := cmd.OutOrStdout()
	if !opts.json {
		fmt.Fprintf(out, "running %s (%d bodies, %s)...\n", cfg.Name, b.N(), cfg.Stepper)
	}

	result, err := sim.Run(cmd.Context(), b, cfg.Run())
	if err != nil {
		return err
	}

	meta := storage.RunMetadata{
		Name:        cfg.Name,
		Stepper:     cfg.Stepper,
		Gravity:     cfg.Gravity,
		Dt:          cfg.Dt,
		Substeps:    cfg.Substeps,
		Frames:      result.FramesTaken,
		Speed:       cfg.Speed,
		Bodies:      b.N(),
		EnergyDrift: result.EnergyDrift,
		Metrics:     result.Metrics,
	}
	runID, err := st.Save(meta, result.Frames)
	if err != nil {
		return err
	}
	meta.ID = runID

	if opts.json {
		return storage.ExportJSON(out, meta, result.Frames)
	}

	fmt.Fprintf(out, "completed in %v\n", result.Elapsed)
	fmt.Fprintf(out, "run id: %s\n", runID)
	fmt.Fprintf(out, "frames: %d\n", result.FramesTaken)
	for _, e := range result.Errors {
		fmt.Fprintf(out, "stopped: %v\n", e)
	}
	fmt.Fprintln(out, "\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %s: %.6g\n", name, result.Metrics[name])
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadScenario(cmd, args, opts.scenario)
	if err != nil {
		return err
	}
	b, err := cfg.State()
	if err != nil {
		return err
	}
	return viz.Run(cfg.Name, b, cfg.Density)
}

func runGUI(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadScenario(cmd, args, opts.scenario)
	if err != nil {
		return err
	}
	b, err := cfg.State()
	if err != nil {
		return err
	}
	return gui.Run(cfg.Name, b, cfg.Density)
}

// traceBodies writes one CSV record per body per frame until cfg.Frames
// frames have been written or a body escapes.
func traceBodies(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadScenario(cmd, args, opts.scenario)
	if err != nil {
		return err
	}
	b, err := cfg.State()
	if err != nil {
		return err
	}
	stepper, err := dynamo.LookupStepper(cfg.Stepper)
	if err != nil {
		return err
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{"time", "body", "x", "y", "vx", "vy", "m"}); err != nil {
		return err
	}

	frames := 0
	err = dynamo.New(stepper).RunWithCallback(cmd.Context(), b, cfg.Run(), func(s physics.Bodies, t float64) bool {
		for i := 0; i < s.N(); i++ {
			record := []string{formatFloat(t), strconv.Itoa(i)}
			for _, p := range s.Body(i).Params() {
				record = append(record, formatFloat(p))
			}
			if w.Write(record) != nil {
				return false
			}
		}
		if opts.escape > 0 {
			if i, r := farthest(s); r > opts.escape {
				fmt.Fprintf(cmd.ErrOrStderr(), "body %d escaped to r=%.4g at t=%.4f\n", i, r, t)
				return false
			}
		}
		frames++
		return frames <= cfg.Frames
	})
	w.Flush()
	if err != nil {
		return err
	}
	return w.Error()
}

// farthest finds the body farthest from the centroid.
func farthest(b physics.Bodies) (int, float64) {
	cx, cy := b.CenterOfMass()
	idx, r := 0, 0.0
	for i := range b.X {
		if d := math.Hypot(b.X[i]-cx, b.Y[i]-cy); d > r {
			idx, r = i, d
		}
	}
	return idx, r
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// frameLogger prints the diagnostics line of every nth frame.
type frameLogger struct {
	w     io.Writer
	every int
	n     int
}

func (l *frameLogger) OnFrame(b physics.Bodies, t float64) {
	if l.n%l.every == 0 {
		fmt.Fprintf(l.w, "t=%.4f\t%s\n", t, viz.Diagnostics(b))
	}
	l.n++
}

func showConfiguration(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadScenario(cmd, args, opts.scenario)
	if err != nil {
		return err
	}
	b, err := cfg.State()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.Title.Render(cfg.Name))

	fx, fy := physics.Gravity(b)
	radii := physics.Radii(b, cfg.Density)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tX\tY\tVX\tVY\tM\tR\tFX\tFY")
	for i := 0; i < b.N(); i++ {
		fmt.Fprintf(w, "%d\t%+.3f\t%+.3f\t%+.3f\t%+.3f\t%+.3f\t%.3f\t%+.3g\t%+.3g\n",
			i, b.X[i], b.Y[i], b.VX[i], b.VY[i], b.M[i], radii[i], fx[i], fy[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, viz.Separator(60))
	fmt.Fprintf(out, "total configuration energy: %g\n", physics.Energy(b))
	px, py := b.Momentum()
	fmt.Fprintf(out, "total momentum: (%+.6g, %+.6g)\n", px, py)
	fmt.Fprintln(out, viz.Diagnostics(b))
	return nil
}

func compareSteppers(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadScenario(cmd, args, opts.scenario)
	if err != nil {
		return err
	}
	b, err := cfg.State()
	if err != nil {
		return err
	}

	names := opts.steppers
	if len(names) == 0 {
		names = dynamo.Steppers()
	}

	ens := dynamo.NewEnsemble(metrics.All)
	ens.SetParallel(opts.parallel)
	for _, name := range names {
		stepper, err := dynamo.LookupStepper(name)
		if err != nil {
			return err
		}
		ens.Add(dynamo.Run{Name: name, Stepper: stepper, Bodies: b})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "comparing steppers for %s (dt=%g, substeps=%d, frames=%d)\n\n",
		cfg.Name, cfg.Dt, cfg.Substeps, cfg.Frames)

	results, err := ens.Run(cmd.Context(), cfg.Run())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPPER\tENERGY DRIFT\tL DRIFT\tCENTROID SHIFT\tFRAMES\tTIME")
	for _, name := range names {
		r := results[name]
		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%.3e\t%d\t%v\n",
			name,
			r.Metrics["energy_drift"],
			r.Metrics["angular_momentum_drift"],
			r.Metrics["centroid_shift"],
			r.FramesTaken,
			r.Elapsed.Round(time.Microsecond),
		)
	}
	return w.Flush()
}

func benchSuperstep(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadScenario(cmd, args, opts.scenario)
	if err != nil {
		return err
	}
	b, err := cfg.State()
	if err != nil {
		return err
	}

	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(opts.dataDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(opts.dataDir), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile %q (want cpu or mem)", opts.profile)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "benchmarking %s (%d bodies, %d frames of dt=%g)\n\n", cfg.Name, b.N(), cfg.Frames, cfg.Dt)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SUBSTEPS\tFRAMES\tTIME\tFRAMES/SEC\tENERGY DRIFT")

	for _, n := range []int{1, 5, 10, 20, 50} {
		run := cfg.Run()
		run.Substeps = n

		result, err := dynamo.New(physics.Superstep).Run(cmd.Context(), b, run)
		if err != nil {
			return err
		}

		framesPerSec := float64(result.FramesTaken) / result.Elapsed.Seconds()
		fmt.Fprintf(w, "%d\t%d\t%v\t%.0f\t%.3e\n",
			n, result.FramesTaken, result.Elapsed.Round(time.Microsecond), framesPerSec, result.EnergyDrift)
	}

	if err := w.Flush(); err != nil {
		return err
	}
	if opts.profile != "" {
		fmt.Fprintf(out, "\nprofile written to %s\n", filepath.Clean(opts.dataDir))
	}
	return nil
}

func listRuns(cmd *cobra.Command, opts *options) error {
	st := storage.New(opts.dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tBODIES\tFRAMES\tDT\tSTEPPER\tDRIFT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.4f\t%s\t%.2e\n",
			run.ID,
			run.Name,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Bodies,
			run.Frames,
			run.Dt,
			run.Stepper,
			run.EnergyDrift,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, runID string, opts *options) error {
	st := storage.New(opts.dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	frames, err := st.LoadDiagnostics(runID)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("no data to plot")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "bodies: %d, stepper: %s\n", meta.Bodies, meta.Stepper)
	fmt.Fprintf(out, "samples: %d\n", len(frames))

	energies := make([]float64, len(frames))
	for i, f := range frames {
		energies[i] = f.Energy
	}
	fmt.Fprintf(out, "energy: %s\n\n", viz.Sparkline(energies, 60))

	e0 := frames[0].Energy
	series := []struct {
		caption string
		value   func(dynamo.Frame) float64
	}{
		{"relative energy error", func(f dynamo.Frame) float64 {
			if e0 == 0 {
				return f.Energy
			}
			return (f.Energy - e0) / math.Abs(e0)
		}},
		{"angular momentum", func(f dynamo.Frame) float64 { return f.AngularMomentum }},
		{"centroid x", func(f dynamo.Frame) float64 { return f.CenterX }},
		{"centroid y", func(f dynamo.Frame) float64 { return f.CenterY }},
	}

	for _, s := range series {
		data := make([]float64, len(frames))
		for i, f := range frames {
			data[i] = s.value(f)
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(s.caption),
		)
		fmt.Fprintln(out, graph)
		fmt.Fprintln(out)
	}
	return nil
}

func listPresets(cmd *cobra.Command) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tBODIES\tG\tDT\tFRAMES")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%d\t%g\t%g\t%d\n", name, len(p.Bodies), p.Gravity, p.Dt, p.Frames)
	}
	return w.Flush()
}
