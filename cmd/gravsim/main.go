package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/gravsim/internal/physics"
)

// scenarioFlags are shared by every command that builds a simulation.
type scenarioFlags struct {
	gravity    float64
	density    float64
	dt         float64
	substeps   int
	frames     int
	speed      float64
	stepper    string
	configFile string
	preset     string
}

type options struct {
	dataDir  string
	scenario scenarioFlags
	json     bool
	profile  string
	steppers []string
	parallel int
	every    int
	escape   float64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "gravsim",
		Short: "two-dimensional n-body gravity simulator",
		Long: `gravsim integrates point masses under Newtonian gravity with an
energy-corrected RK4 stepper.

Bodies are given as groups of five numbers (x y vx vy m) after "--":

  gravsim live -G 1 -- -1 0 0 -0.5 1  1 0 0 0.5 1`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.dataDir, "data", ".gravsim", "data directory")
	pf.Float64VarP(&opts.scenario.gravity, "gravity", "G", physics.GravitationalConstant, "gravitational constant")
	pf.Float64VarP(&opts.scenario.density, "density", "d", 1, "body density used for drawn radii")
	pf.Float64Var(&opts.scenario.dt, "dt", 0.01, "simulated time per frame")
	pf.IntVar(&opts.scenario.substeps, "substeps", physics.DefaultSubsteps, "RK4 substeps per frame")
	pf.IntVar(&opts.scenario.frames, "frames", 1000, "number of frames")
	pf.Float64Var(&opts.scenario.speed, "speed", 1, "time multiplier")
	pf.StringVar(&opts.scenario.stepper, "stepper", "superstep", "stepper (superstep, rk4, euler)")
	pf.StringVar(&opts.scenario.configFile, "config", "", "config file (yaml or hjson)")
	pf.StringVar(&opts.scenario.preset, "preset", "", "use preset configuration")

	runCmd := &cobra.Command{
		Use:   "run [-- x y vx vy m ...]",
		Short: "run a simulation and store its diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, args, opts)
		},
	}
	runCmd.Flags().BoolVar(&opts.json, "json", false, "print the run as JSON")
	runCmd.Flags().IntVar(&opts.every, "every", 0, "print diagnostics to stderr every n frames")

	liveCmd := &cobra.Command{
		Use:   "live [-- x y vx vy m ...]",
		Short: "animate a simulation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args, opts)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui [-- x y vx vy m ...]",
		Short: "animate a simulation in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, args, opts)
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace [-- x y vx vy m ...]",
		Short: "stream every body of every frame as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return traceBodies(cmd, args, opts)
		},
	}
	traceCmd.Flags().Float64Var(&opts.escape, "escape", 0, "stop once a body is this far from the centroid (0 disables)")

	showCmd := &cobra.Command{
		Use:   "show [-- x y vx vy m ...]",
		Short: "print bodies, forces and total energy",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, args, opts)
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare [-- x y vx vy m ...]",
		Short: "run the same bodies with several steppers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return compareSteppers(cmd, args, opts)
		},
	}
	compareCmd.Flags().StringSliceVar(&opts.steppers, "steppers", nil, "steppers to compare (default all)")
	compareCmd.Flags().IntVar(&opts.parallel, "parallel", 0, "steppers run at once (default GOMAXPROCS)")

	benchCmd := &cobra.Command{
		Use:   "bench [-- x y vx vy m ...]",
		Short: "time supersteps at several substep counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return benchSuperstep(cmd, args, opts)
		},
	}
	benchCmd.Flags().StringVar(&opts.profile, "profile", "", "write a cpu or mem profile to the data directory")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(cmd, opts)
		},
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot stored diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return plotRun(cmd, args[0], opts)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listPresets(cmd)
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, traceCmd, showCmd, compareCmd, benchCmd, listCmd, plotCmd, presetsCmd)
	return rootCmd
}
