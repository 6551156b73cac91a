package cli

import (
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/relab/quorumsim/experiment"
	"github.com/relab/quorumsim/internal/profiling"
	"github.com/relab/quorumsim/logging"
	"github.com/relab/quorumsim/metrics/plotting"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a fault-ratio sweep.",
	Long: `The run command sweeps the fault ratio across a sequence of values. At each
ratio it builds a population with the requested fraction of faulty
participants and runs both protocols over that same population, so the two
algorithms are compared against an identical fault composition.

The results are printed as a table, and can additionally be saved as plots of
throughput and correctness against the fault ratio.

By default the elapsed time of an experiment is the deterministic sum of the
sampled per-vote delays, so results are reproducible for a given seed.
Use '--real-delay' to suspend execution for each sampled delay instead and
measure wall-clock time.`,
	Run: func(cmd *cobra.Command, _ []string) {
		runSweep(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("nodes", 20, "number of participants in each population")
	runCmd.Flags().Int("rounds", 100, "number of consensus rounds per experiment")
	runCmd.Flags().Int("trials", 1, "number of repetitions per fault ratio")
	runCmd.Flags().Float64Slice("ratios", []float64{0.0, 0.1, 0.2, 0.3, 0.4}, "fault ratios to sweep, in reporting order")
	runCmd.Flags().Int64("seed", 0, "random number generator seed (0 seeds from the current time)")
	runCmd.Flags().Bool("real-delay", false, "suspend execution for sampled delays and measure wall-clock time")

	runCmd.Flags().String("throughput-plot", "", "file to save a throughput plot to (disabled by default)")
	runCmd.Flags().String("correctness-plot", "", "file to save a correctness plot to (disabled by default)")

	runCmd.Flags().String("cpu-profile", "", "file to save a cpu profile to")
	runCmd.Flags().String("mem-profile", "", "file to save a memory profile to")
	runCmd.Flags().String("trace", "", "file to save a trace to")
	runCmd.Flags().String("fgprof-profile", "", "file to save an fgprof profile to")
}

func runSweep(cmd *cobra.Command) {
	logger := logging.New("cli")
	flags := cmd.Flags()

	nodes, err := flags.GetInt("nodes")
	checkf("failed to read flag: %v", err)
	rounds, err := flags.GetInt("rounds")
	checkf("failed to read flag: %v", err)
	trials, err := flags.GetInt("trials")
	checkf("failed to read flag: %v", err)
	ratios, err := flags.GetFloat64Slice("ratios")
	checkf("failed to read flag: %v", err)
	seed, err := flags.GetInt64("seed")
	checkf("failed to read flag: %v", err)
	realDelay, err := flags.GetBool("real-delay")
	checkf("failed to read flag: %v", err)
	throughputPlot, err := flags.GetString("throughput-plot")
	checkf("failed to read flag: %v", err)
	correctnessPlot, err := flags.GetString("correctness-plot")
	checkf("failed to read flag: %v", err)

	cpuProfile, err := flags.GetString("cpu-profile")
	checkf("failed to read flag: %v", err)
	memProfile, err := flags.GetString("mem-profile")
	checkf("failed to read flag: %v", err)
	tracePath, err := flags.GetString("trace")
	checkf("failed to read flag: %v", err)
	fgprofProfile, err := flags.GetString("fgprof-profile")
	checkf("failed to read flag: %v", err)

	stopProfilers, err := profiling.StartProfilers(cpuProfile, memProfile, tracePath, fgprofProfile)
	checkf("failed to start profilers: %v", err)

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Infof("sweeping %d ratios with %d nodes, %d rounds, %d trials (seed %d)",
		len(ratios), nodes, rounds, trials, seed)

	sweep := &experiment.Sweep{
		NumNodes:  nodes,
		Rounds:    rounds,
		Trials:    trials,
		Ratios:    ratios,
		RealDelay: realDelay,
	}
	series, err := sweep.Run(rand.New(rand.NewSource(seed)))
	checkf("sweep failed: %v", err)

	checkf("failed to render report: %v", renderReport(series))

	var plotErr error
	if throughputPlot != "" || correctnessPlot != "" {
		p := plotting.NewSweepPlot(series)
		if throughputPlot != "" {
			plotErr = multierr.Append(plotErr, p.PlotThroughput(throughputPlot))
		}
		if correctnessPlot != "" {
			plotErr = multierr.Append(plotErr, p.PlotCorrectRatio(correctnessPlot))
		}
	}
	checkf("failed to save plots: %v", plotErr)

	checkf("failed to stop profilers: %v", stopProfilers())
}

func checkf(format string, args ...any) {
	for _, arg := range args {
		if err, _ := arg.(error); err != nil {
			log.Fatalf(format, args...)
		}
	}
}
