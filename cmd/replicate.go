package cmd

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/lunarlogistics/lunarsim/sim"
)

var runs int // Number of independent replications

var replicateCmd = &cobra.Command{
	Use:   "replicate",
	Short: "Run a stochastic simulation many times and summarize the spread",
}

var replicatePowerCmd = &cobra.Command{
	Use:   "power",
	Short: "Replicated power availability, compared with mtbf/(mtbf+mttr)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pc := powerConfig(cmd, cfg)
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seedFor(cmd, cfg)))
		summary, _, err := sim.Replicate(runs, rng, func(r *rand.Rand) (float64, error) {
			res, err := sim.SimulatePowerAvailability(pc, r, nil)
			return res.Availability, err
		})
		if err != nil {
			return err
		}
		analytic, err := sim.AnalyticAvailability(pc.MTBF, pc.MTTR)
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), "Power availability", summary)
		fmt.Fprintf(cmd.OutOrStdout(), "Analytic availability: %.4f\n", analytic)
		return nil
	},
}

var replicateCargoCmd = &cobra.Command{
	Use:   "cargo",
	Short: "Replicated cargo flow processed counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cc := cargoConfig(cmd, cfg)
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seedFor(cmd, cfg)))
		summary, _, err := sim.Replicate(runs, rng, func(r *rand.Rand) (float64, error) {
			res, err := sim.SimulateCargoFlow(cc, r)
			return float64(res.Processed), err
		})
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), "Shipments processed", summary)
		return nil
	},
}

func printSummary(w io.Writer, label string, s sim.ReplicationSummary) {
	fmt.Fprintf(w, "%s over %d runs: mean=%.4f stddev=%.4f min=%.4f p50=%.4f p95=%.4f max=%.4f\n",
		label, s.Runs, s.Mean, s.StdDev, s.Min, s.P50, s.P95, s.Max)
}

func init() {
	addPowerFlags(replicatePowerCmd)
	addCargoFlags(replicateCargoCmd)

	replicateCmd.PersistentFlags().IntVar(&runs, "runs", 100, "Number of replications")
	replicateCmd.PersistentFlags().Int64Var(&seed, "seed", DefaultConfig().Simulation.Seed, "Master seed; each replication gets its own stream")
	replicateCmd.AddCommand(replicatePowerCmd, replicateCargoCmd)
	rootCmd.AddCommand(replicateCmd)
}
