package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lunarlogistics/lunarsim/sim"
	"github.com/lunarlogistics/lunarsim/sim/trace"
)

var (
	seed int64 // Master seed for stochastic simulations

	arrivalRate       float64 // items or shipments per day
	powerAvailability float64 // fraction of the day with adequate power
	sensorAccuracy    float64 // fraction of items correctly identified
	riskThreshold     float64 // operational factor below which a mission is flagged

	processingTime   float64 // base hours per shipment
	delayProbability float64 // chance a shipment takes twice as long
	cargoWindow      float64 // hours

	numRovers    int     // independent rover agents
	roverSpeed   float64 // m/s
	taskDistance float64 // round-trip meters
	roverWindow  float64 // seconds

	mtbf        float64 // hours
	mttr        float64 // hours
	powerWindow float64 // hours
	powerTrace  bool    // print a transition summary
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one logistics simulation",
}

var simulateThroughputCmd = &cobra.Command{
	Use:   "throughput",
	Short: "Effective throughput and mission risk flag",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tp := cfg.Simulation.Throughput
		threshold := cfg.Simulation.RiskThreshold
		setIfChanged(cmd, "arrival-rate", &tp.ArrivalRate, arrivalRate)
		setIfChanged(cmd, "power-availability", &tp.PowerAvailability, powerAvailability)
		setIfChanged(cmd, "sensor-accuracy", &tp.SensorAccuracy, sensorAccuracy)
		setIfChanged(cmd, "risk-threshold", &threshold, riskThreshold)

		throughput, err := sim.EffectiveThroughput(tp.ArrivalRate, tp.PowerAvailability, tp.SensorAccuracy)
		if err != nil {
			return err
		}
		risky, err := sim.MissionRisk(tp.PowerAvailability, tp.SensorAccuracy, threshold)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Effective Throughput (items/day): %.4f\n", throughput)
		fmt.Fprintf(out, "Mission Risk (operational factor < %.2f): %t\n", threshold, risky)
		return nil
	},
}

var simulateCargoCmd = &cobra.Command{
	Use:   "cargo",
	Short: "Discrete-event cargo flow over a window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cc := cargoConfig(cmd, cfg)
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seedFor(cmd, cfg)))
		res, err := sim.SimulateCargoFlow(cc, rng.ForSubsystem(sim.SubsystemCargo))
		if err != nil {
			return err
		}
		logrus.Infof("cargo: %d arrived, %d delayed, busy %.2fh", res.Arrived, res.Delayed, res.BusyTime)
		fmt.Fprintf(cmd.OutOrStdout(), "Shipments processed in %g hours (DES): %d\n", cc.SimulationTime, res.Processed)
		return nil
	},
}

var simulateRoverCmd = &cobra.Command{
	Use:   "rover",
	Short: "Rover task completion (agent-based, deterministic)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rc := cfg.Simulation.Rover
		if cmd.Flags().Changed("rovers") {
			rc.NumRovers = numRovers
		}
		setIfChanged(cmd, "speed", &rc.RoverSpeed, roverSpeed)
		setIfChanged(cmd, "distance", &rc.TaskDistance, taskDistance)
		setIfChanged(cmd, "window", &rc.SimulationTime, roverWindow)

		res, err := sim.SimulateRoverTasks(rc)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rover tasks completed in %g seconds (ABM): %d\n", rc.SimulationTime, res.TotalTasks)
		return nil
	},
}

var simulatePowerCmd = &cobra.Command{
	Use:   "power",
	Short: "Power availability via a two-state Markov chain",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		pc := powerConfig(cmd, cfg)
		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(seedFor(cmd, cfg)))

		var pt *trace.PowerTrace
		if powerTrace {
			pt = trace.NewPowerTrace(pc.SimulationTime)
		}
		res, err := sim.SimulatePowerAvailability(pc, rng.ForSubsystem(sim.SubsystemPower), pt)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Simulated Power Availability over %g hours: %.4f\n", pc.SimulationTime, res.Availability)
		if pt != nil {
			s := trace.Summarize(pt)
			fmt.Fprintf(out, "Failures: %d, mean uptime %.2fh, mean repair %.2fh, longest repair %.2fh\n",
				s.Failures, s.MeanUptime, s.MeanRepairTime, s.LongestRepairTime)
		}
		return nil
	},
}

func cargoConfig(cmd *cobra.Command, cfg Config) sim.CargoFlowConfig {
	cc := cfg.Simulation.Cargo
	setIfChanged(cmd, "arrival-rate", &cc.ArrivalRate, arrivalRate)
	setIfChanged(cmd, "processing-time", &cc.ProcessingTime, processingTime)
	setIfChanged(cmd, "delay-probability", &cc.DelayProbability, delayProbability)
	setIfChanged(cmd, "window", &cc.SimulationTime, cargoWindow)
	return cc
}

func powerConfig(cmd *cobra.Command, cfg Config) sim.PowerConfig {
	pc := cfg.Simulation.Power
	setIfChanged(cmd, "mtbf", &pc.MTBF, mtbf)
	setIfChanged(cmd, "mttr", &pc.MTTR, mttr)
	setIfChanged(cmd, "window", &pc.SimulationTime, powerWindow)
	return pc
}

// setIfChanged applies a flag value only when the user set it, so defaults.yaml
// values are not overwritten by flag defaults.
func setIfChanged(cmd *cobra.Command, flag string, dst *float64, v float64) {
	if cmd.Flags().Changed(flag) {
		*dst = v
	}
}

func seedFor(cmd *cobra.Command, cfg Config) int64 {
	if cmd.Flags().Changed("seed") {
		return seed
	}
	return cfg.Simulation.Seed
}

func init() {
	def := DefaultConfig().Simulation

	simulateThroughputCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", def.Throughput.ArrivalRate, "Items arriving per day")
	simulateThroughputCmd.Flags().Float64Var(&powerAvailability, "power-availability", def.Throughput.PowerAvailability, "Fraction of the day with adequate power (0..1)")
	simulateThroughputCmd.Flags().Float64Var(&sensorAccuracy, "sensor-accuracy", def.Throughput.SensorAccuracy, "Fraction of items correctly identified (0..1)")
	simulateThroughputCmd.Flags().Float64Var(&riskThreshold, "risk-threshold", def.RiskThreshold, "Operational factor below which risk is flagged")

	addCargoFlags(simulateCargoCmd)

	simulateRoverCmd.Flags().IntVar(&numRovers, "rovers", def.Rover.NumRovers, "Number of rovers")
	simulateRoverCmd.Flags().Float64Var(&roverSpeed, "speed", def.Rover.RoverSpeed, "Rover speed (m/s)")
	simulateRoverCmd.Flags().Float64Var(&taskDistance, "distance", def.Rover.TaskDistance, "Round-trip distance per task (m)")
	simulateRoverCmd.Flags().Float64Var(&roverWindow, "window", def.Rover.SimulationTime, "Simulation time (s)")

	addPowerFlags(simulatePowerCmd)
	simulatePowerCmd.Flags().BoolVar(&powerTrace, "trace", false, "Record transitions and print a summary")

	simulateCmd.PersistentFlags().Int64Var(&seed, "seed", def.Seed, "Seed for stochastic simulations")
	simulateCmd.AddCommand(simulateThroughputCmd, simulateCargoCmd, simulateRoverCmd, simulatePowerCmd)
	rootCmd.AddCommand(simulateCmd)
}

func addCargoFlags(c *cobra.Command) {
	def := DefaultConfig().Simulation.Cargo
	c.Flags().Float64Var(&arrivalRate, "arrival-rate", def.ArrivalRate, "Shipments per day")
	c.Flags().Float64Var(&processingTime, "processing-time", def.ProcessingTime, "Base processing time per shipment (h)")
	c.Flags().Float64Var(&delayProbability, "delay-probability", def.DelayProbability, "Chance a shipment's processing time doubles")
	c.Flags().Float64Var(&cargoWindow, "window", def.SimulationTime, "Simulation time (h)")
}

func addPowerFlags(c *cobra.Command) {
	def := DefaultConfig().Simulation.Power
	c.Flags().Float64Var(&mtbf, "mtbf", def.MTBF, "Mean time between failures (h)")
	c.Flags().Float64Var(&mttr, "mttr", def.MTTR, "Mean time to repair (h)")
	c.Flags().Float64Var(&powerWindow, "window", def.SimulationTime, "Simulation horizon (h)")
}
