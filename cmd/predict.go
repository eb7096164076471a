package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lunarlogistics/lunarsim/model"
)

var (
	payloadMass        float64 // kg
	robotPower         float64 // W
	terrainComplexity  float64 // dimensionless, 0 = flat
	payloadComplexity  float64 // dimensionless task difficulty
	automationLevel    float64 // 0 = manual, 1 = autonomous
	powerUsage         float64 // W
	environmentalNoise float64 // dimensionless
	pathVariability    float64 // dimensionless
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Evaluate one analytic model",
}

var predictPayloadCmd = &cobra.Command{
	Use:   "payload",
	Short: "Payload maneuverability (travel speed, m/s)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredict(cmd, model.NamePayloadManeuverability, payloadMass, robotPower, terrainComplexity)
	},
}

var predictCrewCmd = &cobra.Command{
	Use:   "crew",
	Short: "Crew time requirement (minutes)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredict(cmd, model.NameCrewTime, payloadComplexity, automationLevel)
	},
}

var predictPositionCmd = &cobra.Command{
	Use:   "position",
	Short: "Position location accuracy (0..1)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPredict(cmd, model.NamePositionAccuracy, powerUsage, environmentalNoise, pathVariability)
	},
}

func runPredict(cmd *cobra.Command, name string, inputs ...float64) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	p, err := model.Lookup(name)
	if err != nil {
		return err
	}
	v, err := p.Predict(cfg.Calibration, inputs)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %.4f %s\n", name, v, p.Unit)
	return err
}

func init() {
	predictPayloadCmd.Flags().Float64Var(&payloadMass, "mass", 500, "Payload mass (kg)")
	predictPayloadCmd.Flags().Float64Var(&robotPower, "power", 2000, "Robot power output (W)")
	predictPayloadCmd.Flags().Float64Var(&terrainComplexity, "terrain", 0.3, "Terrain complexity (0 = flat)")

	predictCrewCmd.Flags().Float64Var(&payloadComplexity, "complexity", 5, "Payload complexity")
	predictCrewCmd.Flags().Float64Var(&automationLevel, "automation", 0.8, "System automation level (0..1)")

	predictPositionCmd.Flags().Float64Var(&powerUsage, "power", 1000, "Power allocated to positional updates (W)")
	predictPositionCmd.Flags().Float64Var(&environmentalNoise, "noise", 0.2, "Environmental noise")
	predictPositionCmd.Flags().Float64Var(&pathVariability, "variability", 0.1, "Robot path variability")

	predictCmd.AddCommand(predictPayloadCmd, predictCrewCmd, predictPositionCmd)
	rootCmd.AddCommand(predictCmd)
}
