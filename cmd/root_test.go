package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args against the repository defaults.yaml.
// Flags are restored to their defaults afterwards so no test sees another's values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(append(args, "--defaults", filepath.Join("..", "defaults.yaml")))
	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of c and its subcommands to its default and
// clears Changed, undoing what a previous Execute parsed.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func TestResolveDefaultsPath_Precedence(t *testing.T) {
	old := defaultsPath
	t.Cleanup(func() { defaultsPath = old })

	// GIVEN only the environment variable
	defaultsPath = ""
	t.Setenv(defaultsEnvVar, "/etc/lunarsim/defaults.yaml")
	assert.Equal(t, "/etc/lunarsim/defaults.yaml", resolveDefaultsPath())

	// WHEN the flag is set THEN it wins
	defaultsPath = "flag.yaml"
	assert.Equal(t, "flag.yaml", resolveDefaultsPath())

	// WHEN neither is set and no ./defaults.yaml exists THEN built-ins are used
	defaultsPath = ""
	t.Setenv(defaultsEnvVar, "")
	if _, err := os.Stat("defaults.yaml"); os.IsNotExist(err) {
		assert.Equal(t, "", resolveDefaultsPath())
	}
}

func TestPredictCommands_CanonicalValues(t *testing.T) {
	out, err := execute(t, "predict", "crew", "--complexity", "5", "--automation", "0.8")
	require.NoError(t, err)
	assert.Contains(t, out, "crew_time: 10.0000 min")

	out, err = execute(t, "predict", "payload", "--mass", "500", "--power", "2000", "--terrain", "0.3")
	require.NoError(t, err)
	assert.Contains(t, out, "payload_maneuverability: 3.0769 m/s")

	out, err = execute(t, "predict", "position", "--power", "1000", "--noise", "0.2", "--variability", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "position_accuracy: 0.9390")
}

func TestPredictCommand_InvalidInputFails(t *testing.T) {
	_, err := execute(t, "predict", "crew", "--complexity", "5", "--automation", "1.5")
	assert.ErrorContains(t, err, "automation_level")
}

func TestSimulateRover_CanonicalValue(t *testing.T) {
	out, err := execute(t, "simulate", "rover", "--rovers", "2", "--speed", "1", "--distance", "100", "--window", "3600")
	require.NoError(t, err)
	assert.Contains(t, out, "Rover tasks completed in 3600 seconds (ABM): 72")
}

func TestSimulatePower_SameSeedSameOutput(t *testing.T) {
	args := []string{"simulate", "power", "--seed", "7", "--mtbf", "50", "--mttr", "2", "--window", "720", "--trace"}
	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Failures:")
}

func TestSimulateThroughput(t *testing.T) {
	out, err := execute(t, "simulate", "throughput", "--arrival-rate", "5", "--power-availability", "0.9",
		"--sensor-accuracy", "0.95", "--risk-threshold", "0.8")
	require.NoError(t, err)
	assert.Contains(t, out, "Effective Throughput (items/day): 4.2750")
	assert.Contains(t, out, "false")
}

func TestReplicatePower_ReportsAnalytic(t *testing.T) {
	out, err := execute(t, "replicate", "power", "--runs", "20", "--seed", "1", "--mtbf", "100", "--mttr", "1", "--window", "720")
	require.NoError(t, err)
	assert.Contains(t, out, "Power availability over 20 runs")
	assert.Contains(t, out, "Analytic availability: 0.9901")
}

func TestExecute_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	// GIVEN a run that overrides the rover count
	_, err := execute(t, "simulate", "rover", "--rovers", "5", "--speed", "1", "--distance", "100", "--window", "3600")
	require.NoError(t, err)
	resetFlags(rootCmd)

	// WHEN the next run sets nothing
	out, err := execute(t, "simulate", "rover")

	// THEN the configured defaults apply again (2 rovers x 36 tasks)
	require.NoError(t, err)
	assert.Contains(t, out, "(ABM): 72")
	assert.False(t, simulateRoverCmd.Flags().Changed("rovers"))
}
