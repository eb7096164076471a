package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lunarlogistics/lunarsim/internal/testutil"
)

func TestLoadDefaultsConfig_RepoDefaultsMatchBuiltins(t *testing.T) {
	// GIVEN the repository's defaults.yaml
	cfg, err := loadDefaultsConfig(filepath.Join("..", "defaults.yaml"))
	require.NoError(t, err)

	// THEN it matches the built-in configuration exactly
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadDefaultsConfig_UnknownFieldRejected(t *testing.T) {
	// GIVEN a typo in a calibration key
	path := testutil.WriteFile(t, "defaults.yaml", "calibration:\n  payload_scal: 1.05\n")

	_, err := loadDefaultsConfig(path)

	// THEN strict parsing refuses it
	assert.ErrorContains(t, err, "payload_scal")
}

func TestLoadDefaultsConfig_PartialOverrideKeepsDefaults(t *testing.T) {
	path := testutil.WriteFile(t, "defaults.yaml", "calibration:\n  payload_scale: 1.05\nsimulation:\n  power:\n    mttr: 3\n")

	cfg, err := loadDefaultsConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1.05, cfg.Calibration.PayloadScale)
	assert.Equal(t, DefaultConfig().Calibration.PositionNoiseWeight, cfg.Calibration.PositionNoiseWeight)
	assert.Equal(t, 3.0, cfg.Simulation.Power.MTTR)
	assert.Equal(t, 100.0, cfg.Simulation.Power.MTBF)
	assert.Len(t, cfg.Validation.Tasks, 3)
}

func TestLoadDefaultsConfig_InvalidCalibration(t *testing.T) {
	path := testutil.WriteFile(t, "defaults.yaml", "calibration:\n  position_noise_weight: 0\n")
	_, err := loadDefaultsConfig(path)
	assert.ErrorContains(t, err, "position_noise_weight")
}

func TestLoadDefaultsConfig_TaskArityChecked(t *testing.T) {
	path := testutil.WriteFile(t, "defaults.yaml",
		"validation:\n  tasks:\n    - model: crew_time\n      file: a.csv\n      inputs: [x]\n      output: y\n")
	_, err := loadDefaultsConfig(path)
	assert.ErrorContains(t, err, "expected 2 input columns")
}

func TestLoadDefaultsConfig_UnknownModel(t *testing.T) {
	path := testutil.WriteFile(t, "defaults.yaml",
		"validation:\n  tasks:\n    - model: warp\n      file: a.csv\n      inputs: [x]\n      output: y\n")
	_, err := loadDefaultsConfig(path)
	assert.ErrorContains(t, err, "unknown model")
}

func TestLoadDefaultsConfig_MissingFile(t *testing.T) {
	_, err := loadDefaultsConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "reading defaults file")
}
