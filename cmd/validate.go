package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lunarlogistics/lunarsim/model"
	"github.com/lunarlogistics/lunarsim/validate"
)

var (
	outputDir  string   // Directory receiving augmented datasets
	writeXLSX  bool     // Also write .xlsx workbooks
	workers    int      // Parallel row evaluators
	onlyModels []string // Restrict the run to these model names
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Compare model predictions with reference datasets",
	Long: "Runs every validation task from defaults.yaml: predicts each row, appends " +
		"Predicted and Error (%) columns, writes the dataset to the output directory " +
		"and prints the mean percentage error.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		tasks, err := selectTasks(cfg.Validation.Tasks, onlyModels)
		if err != nil {
			return err
		}
		opts := validate.Options{
			OutputDir: cfg.Validation.OutputDir,
			XLSX:      writeXLSX,
			Workers:   workers,
			RunID:     uuid.NewString(),
		}
		if cmd.Flags().Changed("output-dir") || opts.OutputDir == "" {
			opts.OutputDir = outputDir
		}
		logrus.WithField("run_id", opts.RunID).Infof("validating %d datasets into %s", len(tasks), opts.OutputDir)

		out := cmd.OutOrStdout()
		for _, t := range tasks {
			task, err := buildTask(t, cfg.Calibration)
			if err != nil {
				return err
			}
			rep, err := validate.Run(cmd.Context(), t.File, task, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Validation results saved to %s\n", rep.Output)
			fmt.Fprintf(out, "%s\n", rep)
			fmt.Fprintf(out, "  %s\n\n", rep.Detail())
		}
		return nil
	},
}

func buildTask(t ValidationTask, cal model.Calibration) (validate.Task, error) {
	p, err := model.Lookup(t.Model)
	if err != nil {
		return validate.Task{}, err
	}
	return validate.Task{
		Model:        p.Name,
		InputColumns: t.Inputs,
		OutputColumn: t.Output,
		Predict:      p.Bind(cal),
	}, nil
}

// selectTasks filters tasks to the named models; empty only keeps all.
func selectTasks(tasks []ValidationTask, only []string) ([]ValidationTask, error) {
	if len(only) == 0 {
		return tasks, nil
	}
	var selected []ValidationTask
	for _, name := range only {
		found := false
		for _, t := range tasks {
			if t.Model == name {
				selected = append(selected, t)
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("no validation task for model %q", name)
		}
	}
	return selected, nil
}

func init() {
	validateCmd.Flags().StringVar(&outputDir, "output-dir", "val", "Directory for augmented datasets (overrides defaults.yaml)")
	validateCmd.Flags().BoolVar(&writeXLSX, "xlsx", false, "Also write an .xlsx workbook per dataset")
	validateCmd.Flags().IntVar(&workers, "workers", 0, "Parallel row evaluators (0 = GOMAXPROCS)")
	validateCmd.Flags().StringSliceVar(&onlyModels, "model", nil, "Only validate these models (repeatable)")
	rootCmd.AddCommand(validateCmd)
}
