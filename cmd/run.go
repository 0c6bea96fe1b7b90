package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/G3mha/genetic-programming/internal/app"
	"github.com/G3mha/genetic-programming/internal/display"
	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/gp"
	"github.com/G3mha/genetic-programming/internal/iris"
	"github.com/G3mha/genetic-programming/internal/report"
	"github.com/G3mha/genetic-programming/internal/screens/home"
)

// loadRun reads the dataset and the model artifact, evaluates every record,
// and builds the report.
func loadRun(cmd *cobra.Command) (home.Options, error) {
	dataPath := resolveDataPath(cmd)
	modelPath := resolveModelPath(cmd)

	records, err := iris.Load(dataPath)
	if err != nil {
		return home.Options{}, fmt.Errorf("load dataset: %w", err)
	}
	logrus.WithFields(logrus.Fields{"path": dataPath, "records": len(records)}).Debug("dataset loaded")

	model, err := gp.LoadModel(modelPath)
	if err != nil {
		return home.Options{}, fmt.Errorf("load model: %w", err)
	}
	logrus.WithFields(logrus.Fields{"id": model.ID, "expr": model.Expr()}).Debug("model loaded")

	// The artifact's cut points apply unless overridden on the command line.
	th := model.Thresholds
	if cmd.Flags().Changed("threshold-low") {
		th.Low, _ = cmd.Flags().GetFloat64("threshold-low")
	}
	if cmd.Flags().Changed("threshold-high") {
		th.High, _ = cmd.Flags().GetFloat64("threshold-high")
	}
	if th.Low >= th.High {
		return home.Options{}, fmt.Errorf("threshold low %g must be below high %g", th.Low, th.High)
	}

	if th != model.Thresholds {
		logrus.Warnf("cut points overridden to %g/%g (artifact has %g/%g)",
			th.Low, th.High, model.Thresholds.Low, model.Thresholds.High)
	}

	table, err := eval.NewTabulator(th).Tabulate(records, gp.NewTreePredictor(model))
	if err != nil {
		return home.Options{}, fmt.Errorf("evaluate dataset: %w", err)
	}
	logrus.WithFields(logrus.Fields{"correct": table.NumCorrect(), "records": len(table)}).Debug("tabulation complete")

	rep := report.BuildReport(table, report.ModelInfo{ID: model.ID, Expr: model.Expr()})

	enc := display.DefaultEncoding()
	if err := enc.Validate(); err != nil {
		return home.Options{}, fmt.Errorf("display encoding: %w", err)
	}

	return home.Options{
		Table:       table,
		Report:      rep,
		Encoding:    enc,
		Thresholds:  th,
		Model:       model,
		DatasetPath: dataPath,
	}, nil
}

// runApp evaluates the run and launches the TUI.
func runApp(cmd *cobra.Command) error {
	opts, err := loadRun(cmd)
	if err != nil {
		return err
	}
	return app.Run(opts)
}
