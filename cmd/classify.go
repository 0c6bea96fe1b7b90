package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/G3mha/genetic-programming/internal/eval"
	"github.com/G3mha/genetic-programming/internal/gp"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <score>",
	Short: "Classify a raw tree score using the model's cut points",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("parse score %q: %w", args[0], err)
		}

		// Without an artifact the default cut points still answer the
		// question for index-targeting trees.
		th := eval.DefaultThresholds()
		model, err := gp.LoadModel(resolveModelPath(cmd))
		switch {
		case err == nil:
			th = model.Thresholds
		case errors.Is(err, fs.ErrNotExist):
			fmt.Fprintf(os.Stderr, "no model artifact found; using default cut points %g/%g\n", th.Low, th.High)
		default:
			return fmt.Errorf("load model: %w", err)
		}
		if cmd.Flags().Changed("threshold-low") {
			th.Low, _ = cmd.Flags().GetFloat64("threshold-low")
		}
		if cmd.Flags().Changed("threshold-high") {
			th.High, _ = cmd.Flags().GetFloat64("threshold-high")
		}
		if th.Low >= th.High {
			return fmt.Errorf("threshold low %g must be below high %g", th.Low, th.High)
		}

		fmt.Printf("%g -> %s\n", score, th.Classify(score))
		return nil
	},
}
