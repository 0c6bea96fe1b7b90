package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "irisgp",
	Short: "Explore a GP iris classifier",
	Long:  "Irisgp evaluates an evolved genetic-programming classifier against the iris dataset and opens a terminal explorer for the results.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Warnings only by default so report output stays pipeable.
		logrus.SetOutput(os.Stderr)
		logrus.SetLevel(logrus.WarnLevel)
		if v, _ := cmd.Flags().GetBool("verbose"); v {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "", "Path to the iris CSV file (overrides IRISGP_DATA env var)")
	rootCmd.PersistentFlags().String("model", "", "Path to the model artifact (overrides IRISGP_MODEL env var)")
	rootCmd.PersistentFlags().Float64("threshold-low", 0, "Override the model's low cut point")
	rootCmd.PersistentFlags().Float64("threshold-high", 0, "Override the model's high cut point")
	rootCmd.PersistentFlags().Bool("verbose", false, "Debug logging on stderr")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDataPath returns the dataset path using --data (highest priority),
// then IRISGP_DATA, then iris.csv in the working directory.
func resolveDataPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("data"); p != "" {
		return p
	}
	if p := os.Getenv("IRISGP_DATA"); p != "" {
		return p
	}
	return "iris.csv"
}

// resolveModelPath returns the artifact path using --model (highest
// priority), then IRISGP_MODEL, then model.json in the working directory.
func resolveModelPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("model"); p != "" {
		return p
	}
	if p := os.Getenv("IRISGP_MODEL"); p != "" {
		return p
	}
	return "model.json"
}
