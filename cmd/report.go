package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/G3mha/genetic-programming/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the classification report without opening the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadRun(cmd)
		if err != nil {
			return err
		}
		fmt.Print(report.RenderText(opts.Report))
		fmt.Println()
		fmt.Print(report.RenderConfusionText(opts.Report.Confusion))
		return nil
	},
}
