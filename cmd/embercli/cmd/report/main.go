package report

import (
	"github.com/spf13/cobra"
)

// ReportCmd represents the report command group.
var ReportCmd = &cobra.Command{
	Use:   "report",
	Short: "Inspect and archive era reports",
	Long:  `Inspect and archive era reports.`,
}

var (
	fileFlag string
	hexFlag  string
	eraFlag  uint64
	dataFlag string
)

func init() {
	ReportCmd.AddCommand(inspectCmd)
	ReportCmd.AddCommand(archiveCmd)
	ReportCmd.AddCommand(showCmd)
}
