package report

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberledger/ember/cmd/embercli/cmd/utils"
	"github.com/emberledger/ember/core"
	"github.com/emberledger/ember/store"
)

// showCmd prints an archived era report.
// Example:
//
//	embercli report show --era=42 --data=./reports
var showCmd = &cobra.Command{
	Use:     "show",
	Short:   "Print an archived era report",
	Example: `embercli report show --era=42 --data=./reports`,
	Run:     doShowCmd,
}

func doShowCmd(cmd *cobra.Command, args []string) {
	rs, db := openReportStore()
	defer db.Close()

	report, err := rs.GetReport(core.EraID(eraFlag))
	if err == store.ErrKeyNotFound {
		utils.Error("No report archived for era %d\n", eraFlag)
	}
	if err != nil {
		utils.Error("Failed to load report for era %d: %v\n", eraFlag, err)
	}

	formatted, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		utils.Error("Failed to format era report: %v\n", err)
	}
	fmt.Println(string(formatted))
}

func init() {
	showCmd.Flags().Uint64Var(&eraFlag, "era", 0, "Era of the report")
	showCmd.Flags().StringVar(&dataFlag, "data", "", "Directory of the local archive")
	showCmd.MarkFlagRequired("era")
	showCmd.MarkFlagRequired("data")
}
