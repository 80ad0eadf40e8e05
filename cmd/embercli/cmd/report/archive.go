package report

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberledger/ember/cmd/embercli/cmd/utils"
	"github.com/emberledger/ember/core"
	"github.com/emberledger/ember/wire"
)

// archiveCmd stores an encoded era report in the local archive.
// Example:
//
//	embercli report archive --era=42 --file=report.bin --data=./reports
var archiveCmd = &cobra.Command{
	Use:     "archive",
	Short:   "Store an era report in the local archive",
	Example: `embercli report archive --era=42 --file=report.bin --data=./reports`,
	Run:     doArchiveCmd,
}

func doArchiveCmd(cmd *cobra.Command, args []string) {
	encoded := readReportBytes()

	report := core.EmptyEraReport()
	if err := wire.DecodeFromBytes(encoded, report); err != nil {
		utils.Error("Failed to decode era report: %v\n", err)
	}

	rs, db := openReportStore()
	defer db.Close()

	if err := rs.PutReport(core.EraID(eraFlag), report); err != nil {
		utils.Error("Failed to archive report for era %d: %v\n", eraFlag, err)
	}
	fmt.Printf("Archived report for era %d\n", eraFlag)
}

func init() {
	archiveCmd.Flags().Uint64Var(&eraFlag, "era", 0, "Era of the report")
	archiveCmd.Flags().StringVar(&fileFlag, "file", "", "File holding the encoded report (raw or hex)")
	archiveCmd.Flags().StringVar(&hexFlag, "hex", "", "Hex encoded report")
	archiveCmd.Flags().StringVar(&dataFlag, "data", "", "Directory of the local archive")
	archiveCmd.MarkFlagRequired("era")
	archiveCmd.MarkFlagRequired("data")
}
