package report

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emberledger/ember/cmd/embercli/cmd/utils"
	"github.com/emberledger/ember/common"
	"github.com/emberledger/ember/core"
	"github.com/emberledger/ember/wire"
)

// inspectCmd decodes an encoded era report and prints it as JSON.
// Example:
//
//	embercli report inspect --file=report.bin
//	embercli report inspect --hex=0x0000000001...
var inspectCmd = &cobra.Command{
	Use:     "inspect",
	Short:   "Decode an era report",
	Long:    `Decode an era report and print it as JSON.`,
	Example: `embercli report inspect --file=report.bin`,
	Run:     doInspectCmd,
}

func doInspectCmd(cmd *cobra.Command, args []string) {
	encoded := readReportBytes()

	report := core.EmptyEraReport()
	if err := wire.DecodeFromBytes(encoded, report); err != nil {
		utils.Error("Failed to decode era report: %v\n", err)
	}

	formatted, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		utils.Error("Failed to format era report: %v\n", err)
	}
	fmt.Println(string(formatted))
}

// readReportBytes loads the encoded report from the --file or --hex flag.
func readReportBytes() []byte {
	if len(fileFlag) != 0 {
		b, err := os.ReadFile(fileFlag)
		if err != nil {
			utils.Error("Failed to read %s: %v\n", fileFlag, err)
		}
		trimmed := strings.TrimSpace(string(b))
		if decoded, err := common.FromHex(trimmed); err == nil && len(trimmed) > 0 && strings.HasPrefix(trimmed, "0x") {
			return decoded
		}
		return b
	}
	if len(hexFlag) != 0 {
		decoded, err := common.FromHex(hexFlag)
		if err != nil {
			utils.Error("Failed to parse hex input: %v\n", err)
		}
		return decoded
	}
	utils.Error("Either --file or --hex is required\n")
	return nil
}

func init() {
	inspectCmd.Flags().StringVar(&fileFlag, "file", "", "File holding the encoded report (raw or hex)")
	inspectCmd.Flags().StringVar(&hexFlag, "hex", "", "Hex encoded report")
}
