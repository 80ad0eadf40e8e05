package tx

import (
	"github.com/spf13/cobra"
)

// TxCmd represents the tx command group.
var TxCmd = &cobra.Command{
	Use:   "tx",
	Short: "Submit transactions",
	Long:  `Submit transactions.`,
}

var (
	contractFlag string
	keyFlag      string
	schemeFlag   string
	toFlag       string
	amountFlag   string
	nonceFlag    uint64
)

func init() {
	TxCmd.AddCommand(transferCmd)
}
