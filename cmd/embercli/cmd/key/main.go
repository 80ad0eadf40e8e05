package key

import (
	"github.com/spf13/cobra"
)

// KeyCmd represents the key command group.
var KeyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage keys",
	Long:  `Manage keys.`,
}

var (
	outFlag    string
	schemeFlag string
)

func init() {
	KeyCmd.AddCommand(newCmd)
}
