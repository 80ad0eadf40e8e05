package key

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberledger/ember/cmd/embercli/cmd/utils"
	"github.com/emberledger/ember/crypto"
)

// newCmd generates a key pair and saves the private key to a file.
// Example:
//
//	embercli key new --out=sender.key --scheme=ed25519
var newCmd = &cobra.Command{
	Use:     "new",
	Short:   "Generate a new key",
	Example: `embercli key new --out=sender.key --scheme=ed25519`,
	Run:     doNewCmd,
}

func doNewCmd(cmd *cobra.Command, args []string) {
	var tag crypto.KeyTag
	switch schemeFlag {
	case "ed25519":
		tag = crypto.KeyTagEd25519
	case "secp256k1":
		tag = crypto.KeyTagSecp256k1
	default:
		utils.Error("Unknown key scheme: %s\n", schemeFlag)
	}

	sk, pk, err := crypto.GenerateKeyPair(tag)
	if err != nil {
		utils.Error("Failed to generate key: %v\n", err)
	}
	if err := sk.SaveToFile(outFlag); err != nil {
		utils.Error("Failed to save key to %s: %v\n", outFlag, err)
	}

	fmt.Printf("Saved %s key to %s\nPublic key: %s\n", tag, outFlag, pk)
}

func init() {
	newCmd.Flags().StringVar(&outFlag, "out", "", "Output file of the private key")
	newCmd.Flags().StringVar(&schemeFlag, "scheme", "ed25519", "Key scheme (ed25519|secp256k1)")
	newCmd.MarkFlagRequired("out")
}
