package tx

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	rpcc "github.com/ybbus/jsonrpc"

	"github.com/emberledger/ember/cmd/embercli/cmd/utils"
	"github.com/emberledger/ember/core"
	"github.com/emberledger/ember/crypto"
	"github.com/emberledger/ember/rpc"
	"github.com/emberledger/ember/wire"
)

// transferCmd submits a signed token transfer through the transfer
// contract.
// Example:
//
//	embercli tx transfer --contract=0xabcd... --key=sender.key --to=0x01... --amount=1000000000 --nonce=1
var transferCmd = &cobra.Command{
	Use:     "transfer",
	Short:   "Send tokens",
	Example: `embercli tx transfer --contract=0xabcd... --key=sender.key --to=0x01... --amount=1000000000 --nonce=1`,
	Run:     doTransferCmd,
}

func doTransferCmd(cmd *cobra.Command, args []string) {
	if len(keyFlag) == 0 {
		utils.Error("The sender key file cannot be empty\n")
	}
	if len(toFlag) == 0 {
		utils.Error("The to address cannot be empty\n")
	}

	contract, err := core.ContractHashFromHex(contractFlag)
	if err != nil {
		utils.Error("Failed to parse contract hash: %v\n", err)
	}

	to, err := crypto.PublicKeyFromString(toFlag)
	if err != nil {
		utils.Error("Failed to parse recipient key: %v\n", err)
	}

	amountInt, ok := new(big.Int).SetString(amountFlag, 10)
	if !ok {
		utils.Error("Failed to parse amount\n")
	}
	amount, err := wire.NewU512FromBig(amountInt)
	if err != nil {
		utils.Error("Failed to parse amount: %v\n", err)
	}

	senderKey, err := crypto.LoadPrivateKeyFromFile(keyFlag, keyScheme())
	if err != nil {
		utils.Error("Failed to load sender key: %v\n", err)
	}

	transfer := &core.TransferTx{
		Contract: contract,
		From:     senderKey.PublicKey(),
		To:       to,
		Amount:   amount,
		Nonce:    nonceFlag,
	}
	signed := transfer.Sign(senderKey)

	client := rpcc.NewRPCClient(viper.GetString(utils.CfgRemoteRPCEndpoint))
	res, err := client.Call("ember.SubmitTransfer", rpc.SubmitTransferArgs{
		TxBytes: hex.EncodeToString(wire.EncodeToBytes(signed)),
	})
	if err != nil {
		utils.Error("Failed to submit transfer: %v\n", err)
	}
	if res.Error != nil {
		utils.Error("Server returned error: %v\n", res.Error)
	}

	result := &rpc.SubmitTransferResult{}
	if err := res.GetObject(result); err != nil {
		utils.Error("Failed to parse server response: %v\n", err)
	}
	formatted, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		utils.Error("Failed to parse server response: %v\n", err)
	}
	fmt.Printf("Successfully submitted transfer:\n%s\n", formatted)
}

func keyScheme() crypto.KeyTag {
	switch schemeFlag {
	case "ed25519":
		return crypto.KeyTagEd25519
	case "secp256k1":
		return crypto.KeyTagSecp256k1
	}
	utils.Error("Unknown key scheme: %s\n", schemeFlag)
	return crypto.KeyTagSystem
}

func init() {
	transferCmd.Flags().StringVar(&contractFlag, "contract", "", "Hash of the transfer contract")
	transferCmd.Flags().StringVar(&keyFlag, "key", "", "File holding the sender private key")
	transferCmd.Flags().StringVar(&schemeFlag, "scheme", "ed25519", "Key scheme of the sender key (ed25519|secp256k1)")
	transferCmd.Flags().StringVar(&toFlag, "to", "", "Recipient public key")
	transferCmd.Flags().StringVar(&amountFlag, "amount", "0", "Amount to transfer")
	transferCmd.Flags().Uint64Var(&nonceFlag, "nonce", 0, "Nonce of the transaction")
	transferCmd.MarkFlagRequired("contract")
	transferCmd.MarkFlagRequired("key")
	transferCmd.MarkFlagRequired("to")
}
