package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tranvictor/walletclient/config"
)

// AddAccountFlags adds the flags selecting the signing account.
func AddAccountFlags(c *cobra.Command) {
	c.Flags().StringVarP(&config.From, "from", "f", "", "address signed for by the node, or a hint matching one of your stored accounts")
	c.Flags().StringVar(&config.PrivateKey, "private-key", "", "hex private key to sign locally with")
	c.Flags().StringVar(&config.KeystorePath, "keystore", "", "keystore file to sign locally with, the passphrase is prompted")
}

// AddTxFlags adds the flags describing a transaction. Amounts are
// decimals: --value in ether and the fee flags in gwei.
func AddTxFlags(c *cobra.Command) {
	AddAccountFlags(c)
	c.Flags().StringVarP(&config.To, "to", "t", "", "recipient address, empty for contract creation")
	c.Flags().StringVarP(&config.Value, "value", "v", "", "amount of native currency to send, e.g. 0.5")
	c.Flags().Uint64VarP(&config.GasLimit, "gas", "g", 0, "gas limit, estimated by the node when unset")
	c.Flags().StringVar(&config.GasPrice, "gas-price", "", "legacy gas price in gwei")
	c.Flags().StringVar(&config.MaxFeePerGas, "max-fee", "", "max fee per gas in gwei")
	c.Flags().StringVar(&config.MaxPriorityFeePerGas, "max-priority-fee", "", "max priority fee per gas (tip) in gwei")
	c.Flags().Int64VarP(&config.Nonce, "nonce", "n", -1, "nonce, the pending nonce of the account when unset")
	c.Flags().StringVarP(&config.Data, "data", "d", "", "hex calldata")
	c.Flags().StringVar(&config.TxType, "type", "", "legacy, eip2930, eip1559 or eip7702. Inferred from the fee fields when unset")
}
