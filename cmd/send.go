package cmd

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/tranvictor/walletclient/client"
	wcommon "github.com/tranvictor/walletclient/common"
	"github.com/tranvictor/walletclient/config"
	"github.com/tranvictor/walletclient/ui"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Sign and send a transaction",
	Long: `Send a transaction. Local accounts sign in-process and submit the raw
transaction with eth_sendRawTransaction, accounts given by address are
handed to the node with eth_sendTransaction.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		req, err := buildRequest()
		if err != nil {
			return err
		}
		hash, err := s.client.SendTransaction(cmd.Context(), client.SignTransactionParams{Request: req})
		if err != nil {
			return err
		}
		appUI.Success("Transaction sent: %s", wcommon.HashColor(hash.Hex()))
		if explorer := s.chain.BlockExplorer(); explorer != nil && explorer.URL != "" {
			appUI.Info("%s/tx/%s", strings.TrimRight(explorer.URL, "/"), hash.Hex())
		}
		if !config.WaitToBeMined {
			return nil
		}

		stop := appUI.Spinner("Waiting for the transaction to be mined")
		receipt, err := s.client.WaitForTransactionReceipt(cmd.Context(), hash, 0)
		stop()
		if err != nil {
			return err
		}
		showReceipt(appUI, receipt)
		if receipt.Status != types.ReceiptStatusSuccessful {
			return fmt.Errorf("transaction %s reverted", hash.Hex())
		}
		return nil
	},
}

func showReceipt(u ui.UI, receipt *types.Receipt) {
	status := "success"
	if receipt.Status != types.ReceiptStatusSuccessful {
		status = "reverted"
	}
	block := "unknown"
	if receipt.BlockNumber != nil {
		block = ui.FormatNumber(receipt.BlockNumber.Uint64())
	}
	u.Section("Receipt")
	u.KeyValue([][2]string{
		{"Status", status},
		{"Block", block},
		{"Gas used", ui.FormatNumber(receipt.GasUsed)},
		{"Effective gas price", wcommon.FormatGwei(receipt.EffectiveGasPrice) + " gwei"},
	})
}

func init() {
	AddTxFlags(sendCmd)
	sendCmd.Flags().BoolVarP(&config.WaitToBeMined, "wait", "w", false, "wait for the transaction to be mined")
	rootCmd.AddCommand(sendCmd)
}
