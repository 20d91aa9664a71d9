package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"

	"github.com/tranvictor/walletclient/accounts"
	"github.com/tranvictor/walletclient/client"
	wcommon "github.com/tranvictor/walletclient/common"
	"github.com/tranvictor/walletclient/ui"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a transaction without sending it",
	Long: `Sign a transaction and print the raw signed transaction.

With --private-key or --keystore the transaction is signed locally, missing
nonce, fees and gas are fetched from the node first. With --from set to an
address the node signs it with eth_signTransaction and fills whatever is
missing itself.`,
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
		params := client.SignTransactionParams{Request: req}
		if account := s.client.Account(); account != nil && account.Type() == accounts.AccountTypeLocal {
			stop := appUI.Spinner("Filling nonce, fees and gas from the node")
			params, err = s.client.PrepareTransactionRequest(cmd.Context(), params)
			stop()
			if err != nil {
				return err
			}
		}

		raw, err := s.client.SignTransaction(cmd.Context(), params)
		if err != nil {
			return err
		}
		appUI.Section("Signed transaction")
		appUI.Critical("%s", raw)
		showRawTx(appUI, raw, s.chain.NativeCurrency().Symbol)
		return nil
	},
}

// showRawTx prints the fields of a hex encoded signed transaction. Only
// the hash is shown for payloads that don't decode as an ethereum
// transaction, e.g. the ones of chains with their own serializer, and
// nothing but a warning for payloads that aren't hex.
func showRawTx(u ui.UI, raw string, symbol string) {
	hash, err := wcommon.RawTxToHash(raw)
	if err != nil {
		u.Warn("The signed payload is opaque: %s", err)
		return
	}
	rows := [][2]string{{"Hash", wcommon.HashColor(hash.Hex())}}

	tx := new(types.Transaction)
	if err := tx.UnmarshalBinary(hexutil.MustDecode(raw)); err != nil {
		u.KeyValue(rows)
		u.Warn("Couldn't decode the signed transaction: %s", err)
		return
	}
	to := "contract creation"
	if tx.To() != nil {
		to = tx.To().Hex()
	}
	rows = append(rows,
		[2]string{"Type", fmt.Sprint(tx.Type())},
		[2]string{"Chain id", fmt.Sprint(tx.ChainId())},
		[2]string{"Nonce", fmt.Sprint(tx.Nonce())},
		[2]string{"To", to},
		[2]string{"Value", fmt.Sprintf("%s %s", wcommon.FormatEther(tx.Value()), symbol)},
		[2]string{"Gas", ui.FormatNumber(tx.Gas())},
	)
	if tx.Type() == types.LegacyTxType || tx.Type() == types.AccessListTxType {
		rows = append(rows, [2]string{"Gas price", wcommon.FormatGwei(tx.GasPrice()) + " gwei"})
	} else {
		rows = append(rows,
			[2]string{"Max fee", wcommon.FormatGwei(tx.GasFeeCap()) + " gwei"},
			[2]string{"Max priority fee", wcommon.FormatGwei(tx.GasTipCap()) + " gwei"},
		)
	}
	if len(tx.Data()) > 0 {
		rows = append(rows, [2]string{"Data", hexutil.Encode(tx.Data())})
	}
	u.KeyValue(rows)
}

func init() {
	AddTxFlags(signCmd)
	rootCmd.AddCommand(signCmd)
}
