package cmd

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tranvictor/walletclient/accounts"
	"github.com/tranvictor/walletclient/config"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage the accounts --from can refer to by name",
}

var listAccountCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		cfg.LoadFromEnvironment()
		records, err := accounts.LoadRecords(cfg.AccountsDir)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			appUI.Info("No accounts in %s", cfg.AccountsDir)
			return nil
		}
		rows := make([][]string, 0, len(records))
		for i, r := range records {
			rows = append(rows, []string{fmt.Sprint(i + 1), r.Address, r.Kind, r.Desc, r.Keypath})
		}
		appUI.Table([]string{"#", "Address", "Kind", "Description", "Key"}, rows)
		return nil
	},
}

var (
	accountKind string
	accountDesc string
	accountKey  string
)

var addAccountCmd = &cobra.Command{
	Use:   "add [address]",
	Short: "Store an account record",
	Long: `Store an account under a description so that --from can match it.
Keystore and keyfile accounts sign locally, json-rpc accounts are signed for
by the node. For keystores the address is read from the file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		cfg.LoadFromEnvironment()

		record := accounts.Record{Kind: accountKind, Keypath: accountKey, Desc: accountDesc}
		switch accountKind {
		case accounts.KindKeystore:
			addr, err := accounts.VerifyKeystore(accountKey)
			if err != nil {
				return err
			}
			record.Address = addr.Hex()
		case accounts.KindKeyFile:
			acc, err := accounts.FromKeyFile(accountKey)
			if err != nil {
				return err
			}
			record.Address = acc.Address().Hex()
		case accounts.KindJSONRPC:
			if len(args) == 0 || !common.IsHexAddress(args[0]) {
				return fmt.Errorf("json-rpc accounts need an address: %w", accounts.ErrInvalidAddress)
			}
			record.Address = args[0]
		default:
			return fmt.Errorf("unknown account kind %q", accountKind)
		}
		if record.Desc == "" {
			record.Desc = appUI.Ask("Description of the account:", nil)
		}

		path, err := accounts.StoreRecord(cfg.AccountsDir, record)
		if err != nil {
			return err
		}
		appUI.Success("Stored %s at %s", record.Address, path)
		return nil
	},
}

func init() {
	addAccountCmd.Flags().StringVar(&accountKind, "kind", accounts.KindKeystore, "keystore, keyfile or json-rpc")
	addAccountCmd.Flags().StringVar(&accountDesc, "desc", "", "description, prompted when unset")
	addAccountCmd.Flags().StringVar(&accountKey, "key", "", "path to the keystore or key file")
	accountCmd.AddCommand(listAccountCmd, addAccountCmd)
	rootCmd.AddCommand(accountCmd)
}
