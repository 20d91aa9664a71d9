package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/tranvictor/walletclient/accounts"
	"github.com/tranvictor/walletclient/config"
)

var keystoreDesc string

var keystoreCmd = &cobra.Command{
	Use:   "keystore",
	Short: "Manage keystore files",
}

var newKeystoreCmd = &cobra.Command{
	Use:   "new",
	Short: "Encrypt a private key into a new keystore file",
	Long: `Encrypt a private key with a passphrase and write it to the keystores
directory (~/.walletclient/keystores). With --desc the keystore is also
stored as an account so that --from can refer to it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		cfg.LoadFromEnvironment()

		key, err := appUI.Password("Private key: ")
		if err != nil {
			return err
		}
		pwd, err := appUI.Password("Passphrase: ")
		if err != nil {
			return err
		}
		confirm, err := appUI.Password("Repeat passphrase: ")
		if err != nil {
			return err
		}
		if pwd != confirm {
			return errors.New("passphrases don't match")
		}

		stop := appUI.Spinner("Encrypting")
		path, err := accounts.StorePrivateKeyWithKeystore(key, pwd, cfg.KeystoreDir)
		stop()
		if err != nil {
			return err
		}
		addr, err := accounts.VerifyKeystore(path)
		if err != nil {
			return err
		}
		appUI.Success("Keystore of %s written to %s", addr.Hex(), path)

		if keystoreDesc == "" {
			return nil
		}
		recordPath, err := accounts.StoreRecord(cfg.AccountsDir, accounts.Record{
			Address: addr.Hex(),
			Kind:    accounts.KindKeystore,
			Keypath: path,
			Desc:    keystoreDesc,
		})
		if err != nil {
			return err
		}
		appUI.Info("Account stored at %s", recordPath)
		return nil
	},
}

func init() {
	newKeystoreCmd.Flags().StringVar(&keystoreDesc, "desc", "", "also store the keystore as an account with this description")
	keystoreCmd.AddCommand(newKeystoreCmd)
	rootCmd.AddCommand(keystoreCmd)
}
