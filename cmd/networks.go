package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/walletclient/config"
	"github.com/tranvictor/walletclient/networks"
)

var networksCmd = &cobra.Command{
	Use:   "networks",
	Short: "List the supported chains, custom chains included",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.NewConfig()
		cfg.LoadFromEnvironment()
		if _, err := networks.LoadCustomChains(cfg.ChainsDir); err != nil {
			appUI.Warn("Couldn't load custom chains from %s: %s", cfg.ChainsDir, err)
		}

		rows := [][]string{}
		for _, c := range networks.SupportedChains() {
			testnet := ""
			if c.Testnet() {
				testnet = "yes"
			}
			rows = append(rows, []string{
				fmt.Sprint(c.ID()),
				c.Name(),
				strings.Join(c.AlternativeNames(), ", "),
				c.NativeCurrency().Symbol,
				testnet,
				c.NodeVariableName(),
			})
		}
		appUI.Table([]string{"ID", "Name", "Aliases", "Currency", "Testnet", "Node env"}, rows)
		return nil
	},
}

var chainFile string

var addNetworkCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a custom chain from a json config file",
	Long: `Validate a json chain config and copy it to the custom chains directory.
Example:

{
  "name": "devnet",
  "alternative_names": ["dev"],
  "chain_id": 1337,
  "native_currency": {"name": "Ether", "symbol": "ETH", "decimals": 18},
  "block_time": 2,
  "default_nodes": {"local": "http://127.0.0.1:8545"},
  "extra_request_fields": ["feeCurrency"]
}`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := os.ReadFile(chainFile)
		if err != nil {
			return err
		}
		chain, err := networks.NewChainFromJSON(content)
		if err != nil {
			return err
		}
		cfg := config.NewConfig()
		cfg.LoadFromEnvironment()
		if err := networks.Default().Save(cfg.ChainsDir, chain); err != nil {
			return err
		}
		appUI.Success("Added %s (chain id %d) to %s", chain.Name(), chain.ID(), cfg.ChainsDir)
		return nil
	},
}

func init() {
	addNetworkCmd.Flags().StringVar(&chainFile, "file", "", "json chain config")
	addNetworkCmd.MarkFlagRequired("file")
	networksCmd.AddCommand(addNetworkCmd)
	rootCmd.AddCommand(networksCmd)
}
