package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tranvictor/walletclient/broadcaster"
	wcommon "github.com/tranvictor/walletclient/common"
	"github.com/tranvictor/walletclient/transport"
)

var broadcastCmd = &cobra.Command{
	Use:   "broadcast [raw signed tx]",
	Short: "Broadcast a signed transaction to every known node of the chain",
	Long: `Broadcast sends the raw transaction to the chain's default nodes, the
node configured for the chain and --node, all in parallel. It succeeds when
at least one node accepts the transaction.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		chain, err := resolveChain(cfg)
		if err != nil {
			return err
		}

		nodes := map[string]string{}
		for name, url := range chain.DefaultNodes() {
			nodes[name] = url
		}
		if url, found := cfg.Nodes[chain.Name()]; found {
			nodes["config"] = url
		}
		if cfg.NodeURL != "" {
			nodes["flag"] = cfg.NodeURL
		}
		bc := broadcaster.NewGenericBroadcaster(cmd.Context(), nodes, transport.Config{Timeout: cfg.RequestTimeout})
		defer bc.Close()

		stop := appUI.Spinner("Broadcasting to " + strings.Join(bc.Nodes(), ", "))
		hash, ok, err := bc.Broadcast(cmd.Context(), args[0])
		stop()
		if !ok {
			return err
		}
		if err != nil {
			appUI.Warn("Some nodes rejected the transaction: %s", err)
		}
		appUI.Success("Broadcasted: %s", wcommon.HashColor(hash.Hex()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(broadcastCmd)
}
