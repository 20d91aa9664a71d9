package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tranvictor/walletclient/networks"
)

var chainIDCmd = &cobra.Command{
	Use:   "chain-id",
	Short: "Print the chain id served by the node and check it against --network",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd.Context())
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.client.ChainID(cmd.Context())
		if err != nil {
			return err
		}
		appUI.KeyValue([][2]string{
			{"Node", s.client.Transport().Info().URL},
			{"Chain id", fmt.Sprint(id)},
			{"Network", fmt.Sprintf("%s (%d)", s.chain.Name(), s.chain.ID())},
		})
		if err := networks.AssertCurrentChain(s.chain, id); err != nil {
			return err
		}
		appUI.Success("Node serves %s", s.chain.Name())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chainIDCmd)
}
