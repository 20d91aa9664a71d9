// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	wcommon "github.com/tranvictor/walletclient/common"
	"github.com/tranvictor/walletclient/config"
	"github.com/tranvictor/walletclient/logger"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "walletclient",
	Short: "Sign and send ethereum transactions with a local key or through your node",
	Long: fmt.Sprintf(`walletclient signs transactions either in-process with a private key or
keystore, or remotely by asking the connected node to sign with eth_signTransaction.
Before signing it always checks that the node serves the chain you selected.

The node is picked in this order:
	1. --node flag
	2. %s env var (or the node from --config)
	3. the chain specific env var, e.g. ETHEREUM_MAINNET_NODE for mainnet
	4. the chain's default public nodes

Custom chains are loaded from json files in %s (or ~/.walletclient/chains).
A .env file in the current directory is loaded before anything else.`,
		config.EnvNodeURL,
		config.EnvChainsDir,
	),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(config.Debug)
		config.LoadEnvironment()
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, wcommon.AlertColor(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&config.Network, "network", "k", "", "chain name or alternative name, see `walletclient networks`. Defaults to mainnet.")
	rootCmd.PersistentFlags().StringVar(&config.NodeURL, "node", "", "node url (http, ws or ipc path). Overrides the chain default nodes.")
	rootCmd.PersistentFlags().StringVar(&config.ConfigFile, "config", "", "yaml config file")
	rootCmd.PersistentFlags().BoolVar(&config.Debug, "debug", false, "enable debug logs")
}
