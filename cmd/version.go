package cmd

import (
	"github.com/spf13/cobra"
)

const (
	VERSION string = "0.1.0"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		appUI.Info("walletclient %s", VERSION)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
