package main

import "github.com/tranvictor/walletclient/cmd"

func main() {
	cmd.Execute()
}
