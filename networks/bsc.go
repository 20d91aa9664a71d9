package networks

var BSCMainnet Chain = mustGenericChain(ChainConfig{
	Name:             "bsc",
	AlternativeNames: []string{"bnb"},
	ChainID:          56,
	NativeCurrency:   Currency{Name: "BNB", Symbol: "BNB", Decimals: 18},
	BlockTime:        3,
	NodeVariableName: "BSC_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"binance":  "https://bsc-dataseed.bnbchain.org",
		"defibit":  "https://bsc-dataseed1.defibit.io",
		"ninicoin": "https://bsc-dataseed1.ninicoin.io",
	},
	BlockExplorer: &BlockExplorer{Name: "BscScan", URL: "https://bscscan.com"},
})

var BSCTestnet Chain = mustGenericChain(ChainConfig{
	Name:             "bsc-test",
	AlternativeNames: []string{"bsc-testnet"},
	ChainID:          97,
	NativeCurrency:   Currency{Name: "BNB", Symbol: "tBNB", Decimals: 18},
	BlockTime:        3,
	Testnet:          true,
	NodeVariableName: "BSC_TESTNET_NODE",
	DefaultNodes: map[string]string{
		"binance": "https://data-seed-prebsc-1-s1.bnbchain.org:8545",
	},
	BlockExplorer: &BlockExplorer{Name: "BscScan", URL: "https://testnet.bscscan.com"},
})
