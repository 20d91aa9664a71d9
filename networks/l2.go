package networks

var Polygon Chain = mustGenericChain(ChainConfig{
	Name:             "polygon",
	AlternativeNames: []string{"matic"},
	ChainID:          137,
	NativeCurrency:   Currency{Name: "POL", Symbol: "POL", Decimals: 18},
	BlockTime:        2,
	NodeVariableName: "POLYGON_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"polygon": "https://polygon-rpc.com",
	},
	BlockExplorer: &BlockExplorer{Name: "PolygonScan", URL: "https://polygonscan.com"},
})

var ArbitrumMainnet Chain = mustGenericChain(ChainConfig{
	Name:             "arbitrum",
	AlternativeNames: []string{"arb"},
	ChainID:          42161,
	NativeCurrency:   Currency{Name: "Ether", Symbol: "ETH", Decimals: 18},
	BlockTime:        1,
	NodeVariableName: "ARBITRUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"arbitrum": "https://arb1.arbitrum.io/rpc",
	},
	BlockExplorer: &BlockExplorer{Name: "Arbiscan", URL: "https://arbiscan.io"},
})

var OptimismMainnet Chain = mustGenericChain(ChainConfig{
	Name:             "optimism",
	AlternativeNames: []string{"op"},
	ChainID:          10,
	NativeCurrency:   Currency{Name: "Ether", Symbol: "ETH", Decimals: 18},
	BlockTime:        2,
	NodeVariableName: "OPTIMISM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"optimism": "https://mainnet.optimism.io",
	},
	BlockExplorer: &BlockExplorer{Name: "Optimism Explorer", URL: "https://optimistic.etherscan.io"},
})

var BaseMainnet Chain = mustGenericChain(ChainConfig{
	Name:             "base",
	ChainID:          8453,
	NativeCurrency:   Currency{Name: "Ether", Symbol: "ETH", Decimals: 18},
	BlockTime:        2,
	NodeVariableName: "BASE_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"base": "https://mainnet.base.org",
	},
	BlockExplorer: &BlockExplorer{Name: "Basescan", URL: "https://basescan.org"},
})
