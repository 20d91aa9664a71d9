package networks

var EthereumMainnet Chain = mustGenericChain(ChainConfig{
	Name:             "mainnet",
	AlternativeNames: []string{"ethereum", "homestead"},
	ChainID:          1,
	NativeCurrency:   Currency{Name: "Ether", Symbol: "ETH", Decimals: 18},
	BlockTime:        12,
	NodeVariableName: "ETHEREUM_MAINNET_NODE",
	DefaultNodes: map[string]string{
		"llamarpc":   "https://eth.llamarpc.com",
		"publicnode": "https://ethereum-rpc.publicnode.com",
	},
	BlockExplorer: &BlockExplorer{Name: "Etherscan", URL: "https://etherscan.io"},
})

var Sepolia Chain = mustGenericChain(ChainConfig{
	Name:             "sepolia",
	ChainID:          11155111,
	NativeCurrency:   Currency{Name: "Sepolia Ether", Symbol: "ETH", Decimals: 18},
	BlockTime:        12,
	Testnet:          true,
	NodeVariableName: "ETHEREUM_SEPOLIA_NODE",
	DefaultNodes: map[string]string{
		"publicnode": "https://ethereum-sepolia-rpc.publicnode.com",
	},
	BlockExplorer: &BlockExplorer{Name: "Etherscan", URL: "https://sepolia.etherscan.io"},
})

var Holesky Chain = mustGenericChain(ChainConfig{
	Name:             "holesky",
	ChainID:          17000,
	NativeCurrency:   Currency{Name: "Holesky Ether", Symbol: "ETH", Decimals: 18},
	BlockTime:        12,
	Testnet:          true,
	NodeVariableName: "ETHEREUM_HOLESKY_NODE",
	DefaultNodes: map[string]string{
		"publicnode": "https://ethereum-holesky-rpc.publicnode.com",
	},
	BlockExplorer: &BlockExplorer{Name: "Etherscan", URL: "https://holesky.etherscan.io"},
})

// Anvil is the default chain of local development nodes such as anvil
// and hardhat.
var Anvil Chain = mustGenericChain(ChainConfig{
	Name:             "anvil",
	AlternativeNames: []string{"foundry", "localhost"},
	ChainID:          31337,
	NativeCurrency:   Currency{Name: "Ether", Symbol: "ETH", Decimals: 18},
	BlockTime:        1,
	Testnet:          true,
	NodeVariableName: "ANVIL_NODE",
	DefaultNodes: map[string]string{
		"local": "http://127.0.0.1:8545",
	},
})
