package config

// Values bound to CLI flags.
var (
	Network    string
	NodeURL    string
	ConfigFile string
	Debug      bool

	From         string
	PrivateKey   string
	KeystorePath string

	To                   string
	Value                string
	GasLimit             uint64
	GasPrice             string
	MaxFeePerGas         string
	MaxPriorityFeePerGas string
	Nonce                int64
	Data                 string
	TxType               string

	WaitToBeMined bool
)
