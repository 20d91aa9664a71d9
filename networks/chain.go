package networks

import (
	"time"

	"github.com/tranvictor/walletclient/transaction"
)

type Currency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

type BlockExplorer struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Formatters are the chain specific hooks applied to requests before
// they go over the wire. Nil fields fall back to the defaults.
type Formatters struct {
	TransactionRequest transaction.Formatter
}

// Serializers are the chain specific encoders applied by local
// accounts after signing.
type Serializers struct {
	Transaction transaction.Serializer
}

type Chain interface {
	Name() string
	AlternativeNames() []string
	ID() uint64
	NativeCurrency() Currency
	BlockTime() time.Duration
	Testnet() bool

	// NodeVariableName is the env var that, when set, replaces the
	// default nodes with a single custom node.
	NodeVariableName() string
	DefaultNodes() map[string]string
	BlockExplorer() *BlockExplorer

	Formatters() *Formatters
	Serializers() *Serializers
}
