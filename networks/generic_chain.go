package networks

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/tranvictor/walletclient/transaction"
)

const (
	SerializerCanonical = "canonical"
	SerializerRLP       = "rlp"
)

type ChainConfig struct {
	Name             string            `json:"name"`
	AlternativeNames []string          `json:"alternative_names"`
	ChainID          uint64            `json:"chain_id"`
	NativeCurrency   Currency          `json:"native_currency"`
	BlockTime        uint64            `json:"block_time"`
	Testnet          bool              `json:"testnet"`
	NodeVariableName string            `json:"node_variable_name"`
	DefaultNodes     map[string]string `json:"default_nodes"`
	BlockExplorer    *BlockExplorer    `json:"block_explorer,omitempty"`

	// ExtraRequestFields are the chain specific request fields that are
	// forwarded to the node, others are dropped.
	ExtraRequestFields []string `json:"extra_request_fields,omitempty"`
	// Serializer is "canonical" (default) or "rlp".
	Serializer string `json:"serializer,omitempty"`
}

// GenericChain is a Chain fully described by a ChainConfig.
type GenericChain struct {
	config      ChainConfig
	formatters  *Formatters
	serializers *Serializers
}

func NewGenericChain(config ChainConfig) (*GenericChain, error) {
	if config.Name == "" {
		return nil, fmt.Errorf("chain name is required")
	}
	if config.ChainID == 0 {
		return nil, fmt.Errorf("chain %s: chain id is required", config.Name)
	}
	if config.NativeCurrency.Symbol == "" {
		config.NativeCurrency = Currency{Name: "Ether", Symbol: "ETH", Decimals: 18}
	}
	result := &GenericChain{config: config}
	if len(config.ExtraRequestFields) > 0 {
		result.formatters = &Formatters{
			TransactionRequest: transaction.NewExtraFieldsFormatter(nil, config.ExtraRequestFields...),
		}
	}
	switch config.Serializer {
	case "", SerializerCanonical:
	case SerializerRLP:
		result.serializers = &Serializers{Transaction: transaction.RLPSerializer}
	default:
		return nil, fmt.Errorf("chain %s: unknown serializer %q", config.Name, config.Serializer)
	}
	return result, nil
}

func mustGenericChain(config ChainConfig) *GenericChain {
	result, err := NewGenericChain(config)
	if err != nil {
		panic(err)
	}
	return result
}

// WithFormatters returns a copy of gc using f instead of the formatters
// derived from its config.
func (gc *GenericChain) WithFormatters(f *Formatters) *GenericChain {
	cpy := *gc
	cpy.formatters = f
	return &cpy
}

func (gc *GenericChain) WithSerializers(s *Serializers) *GenericChain {
	cpy := *gc
	cpy.serializers = s
	return &cpy
}

func (gc *GenericChain) Name() string {
	return gc.config.Name
}

func (gc *GenericChain) AlternativeNames() []string {
	return gc.config.AlternativeNames
}

func (gc *GenericChain) ID() uint64 {
	return gc.config.ChainID
}

func (gc *GenericChain) NativeCurrency() Currency {
	return gc.config.NativeCurrency
}

func (gc *GenericChain) BlockTime() time.Duration {
	return time.Duration(gc.config.BlockTime) * time.Second
}

func (gc *GenericChain) Testnet() bool {
	return gc.config.Testnet
}

func (gc *GenericChain) NodeVariableName() string {
	return gc.config.NodeVariableName
}

func (gc *GenericChain) DefaultNodes() map[string]string {
	if gc.config.NodeVariableName != "" {
		if node := strings.TrimSpace(os.Getenv(gc.config.NodeVariableName)); node != "" {
			return map[string]string{"custom": node}
		}
	}
	return gc.config.DefaultNodes
}

func (gc *GenericChain) BlockExplorer() *BlockExplorer {
	return gc.config.BlockExplorer
}

func (gc *GenericChain) Formatters() *Formatters {
	return gc.formatters
}

func (gc *GenericChain) Serializers() *Serializers {
	return gc.serializers
}

func (gc *GenericChain) Config() ChainConfig {
	return gc.config
}

func (gc *GenericChain) MarshalJSON() ([]byte, error) {
	return json.MarshalIndent(gc.config, "", "  ")
}

func NewChainFromJSON(content []byte) (*GenericChain, error) {
	config := ChainConfig{}
	if err := json.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chain config: %w", err)
	}
	return NewGenericChain(config)
}
