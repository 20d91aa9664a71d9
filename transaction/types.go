package transaction

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type Type string

const (
	TypeLegacy  Type = "legacy"
	TypeEIP2930 Type = "eip2930"
	TypeEIP1559 Type = "eip1559"
	TypeEIP7702 Type = "eip7702"
)

var rpcTypes = map[Type]uint64{
	TypeLegacy:  types.LegacyTxType,
	TypeEIP2930: types.AccessListTxType,
	TypeEIP1559: types.DynamicFeeTxType,
	TypeEIP7702: types.SetCodeTxType,
}

func (t Type) Valid() bool {
	_, ok := rpcTypes[t]
	return ok
}

// ParseType accepts both the names ("eip1559") and the envelope
// numbers ("2", "0x2").
func ParseType(s string) (Type, error) {
	switch s {
	case "legacy", "0", "0x0":
		return TypeLegacy, nil
	case "eip2930", "1", "0x1":
		return TypeEIP2930, nil
	case "eip1559", "2", "0x2":
		return TypeEIP1559, nil
	case "eip7702", "4", "0x4":
		return TypeEIP7702, nil
	}
	return "", &InvalidTypeError{Type: s}
}

// Params are the fields shared by a request and its serializable form.
// Nil fields are unset.
type Params struct {
	Type                 Type
	To                   *common.Address
	Gas                  *uint64
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	Value                *big.Int
	Nonce                *uint64
	Data                 []byte
	AccessList           types.AccessList
	AuthorizationList    []types.SetCodeAuthorization
}

// Request is a transaction description as handed to a node. Extra
// carries chain specific fields that the standard shape doesn't know.
type Request struct {
	From *common.Address
	Params
	Extra map[string]any
}

// Serializable is what a local account signs.
type Serializable struct {
	ChainID uint64
	Params
}

func Uint64(v uint64) *uint64 {
	return &v
}
