package transaction

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// InferType returns the explicit type when there is one, otherwise the
// type implied by the fee fields. A request without any fee field is
// treated as eip1559.
func (p Params) InferType() (Type, error) {
	dynamic := p.MaxFeePerGas != nil || p.MaxPriorityFeePerGas != nil
	if p.Type != "" {
		if !p.Type.Valid() {
			return "", &InvalidTypeError{Type: string(p.Type)}
		}
		switch p.Type {
		case TypeLegacy, TypeEIP2930:
			if dynamic {
				return "", &InvalidSerializableTransactionError{p.Type, "maxFeePerGas/maxPriorityFeePerGas are not allowed"}
			}
			if p.Type == TypeLegacy && len(p.AccessList) > 0 {
				return "", &InvalidSerializableTransactionError{p.Type, "accessList is not allowed"}
			}
		case TypeEIP1559, TypeEIP7702:
			if p.GasPrice != nil {
				return "", &InvalidSerializableTransactionError{p.Type, "gasPrice is not allowed"}
			}
		}
		if p.Type != TypeEIP7702 && len(p.AuthorizationList) > 0 {
			return "", &InvalidSerializableTransactionError{p.Type, "authorizationList is not allowed"}
		}
		return p.Type, nil
	}
	if p.GasPrice != nil && dynamic {
		return "", &InvalidSerializableTransactionError{Reason: ErrFeeConflict.Error()}
	}
	switch {
	case len(p.AuthorizationList) > 0:
		if p.GasPrice != nil {
			return "", &InvalidSerializableTransactionError{TypeEIP7702, "gasPrice is not allowed"}
		}
		return TypeEIP7702, nil
	case dynamic:
		return TypeEIP1559, nil
	case p.GasPrice != nil && p.AccessList != nil:
		return TypeEIP2930, nil
	case p.GasPrice != nil:
		return TypeLegacy, nil
	}
	return TypeEIP1559, nil
}

func GetType(s Serializable) (Type, error) {
	return s.Params.InferType()
}

// Transaction builds the unsigned go-ethereum transaction for s.
func (s Serializable) Transaction() (*types.Transaction, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	txType, _ := s.Params.InferType()
	chainID := new(big.Int).SetUint64(s.ChainID)

	var gas, nonce uint64
	if s.Gas != nil {
		gas = *s.Gas
	}
	if s.Nonce != nil {
		nonce = *s.Nonce
	}

	switch txType {
	case TypeLegacy:
		return types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			GasPrice: s.GasPrice,
			Gas:      gas,
			To:       s.To,
			Value:    s.Value,
			Data:     s.Data,
		}), nil
	case TypeEIP2930:
		return types.NewTx(&types.AccessListTx{
			ChainID:    chainID,
			Nonce:      nonce,
			GasPrice:   s.GasPrice,
			Gas:        gas,
			To:         s.To,
			Value:      s.Value,
			Data:       s.Data,
			AccessList: s.AccessList,
		}), nil
	case TypeEIP1559:
		return types.NewTx(&types.DynamicFeeTx{
			ChainID:    chainID,
			Nonce:      nonce,
			GasTipCap:  s.MaxPriorityFeePerGas,
			GasFeeCap:  s.MaxFeePerGas,
			Gas:        gas,
			To:         s.To,
			Value:      s.Value,
			Data:       s.Data,
			AccessList: s.AccessList,
		}), nil
	case TypeEIP7702:
		return s.setCodeTx(chainID, nonce, gas)
	}
	return nil, &InvalidTypeError{Type: string(txType)}
}

func (s Serializable) setCodeTx(chainID *big.Int, nonce, gas uint64) (*types.Transaction, error) {
	if s.To == nil {
		return nil, &InvalidSerializableTransactionError{TypeEIP7702, "to is required"}
	}
	values := map[string]*big.Int{
		"chainId":              chainID,
		"maxPriorityFeePerGas": s.MaxPriorityFeePerGas,
		"maxFeePerGas":         s.MaxFeePerGas,
		"value":                s.Value,
	}
	converted := map[string]*uint256.Int{}
	for name, v := range values {
		u, err := toUint256(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		converted[name] = u
	}
	return types.NewTx(&types.SetCodeTx{
		ChainID:    converted["chainId"],
		Nonce:      nonce,
		GasTipCap:  converted["maxPriorityFeePerGas"],
		GasFeeCap:  converted["maxFeePerGas"],
		Gas:        gas,
		To:         *s.To,
		Value:      converted["value"],
		Data:       s.Data,
		AccessList: s.AccessList,
		AuthList:   s.AuthorizationList,
	}), nil
}

func toUint256(v *big.Int) (*uint256.Int, error) {
	if v == nil {
		return new(uint256.Int), nil
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return nil, fmt.Errorf("%s overflows 256 bits", v)
	}
	return u, nil
}

// Serializer turns a signed transaction into the bytes a node accepts
// through eth_sendRawTransaction.
type Serializer interface {
	Serialize(tx *types.Transaction) ([]byte, error)
}

type SerializerFunc func(tx *types.Transaction) ([]byte, error)

func (f SerializerFunc) Serialize(tx *types.Transaction) ([]byte, error) {
	return f(tx)
}

// DefaultSerializer produces the canonical encoding: plain RLP for
// legacy txs and type || payload for typed ones.
var DefaultSerializer Serializer = SerializerFunc(func(tx *types.Transaction) ([]byte, error) {
	return tx.MarshalBinary()
})

// RLPSerializer wraps typed txs into an RLP string, the form they take
// inside a block body.
var RLPSerializer Serializer = SerializerFunc(func(tx *types.Transaction) ([]byte, error) {
	return rlp.EncodeToBytes(tx)
})
