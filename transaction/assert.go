package transaction

import (
	"bytes"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
)

// AssertRequest checks the fee and value fields of a request before it
// is signed or sent.
func AssertRequest(req Request) error {
	if err := req.Params.assertFees(); err != nil {
		return err
	}
	if input, found := req.Extra["input"]; found && req.Data != nil {
		if !bytes.Equal(req.Data, inputBytes(input)) {
			return ErrDataInputConflict
		}
	}
	return nil
}

// Validate checks that s can be turned into a signed transaction.
func (s Serializable) Validate() error {
	if s.ChainID == 0 {
		return ErrInvalidChainID
	}
	if err := s.Params.assertFees(); err != nil {
		return err
	}
	_, err := s.Params.InferType()
	return err
}

func (p Params) assertFees() error {
	for _, v := range []*big.Int{p.Value, p.GasPrice, p.MaxFeePerGas, p.MaxPriorityFeePerGas} {
		if v != nil && v.Sign() < 0 {
			return ErrNegativeValue
		}
	}
	if p.GasPrice != nil && (p.MaxFeePerGas != nil || p.MaxPriorityFeePerGas != nil) {
		return ErrFeeConflict
	}
	if p.MaxFeePerGas != nil && p.MaxFeePerGas.Cmp(math.MaxBig256) > 0 {
		return &FeeCapTooHighError{MaxFeePerGas: p.MaxFeePerGas}
	}
	if p.MaxFeePerGas != nil && p.MaxPriorityFeePerGas != nil &&
		p.MaxPriorityFeePerGas.Cmp(p.MaxFeePerGas) > 0 {
		return &TipAboveFeeCapError{
			MaxFeePerGas:         p.MaxFeePerGas,
			MaxPriorityFeePerGas: p.MaxPriorityFeePerGas,
		}
	}
	return nil
}

func inputBytes(v any) []byte {
	switch input := v.(type) {
	case []byte:
		return input
	case hexutil.Bytes:
		return input
	case string:
		b, err := hexutil.Decode(input)
		if err != nil {
			return nil
		}
		return b
	}
	return nil
}
