package common

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// RawTxToHash returns the transaction hash of a hex encoded signed
// transaction
func RawTxToHash(data string) (common.Hash, error) {
	raw, err := hexutil.Decode(data)
	if err != nil {
		return common.Hash{}, fmt.Errorf("raw tx is not valid hex: %w", err)
	}
	return crypto.Keccak256Hash(raw), nil
}
