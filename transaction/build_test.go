package transaction_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/walletclient/transaction"
)

func TestInferType(t *testing.T) {
	cases := []struct {
		name   string
		params transaction.Params
		want   transaction.Type
	}{
		{"no fees", transaction.Params{}, transaction.TypeEIP1559},
		{"gas price", transaction.Params{GasPrice: big.NewInt(1)}, transaction.TypeLegacy},
		{"gas price and access list", transaction.Params{GasPrice: big.NewInt(1), AccessList: types.AccessList{}}, transaction.TypeEIP2930},
		{"max fee", transaction.Params{MaxFeePerGas: big.NewInt(1)}, transaction.TypeEIP1559},
		{"tip only", transaction.Params{MaxPriorityFeePerGas: big.NewInt(1)}, transaction.TypeEIP1559},
		{"authorization list", transaction.Params{AuthorizationList: []types.SetCodeAuthorization{{}}}, transaction.TypeEIP7702},
		{"explicit", transaction.Params{Type: transaction.TypeLegacy}, transaction.TypeLegacy},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.params.InferType()
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestInferTypeConflicts(t *testing.T) {
	conflicts := []transaction.Params{
		{Type: transaction.TypeLegacy, MaxFeePerGas: big.NewInt(1)},
		{Type: transaction.TypeEIP1559, GasPrice: big.NewInt(1)},
		{Type: transaction.TypeLegacy, AccessList: types.AccessList{{Address: alice}}},
		{Type: transaction.TypeEIP1559, AuthorizationList: []types.SetCodeAuthorization{{}}},
		{GasPrice: big.NewInt(1), MaxFeePerGas: big.NewInt(1)},
	}
	for _, p := range conflicts {
		_, err := p.InferType()
		assert.ErrorIs(t, err, transaction.ErrInvalidSerializableTransaction)
	}

	_, err := transaction.Params{Type: "eip4844"}.InferType()
	assert.ErrorIs(t, err, transaction.ErrInvalidType)
}

func TestAssertRequest(t *testing.T) {
	assert.NoError(t, transaction.AssertRequest(transaction.Request{From: &alice}))

	err := transaction.AssertRequest(transaction.Request{Params: transaction.Params{
		GasPrice:     big.NewInt(1),
		MaxFeePerGas: big.NewInt(1),
	}})
	assert.ErrorIs(t, err, transaction.ErrFeeConflict)

	tooHigh := new(big.Int).Add(math.MaxBig256, big.NewInt(1))
	err = transaction.AssertRequest(transaction.Request{Params: transaction.Params{MaxFeePerGas: tooHigh}})
	assert.ErrorIs(t, err, transaction.ErrFeeCapTooHigh)
	var capErr *transaction.FeeCapTooHighError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, tooHigh, capErr.MaxFeePerGas)

	err = transaction.AssertRequest(transaction.Request{Params: transaction.Params{
		MaxFeePerGas:         big.NewInt(1),
		MaxPriorityFeePerGas: big.NewInt(2),
	}})
	assert.ErrorIs(t, err, transaction.ErrTipAboveFeeCap)

	err = transaction.AssertRequest(transaction.Request{Params: transaction.Params{Value: big.NewInt(-1)}})
	assert.ErrorIs(t, err, transaction.ErrNegativeValue)

	err = transaction.AssertRequest(transaction.Request{
		Params: transaction.Params{Data: []byte{0x01}},
		Extra:  map[string]any{"input": "0x02"},
	})
	assert.ErrorIs(t, err, transaction.ErrDataInputConflict)

	err = transaction.AssertRequest(transaction.Request{
		Params: transaction.Params{Data: []byte{0x01}},
		Extra:  map[string]any{"input": "0x01"},
	})
	assert.NoError(t, err)
}

func TestSerializableTransaction(t *testing.T) {
	base := transaction.Params{
		To:    &bob,
		Gas:   transaction.Uint64(21000),
		Nonce: transaction.Uint64(785),
		Value: big.NewInt(1),
	}

	legacy := base
	legacy.GasPrice = big.NewInt(1_000_000_000)
	tx, err := transaction.Serializable{ChainID: 1, Params: legacy}.Transaction()
	require.NoError(t, err)
	assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
	assert.Equal(t, uint64(785), tx.Nonce())
	assert.Equal(t, uint64(21000), tx.Gas())

	accessList := base
	accessList.GasPrice = big.NewInt(1)
	accessList.AccessList = types.AccessList{{Address: alice, StorageKeys: []common.Hash{{}}}}
	tx, err = transaction.Serializable{ChainID: 1, Params: accessList}.Transaction()
	require.NoError(t, err)
	assert.Equal(t, uint8(types.AccessListTxType), tx.Type())
	assert.Len(t, tx.AccessList(), 1)

	dynamic := base
	dynamic.MaxFeePerGas = big.NewInt(2)
	dynamic.MaxPriorityFeePerGas = big.NewInt(1)
	tx, err = transaction.Serializable{ChainID: 31337, Params: dynamic}.Transaction()
	require.NoError(t, err)
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, int64(31337), tx.ChainId().Int64())
	assert.Equal(t, int64(2), tx.GasFeeCap().Int64())
	assert.Equal(t, int64(1), tx.GasTipCap().Int64())

	setCode := base
	setCode.Type = transaction.TypeEIP7702
	setCode.MaxFeePerGas = big.NewInt(2)
	setCode.AuthorizationList = []types.SetCodeAuthorization{{Address: alice}}
	tx, err = transaction.Serializable{ChainID: 1, Params: setCode}.Transaction()
	require.NoError(t, err)
	assert.Equal(t, uint8(types.SetCodeTxType), tx.Type())
	assert.Len(t, tx.SetCodeAuthorizations(), 1)
}

func TestSerializableTransactionRejects(t *testing.T) {
	_, err := transaction.Serializable{Params: transaction.Params{}}.Transaction()
	assert.ErrorIs(t, err, transaction.ErrInvalidChainID)

	_, err = transaction.Serializable{ChainID: 1, Params: transaction.Params{Type: transaction.TypeEIP7702}}.Transaction()
	assert.ErrorIs(t, err, transaction.ErrInvalidSerializableTransaction)
}

func TestSerializers(t *testing.T) {
	tx, err := transaction.Serializable{ChainID: 1, Params: transaction.Params{
		To:           &bob,
		MaxFeePerGas: big.NewInt(1),
	}}.Transaction()
	require.NoError(t, err)

	canonical, err := transaction.DefaultSerializer.Serialize(tx)
	require.NoError(t, err)
	assert.Equal(t, byte(types.DynamicFeeTxType), canonical[0])

	wrapped, err := transaction.RLPSerializer.Serialize(tx)
	require.NoError(t, err)
	assert.Greater(t, len(wrapped), len(canonical))

	decoded := new(types.Transaction)
	require.NoError(t, decoded.UnmarshalBinary(canonical))
	assert.Equal(t, tx.Hash(), decoded.Hash())
}
