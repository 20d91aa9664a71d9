package accounts

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/walletclient/transaction"
)

const (
	aliceKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
)

var (
	alice = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	bob   = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
)

func TestParseAccount(t *testing.T) {
	acc, err := ParseAccount(" 0x70997970c51812dc3a010c7d01b50e0d17dc79c8 ")
	require.NoError(t, err)
	assert.Equal(t, bob, acc.Address())
	assert.Equal(t, AccountTypeJSONRPC, acc.Type())

	for _, input := range []string{"", "0x1234", "70997970c51812dc3a010c7d01b50e0d17dc79c8", "0xzz997970c51812dc3a010c7d01b50e0d17dc79c8"} {
		_, err := ParseAccount(input)
		assert.ErrorIs(t, err, ErrInvalidAddress, input)
	}
}

func TestPrivateKeyToAccount(t *testing.T) {
	acc, err := PrivateKeyToAccount(aliceKey)
	require.NoError(t, err)
	assert.Equal(t, alice, acc.Address())
	assert.Equal(t, AccountTypeLocal, acc.Type())

	naked, err := PrivateKeyToAccount(aliceKey[2:])
	require.NoError(t, err)
	assert.Equal(t, alice, naked.Address())

	_, err = PrivateKeyToAccount("0x1234")
	assert.Error(t, err)
}

func signedTx(t *testing.T, raw string) *types.Transaction {
	t.Helper()
	data, err := hexutil.Decode(raw)
	require.NoError(t, err)
	tx := new(types.Transaction)
	require.NoError(t, tx.UnmarshalBinary(data))
	return tx
}

func TestLocalAccountSignTransaction(t *testing.T) {
	acc, err := PrivateKeyToAccount(aliceKey)
	require.NoError(t, err)

	tests := []struct {
		name   string
		params transaction.Params
		txType uint8
	}{
		{
			name: "eip1559",
			params: transaction.Params{
				To:                   &bob,
				Value:                big.NewInt(1e18),
				Gas:                  transaction.Uint64(21000),
				Nonce:                transaction.Uint64(3),
				MaxFeePerGas:         big.NewInt(20e9),
				MaxPriorityFeePerGas: big.NewInt(1e9),
			},
			txType: types.DynamicFeeTxType,
		},
		{
			name: "legacy",
			params: transaction.Params{
				To:       &bob,
				Gas:      transaction.Uint64(21000),
				GasPrice: big.NewInt(3e9),
			},
			txType: types.LegacyTxType,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			raw, err := acc.SignTransaction(transaction.Serializable{ChainID: 31337, Params: tc.params}, nil)
			require.NoError(t, err)

			tx := signedTx(t, raw)
			assert.Equal(t, tc.txType, tx.Type())
			assert.Equal(t, big.NewInt(31337), tx.ChainId())
			sender, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
			require.NoError(t, err)
			assert.Equal(t, alice, sender)
			assert.Equal(t, bob, *tx.To())
		})
	}
}

func TestLocalAccountSignTransactionRLPSerializer(t *testing.T) {
	acc, err := PrivateKeyToAccount(aliceKey)
	require.NoError(t, err)

	raw, err := acc.SignTransaction(transaction.Serializable{
		ChainID: 1,
		Params:  transaction.Params{To: &bob, Gas: transaction.Uint64(21000)},
	}, transaction.RLPSerializer)
	require.NoError(t, err)

	data, err := hexutil.Decode(raw)
	require.NoError(t, err)
	tx := new(types.Transaction)
	require.NoError(t, rlp.DecodeBytes(data, tx))
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
}

func TestLocalAccountSignTransactionInvalid(t *testing.T) {
	acc, err := PrivateKeyToAccount(aliceKey)
	require.NoError(t, err)

	_, err = acc.SignTransaction(transaction.Serializable{
		ChainID: 1,
		Params:  transaction.Params{GasPrice: big.NewInt(1), MaxFeePerGas: big.NewInt(2)},
	}, nil)
	assert.ErrorIs(t, err, transaction.ErrFeeConflict)
}

func TestFromKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte(aliceKey[2:]), 0600))

	acc, err := FromKeyFile(path)
	require.NoError(t, err)
	assert.Equal(t, alice, acc.Address())

	_, err = FromKeyFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestKeystoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path, err := storeKeystore(aliceKey, "secret", dir, gethkeystore.LightScryptN, gethkeystore.LightScryptP)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, alice.Hex()+".json"), path)

	addr, err := VerifyKeystore(path)
	require.NoError(t, err)
	assert.Equal(t, alice, addr)

	acc, err := FromKeystore(path, "secret")
	require.NoError(t, err)
	assert.Equal(t, alice, acc.Address())

	_, err = FromKeystore(path, "wrong")
	assert.Error(t, err)
}

func TestRecords(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "alice.key")
	require.NoError(t, os.WriteFile(keyPath, []byte(aliceKey[2:]), 0600))

	records := filepath.Join(dir, "accounts")
	_, err := StoreRecord(records, Record{Address: alice.Hex(), Kind: KindKeyFile, Keypath: keyPath, Desc: "dev deployer"})
	require.NoError(t, err)
	_, err = StoreRecord(records, Record{Address: bob.Hex(), Kind: KindJSONRPC, Desc: "node unlocked"})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(records, "junk.json"), []byte("nope"), 0600))

	_, err = StoreRecord(records, Record{Address: "0x12"})
	assert.ErrorIs(t, err, ErrInvalidAddress)

	loaded, err := LoadRecords(records)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	found, err := FindRecord(loaded, "deployer")
	require.NoError(t, err)
	assert.Equal(t, alice.Hex(), found.Address)

	acc, err := found.Open("")
	require.NoError(t, err)
	assert.Equal(t, AccountTypeLocal, acc.Type())
	assert.Equal(t, alice, acc.Address())

	found, err = FindRecord(loaded, "node unlocked")
	require.NoError(t, err)
	acc, err = found.Open("")
	require.NoError(t, err)
	assert.Equal(t, AccountTypeJSONRPC, acc.Type())

	_, err = FindRecord(loaded, "qqqqqq")
	assert.ErrorIs(t, err, ErrAccountRecordNotFound)

	_, err = Record{Address: bob.Hex(), Kind: "trezor"}.Open("")
	assert.Error(t, err)
}
