package cmd

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/walletclient/config"
	"github.com/tranvictor/walletclient/internal/testnode"
	"github.com/tranvictor/walletclient/networks"
	"github.com/tranvictor/walletclient/ui"
)

const (
	aliceKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	alice    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	bob      = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
)

func resetFlags() {
	config.Network, config.NodeURL, config.ConfigFile, config.Debug = "", "", "", false
	config.From, config.PrivateKey, config.KeystorePath = "", "", ""
	config.To, config.Value, config.GasLimit = "", "", 0
	config.GasPrice, config.MaxFeePerGas, config.MaxPriorityFeePerGas = "", "", ""
	config.Nonce, config.Data, config.TxType = -1, "", ""
	config.WaitToBeMined = false
	accountKind, accountDesc, accountKey = "keystore", "", ""
	keystoreDesc, chainFile = "", ""
}

// run executes the cli with args against a recording UI. Chains and
// accounts live in per test dirs.
func run(t *testing.T, inputs []string, args ...string) (*ui.RecordingUI, error) {
	t.Helper()
	t.Setenv(config.EnvChainsDir, t.TempDir())
	if os.Getenv(config.EnvAccountsDir) == "" {
		t.Setenv(config.EnvAccountsDir, t.TempDir())
	}
	t.Setenv(config.EnvNetwork, "")
	t.Setenv(config.EnvNodeURL, "")
	t.Setenv(config.EnvPrivateKey, "")
	t.Setenv(config.EnvKeystore, "")

	resetFlags()
	rec := ui.NewRecordingUI(inputs...)
	previous := appUI
	appUI = rec
	t.Cleanup(func() { appUI = previous })

	rootCmd.SetArgs(args)
	return rec, rootCmd.ExecuteContext(context.Background())
}

func decodeRaw(t *testing.T, raw string) *types.Transaction {
	t.Helper()
	tx := new(types.Transaction)
	require.NoError(t, tx.UnmarshalBinary(hexutil.MustDecode(raw)))
	return tx
}

func TestChainIDCommand(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	rec, err := run(t, nil, "chain-id", "--network", "anvil", "--node", node.URL)
	require.NoError(t, err)
	assert.Contains(t, rec.Values("KeyValue"), "Chain id=31337")
	assert.True(t, rec.HasMessage("node serves anvil"))
}

func TestChainIDCommandMismatch(t *testing.T) {
	node := testnode.New(t, 1)
	_, err := run(t, nil, "chain-id", "--network", "anvil", "--node", node.URL)
	assert.ErrorIs(t, err, networks.ErrChainMismatch)
}

func TestSignLocalFillsFromNode(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	rec, err := run(t, nil, "sign", "-k", "anvil", "--node", node.URL,
		"--private-key", aliceKey, "--to", bob, "--value", "0.5")
	require.NoError(t, err)

	assert.False(t, node.Called("eth_signTransaction"))
	assert.True(t, node.Called("eth_getTransactionCount"))
	assert.True(t, node.Called("eth_estimateGas"))

	raws := rec.Values("Critical")
	require.Len(t, raws, 1)
	tx := decodeRaw(t, raws[0])
	assert.Equal(t, uint64(7), tx.Nonce())
	assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())
	assert.Equal(t, "500000000000000000", tx.Value().String())
	assert.Contains(t, rec.Values("KeyValue"), "Nonce=7")
}

func TestSignLegacyGasPrice(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	rec, err := run(t, nil, "sign", "-k", "anvil", "--node", node.URL,
		"--private-key", aliceKey, "--to", bob, "--gas-price", "2.5", "--nonce", "0", "--gas", "30000")
	require.NoError(t, err)

	tx := decodeRaw(t, rec.Values("Critical")[0])
	assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
	assert.Equal(t, "2500000000", tx.GasPrice().String())
	assert.Equal(t, uint64(30000), tx.Gas())
	assert.Equal(t, uint64(0), tx.Nonce())
}

func TestSignRemote(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	rec, err := run(t, nil, "sign", "-k", "anvil", "--node", node.URL, "--from", alice, "--to", bob)
	require.NoError(t, err)

	assert.True(t, node.Called("eth_signTransaction"))
	assert.False(t, node.Called("eth_getTransactionCount"))
	assert.Equal(t, []string{testnode.SignedRaw}, rec.Values("Critical"))
}

func TestSignRemoteOpaquePayload(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	node.SignResult = "opaque-wallet-signature"
	rec, err := run(t, nil, "sign", "-k", "anvil", "--node", node.URL, "--from", alice, "--to", bob)
	require.NoError(t, err)

	assert.Equal(t, []string{"opaque-wallet-signature"}, rec.Values("Critical"))
	require.Len(t, rec.Values("Warn"), 1)
	assert.True(t, rec.HasMessage("opaque"))
	assert.Empty(t, rec.Values("KeyValue"))
}

func TestSignWithoutAccount(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	_, err := run(t, nil, "sign", "-k", "anvil", "--node", node.URL, "--to", bob)
	assert.Error(t, err)
}

func TestSignInvalidFlags(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	_, err := run(t, nil, "sign", "-k", "anvil", "--node", node.URL, "--from", alice, "--to", "bob")
	assert.Error(t, err)

	_, err = run(t, nil, "sign", "-k", "anvil", "--node", node.URL, "--from", alice, "--value", "1.2.3")
	assert.Error(t, err)

	_, err = run(t, nil, "sign", "-k", "anvil", "--node", node.URL, "--from", alice, "--type", "eip9999")
	assert.Error(t, err)
}

func TestSendLocalAndWait(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	node.PendingPoll = 0
	rec, err := run(t, nil, "send", "-k", "anvil", "--node", node.URL,
		"--private-key", aliceKey, "--to", bob, "--value", "1", "--wait")
	require.NoError(t, err)

	require.Len(t, node.SentRaw(), 1)
	assert.Equal(t, bob, decodeRaw(t, node.SentRaw()[0]).To().Hex())
	assert.True(t, rec.HasMessage("transaction sent"))
	assert.Contains(t, rec.Values("KeyValue"), "Status=success")
	assert.Contains(t, rec.Values("KeyValue"), "Gas used=21,000")
}

func TestSendRemote(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	rec, err := run(t, nil, "send", "-k", "anvil", "--node", node.URL, "--from", alice, "--to", bob)
	require.NoError(t, err)
	assert.True(t, node.Called("eth_sendTransaction"))
	assert.Empty(t, node.SentRaw())
	assert.True(t, rec.HasMessage("transaction sent"))
}

func TestBroadcastCommand(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	signer := testnode.New(t, networks.Anvil.ID())
	rec, err := run(t, nil, "sign", "-k", "anvil", "--node", signer.URL,
		"--private-key", aliceKey, "--to", bob)
	require.NoError(t, err)
	raw := rec.Values("Critical")[0]

	t.Setenv(networks.Anvil.NodeVariableName(), node.URL)
	rec, err = run(t, nil, "broadcast", "-k", "anvil", raw)
	require.NoError(t, err)
	assert.Equal(t, []string{raw}, node.SentRaw())
	assert.True(t, rec.HasMessage(decodeRaw(t, raw).Hash().Hex()))
}

func TestBroadcastAllRejected(t *testing.T) {
	node := testnode.New(t, networks.Anvil.ID())
	node.Failures["eth_sendRawTransaction"] = &testnode.Error{Code: -32000, Message: "nonce too low"}
	t.Setenv(networks.Anvil.NodeVariableName(), node.URL)
	_, err := run(t, nil, "broadcast", "-k", "anvil", "--node", node.URL, testnode.SignedRaw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonce too low")
}

func TestNetworksCommand(t *testing.T) {
	rec, err := run(t, nil, "networks")
	require.NoError(t, err)
	assert.Equal(t, []string{"ID|Name|Aliases|Currency|Testnet|Node env"}, rec.Values("Table"))
	rows := strings.Join(rec.Values("Row"), "\n")
	assert.Contains(t, rows, "31337|anvil|")
	assert.Contains(t, rows, "1|mainnet|")
}

func TestAccountAddThenSignByDescription(t *testing.T) {
	t.Setenv(config.EnvAccountsDir, t.TempDir())
	_, err := run(t, nil, "account", "add", alice, "--kind", "json-rpc", "--desc", "team treasury")
	require.NoError(t, err)

	rec, err := run(t, nil, "account", "list")
	require.NoError(t, err)
	require.Len(t, rec.Values("Row"), 1)
	assert.Contains(t, rec.Values("Row")[0], alice)

	node := testnode.New(t, networks.Anvil.ID())
	rec, err = run(t, nil, "sign", "-k", "anvil", "--node", node.URL, "--from", "treasury", "--to", bob)
	require.NoError(t, err)
	assert.True(t, rec.HasMessage("using account "+alice))
	assert.True(t, node.Called("eth_signTransaction"))
}

func TestAccountAddPromptsDescription(t *testing.T) {
	t.Setenv(config.EnvAccountsDir, t.TempDir())
	rec, err := run(t, []string{"ops"}, "account", "add", alice, "--kind", "json-rpc")
	require.NoError(t, err)
	assert.Equal(t, []string{"ops"}, rec.Values("Ask"))
}

func TestKeystoreNew(t *testing.T) {
	if testing.Short() {
		t.Skip("standard scrypt is slow")
	}
	t.Setenv(config.EnvAccountsDir, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	rec, err := run(t, []string{aliceKey, "secret", "secret"}, "keystore", "new", "--desc", "cold wallet")
	require.NoError(t, err)
	assert.True(t, rec.HasMessage("keystore of "+alice))

	rec, err = run(t, nil, "account", "list")
	require.NoError(t, err)
	require.Len(t, rec.Values("Row"), 1)
	assert.Contains(t, rec.Values("Row")[0], "keystore")
}

func TestKeystoreNewMismatchedPassphrase(t *testing.T) {
	_, err := run(t, []string{aliceKey, "secret", "other"}, "keystore", "new")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	rec, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Equal(t, []string{"walletclient " + VERSION}, rec.Values("Info"))
}
