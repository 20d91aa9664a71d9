// Package testnode runs an in-memory Ethereum JSON-RPC node for tests.
// It answers the subset of the eth namespace the wallet client uses and
// records every method it serves.
package testnode

import (
	"math/big"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rpc"
)

// SignedRaw is what eth_signTransaction returns unless Node.SignResult
// is set.
const SignedRaw = "0x02f86c827a6980843b9aca00850218711a00825208940000000000000000000000000000000000000000880de0b6b3a764000080c0"

// Error is a JSON-RPC error served by the node.
type Error struct {
	Code    int
	Message string
	Data    any
}

func (e *Error) Error() string  { return e.Message }
func (e *Error) ErrorCode() int { return e.Code }
func (e *Error) ErrorData() any { return e.Data }

type Node struct {
	URL   string
	WSURL string

	mu      sync.Mutex
	calls   []string
	params  map[string][]any
	sent    []string
	polls   int
	chainID uint64

	// Fields below can be changed before the node is used.
	Nonce       uint64
	GasPrice    *big.Int
	BaseFee     *big.Int
	Tip         *big.Int
	Gas         uint64
	SignResult  any
	Failures    map[string]error
	PendingPoll int
}

// New starts a node serving chainID over HTTP and WebSocket. It is shut
// down when the test ends.
func New(t testing.TB, chainID uint64) *Node {
	t.Helper()
	n := &Node{
		params:   map[string][]any{},
		chainID:  chainID,
		Nonce:    7,
		GasPrice: big.NewInt(3_000_000_000),
		BaseFee:  big.NewInt(10_000_000_000),
		Tip:      big.NewInt(1_000_000_000),
		Gas:      21000,
		Failures: map[string]error{},
	}
	server := rpc.NewServer()
	if err := server.RegisterName("eth", &ethService{node: n}); err != nil {
		t.Fatalf("register eth service: %v", err)
	}
	httpServer := httptest.NewServer(server)
	wsServer := httptest.NewServer(server.WebsocketHandler([]string{"*"}))
	t.Cleanup(func() {
		wsServer.Close()
		httpServer.Close()
		server.Stop()
	})
	n.URL = httpServer.URL
	n.WSURL = "ws" + strings.TrimPrefix(wsServer.URL, "http")
	return n
}

// Calls returns the served methods in order.
func (n *Node) Calls() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.calls...)
}

func (n *Node) Called(method string) bool {
	for _, c := range n.Calls() {
		if c == method {
			return true
		}
	}
	return false
}

// Params returns the params of the last call to method.
func (n *Node) Params(method string) []any {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.params[method]
}

// SentRaw returns the payloads received by eth_sendRawTransaction.
func (n *Node) SentRaw() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.sent...)
}

func (n *Node) SetChainID(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.chainID = id
}

func (n *Node) record(method string, params ...any) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, method)
	n.params[method] = params
	return n.Failures[method]
}

type ethService struct {
	node *Node
}

func (s *ethService) ChainId() (hexutil.Uint64, error) {
	if err := s.node.record("eth_chainId"); err != nil {
		return 0, err
	}
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	return hexutil.Uint64(s.node.chainID), nil
}

func (s *ethService) GetTransactionCount(address common.Address, block string) (hexutil.Uint64, error) {
	if err := s.node.record("eth_getTransactionCount", address, block); err != nil {
		return 0, err
	}
	return hexutil.Uint64(s.node.Nonce), nil
}

func (s *ethService) GasPrice() (*hexutil.Big, error) {
	if err := s.node.record("eth_gasPrice"); err != nil {
		return nil, err
	}
	return (*hexutil.Big)(s.node.GasPrice), nil
}

func (s *ethService) MaxPriorityFeePerGas() (*hexutil.Big, error) {
	if err := s.node.record("eth_maxPriorityFeePerGas"); err != nil {
		return nil, err
	}
	return (*hexutil.Big)(s.node.Tip), nil
}

func (s *ethService) GetBlockByNumber(number string, full bool) (map[string]any, error) {
	if err := s.node.record("eth_getBlockByNumber", number, full); err != nil {
		return nil, err
	}
	block := map[string]any{
		"number": "0x1",
		"hash":   common.Hash{1}.Hex(),
	}
	if s.node.BaseFee != nil {
		block["baseFeePerGas"] = (*hexutil.Big)(s.node.BaseFee)
	}
	return block, nil
}

func (s *ethService) EstimateGas(args map[string]any) (hexutil.Uint64, error) {
	if err := s.node.record("eth_estimateGas", args); err != nil {
		return 0, err
	}
	return hexutil.Uint64(s.node.Gas), nil
}

func (s *ethService) SignTransaction(args map[string]any) (any, error) {
	if err := s.node.record("eth_signTransaction", args); err != nil {
		return nil, err
	}
	if s.node.SignResult != nil {
		return s.node.SignResult, nil
	}
	return SignedRaw, nil
}

func (s *ethService) SendTransaction(args map[string]any) (common.Hash, error) {
	if err := s.node.record("eth_sendTransaction", args); err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash([]byte(SignedRaw)), nil
}

func (s *ethService) SendRawTransaction(data hexutil.Bytes) (common.Hash, error) {
	if err := s.node.record("eth_sendRawTransaction", data.String()); err != nil {
		return common.Hash{}, err
	}
	s.node.mu.Lock()
	s.node.sent = append(s.node.sent, data.String())
	s.node.mu.Unlock()
	return crypto.Keccak256Hash(data), nil
}

// GetTransactionReceipt returns null PendingPoll times, then a
// successful receipt.
func (s *ethService) GetTransactionReceipt(hash common.Hash) (*types.Receipt, error) {
	if err := s.node.record("eth_getTransactionReceipt", hash); err != nil {
		return nil, err
	}
	s.node.mu.Lock()
	defer s.node.mu.Unlock()
	s.node.polls++
	if s.node.polls <= s.node.PendingPoll {
		return nil, nil
	}
	return &types.Receipt{
		Type:              types.DynamicFeeTxType,
		Status:            types.ReceiptStatusSuccessful,
		CumulativeGasUsed: s.node.Gas,
		Logs:              []*types.Log{},
		TxHash:            hash,
		GasUsed:           s.node.Gas,
		EffectiveGasPrice: s.node.GasPrice,
		BlockHash:         common.Hash{1},
		BlockNumber:       big.NewInt(1),
	}, nil
}
