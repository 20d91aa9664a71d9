package broadcaster

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	wcommon "github.com/tranvictor/walletclient/common"
	"github.com/tranvictor/walletclient/logger"
	"github.com/tranvictor/walletclient/transport"
)

const DefaultTimeout = 4 * time.Second

var ErrNoNodes = errors.New("no node to broadcast to")

// Broadcaster takes a signed tx and try to broadcast it to all
// nodes that it manages as fast as possible.
type Broadcaster struct {
	nodes   map[string]transport.Transport
	timeout time.Duration
}

func NewBroadcaster(nodes map[string]transport.Transport) *Broadcaster {
	return &Broadcaster{nodes: nodes, timeout: DefaultTimeout}
}

// NewGenericBroadcaster dials every node url. Nodes that can't be dialed
// are logged and skipped.
func NewGenericBroadcaster(ctx context.Context, nodes map[string]string, config transport.Config) *Broadcaster {
	transports := map[string]transport.Transport{}
	for name, url := range nodes {
		config.Key = name
		t, err := transport.Dial(ctx, url, config)
		if err != nil {
			logger.Warn("Couldn't connect to: %s - %v", url, err)
			continue
		}
		transports[name] = t
	}
	return NewBroadcaster(transports)
}

func (b *Broadcaster) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

func (b *Broadcaster) Nodes() []string {
	names := make([]string, 0, len(b.nodes))
	for name := range b.nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (b *Broadcaster) Close() {
	for _, t := range b.nodes {
		t.Close()
	}
}

func (b *Broadcaster) BroadcastTx(ctx context.Context, tx *types.Transaction) (common.Hash, bool, error) {
	data, err := tx.MarshalBinary()
	if err != nil {
		return common.Hash{}, false, fmt.Errorf("tx is not valid, couldn't use rlp to encode it: %w", err)
	}
	return b.Broadcast(ctx, hexutil.Encode(data))
}

// BroadcastError lists the nodes that rejected a transaction.
type BroadcastError struct {
	Hash     common.Hash
	Failures wcommon.Failures
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf("%d node(s) failed to broadcast %s: %s", len(e.Failures), e.Hash.Hex(), e.Failures.Err())
}

func (e *BroadcastError) Unwrap() error {
	return e.Failures.Err()
}

// Broadcast sends data, the hex encoded signed tx, to every node in
// parallel. ok is true when at least one node accepted it, err is a
// *BroadcastError listing the others.
func (b *Broadcaster) Broadcast(ctx context.Context, data string) (common.Hash, bool, error) {
	hash, err := wcommon.RawTxToHash(data)
	if err != nil {
		return common.Hash{}, false, err
	}
	if len(b.nodes) == 0 {
		return hash, false, ErrNoNodes
	}

	timeout, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	tasks := make(map[string]func() error, len(b.nodes))
	for name, t := range b.nodes {
		tasks[name] = func() error {
			if err := t.Request(timeout, nil, "eth_sendRawTransaction", data); err != nil {
				return err
			}
			logger.Debug("broadcasted %s to %s", hash.Hex(), name)
			return nil
		}
	}
	failures := wcommon.RunParallel(tasks)
	if len(failures) == 0 {
		return hash, true, nil
	}
	return hash, len(failures) < len(b.nodes), &BroadcastError{Hash: hash, Failures: failures}
}
