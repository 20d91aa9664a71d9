package client

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tranvictor/walletclient/logger"
	"github.com/tranvictor/walletclient/networks"
)

// ChainID returns the id of the chain the node is connected to.
func (c *WalletClient) ChainID(ctx context.Context) (uint64, error) {
	var id hexutil.Uint64
	if err := c.transport.Request(ctx, &id, "eth_chainId"); err != nil {
		return 0, fmt.Errorf("couldn't get chain id: %w", err)
	}
	logger.Debug("connected chain id: %d", uint64(id))
	return uint64(id), nil
}

// assertChain compares the connected chain id with expectedID and
// chain. A nil chain is only accepted when expectedID is set.
func assertChain(chain networks.Chain, expectedID *uint64, currentChainID uint64) error {
	if expectedID != nil && *expectedID != currentChainID {
		mismatch := &networks.ChainMismatchError{ChainID: *expectedID, CurrentChainID: currentChainID}
		if chain != nil {
			mismatch.Name = chain.Name()
		}
		return mismatch
	}
	if chain == nil && expectedID != nil {
		return nil
	}
	return networks.AssertCurrentChain(chain, currentChainID)
}
