package client

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

const DefaultPollInterval = 4 * time.Second

// WaitForTransactionReceipt polls for the receipt of hash until it is
// mined or ctx is done. A zero interval uses the chain block time.
func (c *WalletClient) WaitForTransactionReceipt(ctx context.Context, hash common.Hash, interval time.Duration) (*types.Receipt, error) {
	if interval <= 0 {
		interval = DefaultPollInterval
		if c.chain != nil && c.chain.BlockTime() > 0 {
			interval = c.chain.BlockTime()
		}
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		var receipt *types.Receipt
		if err := c.transport.Request(ctx, &receipt, "eth_getTransactionReceipt", hash); err != nil {
			return nil, fmt.Errorf("couldn't get receipt of %s: %w", hash.Hex(), err)
		}
		if receipt != nil {
			return receipt, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
