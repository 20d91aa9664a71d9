package client

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/walletclient/logger"
	"github.com/tranvictor/walletclient/transaction"
)

// SendTransaction submits params and returns the transaction hash. Local
// accounts prepare and sign in-process then send the raw transaction,
// json-rpc accounts hand the request to eth_sendTransaction.
func (c *WalletClient) SendTransaction(ctx context.Context, params SignTransactionParams) (common.Hash, error) {
	account, err := c.resolveAccount(params.Account)
	if err != nil {
		return common.Hash{}, err
	}
	req := withFrom(params.Request, account)
	if err := transaction.AssertRequest(req); err != nil {
		return common.Hash{}, err
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}
	chain := c.resolveChain(params.Chain)
	if err := assertChain(chain, params.ChainID, chainID); err != nil {
		return common.Hash{}, err
	}

	local, err := localSigner(account)
	if err != nil {
		return common.Hash{}, err
	}
	if local != nil {
		prepared, err := c.prepare(ctx, account, chain, params)
		if err != nil {
			return common.Hash{}, err
		}
		raw, err := c.sign(ctx, account, chain, chainID, prepared.Request, params.Serializer)
		if err != nil {
			return common.Hash{}, err
		}
		return c.SendRawTransaction(ctx, raw)
	}

	rpcReq := chainFormatter(chain).Format(req)
	rpcReq.SetChainID(chainID)
	var hash common.Hash
	if err := c.transport.Request(ctx, &hash, "eth_sendTransaction", rpcReq); err != nil {
		return common.Hash{}, fmt.Errorf("eth_sendTransaction failed: %w", err)
	}
	logger.Debug("tx submitted by node: %s", hash.Hex())
	return hash, nil
}

// SendRawTransaction submits a hex encoded signed transaction.
func (c *WalletClient) SendRawTransaction(ctx context.Context, raw string) (common.Hash, error) {
	var hash common.Hash
	if err := c.transport.Request(ctx, &hash, "eth_sendRawTransaction", raw); err != nil {
		return common.Hash{}, fmt.Errorf("eth_sendRawTransaction failed: %w", err)
	}
	logger.Debug("raw tx submitted: %s", hash.Hex())
	return hash, nil
}
