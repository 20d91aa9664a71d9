package client

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tranvictor/walletclient/accounts"
	"github.com/tranvictor/walletclient/logger"
	"github.com/tranvictor/walletclient/networks"
	"github.com/tranvictor/walletclient/transaction"
)

var ErrEIP1559FeesNotSupported = errors.New("chain does not support eip1559 fees")

// BaseFeeMultiplier scales the latest base fee when maxFeePerGas is
// estimated.
const BaseFeeMultiplier = 2

// PrepareTransactionRequest fills the nonce, fee and gas fields that
// params leaves unset.
func (c *WalletClient) PrepareTransactionRequest(ctx context.Context, params SignTransactionParams) (SignTransactionParams, error) {
	account, err := c.resolveAccount(params.Account)
	if err != nil {
		return params, err
	}
	params.Account = account
	return c.prepare(ctx, account, c.resolveChain(params.Chain), params)
}

func (c *WalletClient) prepare(
	ctx context.Context,
	account accounts.Account,
	chain networks.Chain,
	params SignTransactionParams,
) (SignTransactionParams, error) {
	req := withFrom(params.Request, account)

	if req.Nonce == nil {
		var nonce hexutil.Uint64
		if err := c.transport.Request(ctx, &nonce, "eth_getTransactionCount", account.Address(), "pending"); err != nil {
			return params, fmt.Errorf("couldn't get nonce: %w", err)
		}
		req.Nonce = transaction.Uint64(uint64(nonce))
	}

	if err := c.prepareFees(ctx, &req); err != nil {
		return params, err
	}

	if req.Gas == nil {
		var gas hexutil.Uint64
		if err := c.transport.Request(ctx, &gas, "eth_estimateGas", chainFormatter(chain).Format(req)); err != nil {
			return params, fmt.Errorf("couldn't estimate gas: %w", err)
		}
		req.Gas = transaction.Uint64(uint64(gas))
	}

	logger.Debug("prepared tx: type=%s nonce=%d gas=%d", req.Type, *req.Nonce, *req.Gas)
	params.Request = req
	return params, nil
}

type latestBlock struct {
	BaseFeePerGas *hexutil.Big `json:"baseFeePerGas"`
}

func (c *WalletClient) baseFee(ctx context.Context) (*big.Int, error) {
	var block *latestBlock
	if err := c.transport.Request(ctx, &block, "eth_getBlockByNumber", "latest", false); err != nil {
		return nil, fmt.Errorf("couldn't get latest block: %w", err)
	}
	if block == nil || block.BaseFeePerGas == nil {
		return nil, nil
	}
	return block.BaseFeePerGas.ToInt(), nil
}

func (c *WalletClient) gasPrice(ctx context.Context) (*big.Int, error) {
	var price hexutil.Big
	if err := c.transport.Request(ctx, &price, "eth_gasPrice"); err != nil {
		return nil, fmt.Errorf("couldn't get gas price: %w", err)
	}
	return price.ToInt(), nil
}

func (c *WalletClient) prepareFees(ctx context.Context, req *transaction.Request) error {
	txType, err := req.InferType()
	if err != nil {
		return err
	}
	noFees := req.GasPrice == nil && req.MaxFeePerGas == nil && req.MaxPriorityFeePerGas == nil

	if txType == transaction.TypeLegacy || txType == transaction.TypeEIP2930 {
		if req.GasPrice == nil {
			if req.GasPrice, err = c.gasPrice(ctx); err != nil {
				return err
			}
		}
		return nil
	}

	if req.MaxFeePerGas != nil && req.MaxPriorityFeePerGas != nil {
		return nil
	}
	baseFee, err := c.baseFee(ctx)
	if err != nil {
		return err
	}
	if baseFee == nil {
		if req.Type == "" && noFees {
			req.Type = transaction.TypeLegacy
			req.GasPrice, err = c.gasPrice(ctx)
			return err
		}
		return ErrEIP1559FeesNotSupported
	}
	if req.Type == "" {
		req.Type = txType
	}

	if req.MaxPriorityFeePerGas == nil {
		var tip hexutil.Big
		if err := c.transport.Request(ctx, &tip, "eth_maxPriorityFeePerGas"); err != nil {
			return fmt.Errorf("couldn't get max priority fee: %w", err)
		}
		req.MaxPriorityFeePerGas = tip.ToInt()
		if req.MaxFeePerGas != nil && req.MaxPriorityFeePerGas.Cmp(req.MaxFeePerGas) > 0 {
			req.MaxPriorityFeePerGas = new(big.Int).Set(req.MaxFeePerGas)
		}
	}
	if req.MaxFeePerGas == nil {
		maxFee := new(big.Int).Mul(baseFee, big.NewInt(BaseFeeMultiplier))
		req.MaxFeePerGas = maxFee.Add(maxFee, req.MaxPriorityFeePerGas)
	}
	return nil
}
