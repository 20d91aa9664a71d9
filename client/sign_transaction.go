package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tranvictor/walletclient/accounts"
	"github.com/tranvictor/walletclient/logger"
	"github.com/tranvictor/walletclient/networks"
	"github.com/tranvictor/walletclient/transaction"
)

// SignTransactionParams describes the transaction to sign. From in the
// embedded request is ignored, the signing account's address is used.
type SignTransactionParams struct {
	transaction.Request

	// Account and Chain override the client defaults.
	Account accounts.Account
	Chain   networks.Chain
	// ChainID is checked against the node when no chain is known.
	ChainID *uint64
	// Serializer overrides the chain serializer for local accounts.
	Serializer transaction.Serializer
}

// SignTransaction signs params with a local account or asks the node to
// sign it through eth_signTransaction. Either way the result is the hex
// encoded signed transaction.
func (c *WalletClient) SignTransaction(ctx context.Context, params SignTransactionParams) (string, error) {
	account, err := c.resolveAccount(params.Account)
	if err != nil {
		return "", err
	}
	req := withFrom(params.Request, account)
	if err := transaction.AssertRequest(req); err != nil {
		return "", err
	}

	chainID, err := c.ChainID(ctx)
	if err != nil {
		return "", err
	}
	chain := c.resolveChain(params.Chain)
	if err := assertChain(chain, params.ChainID, chainID); err != nil {
		return "", err
	}
	return c.sign(ctx, account, chain, chainID, req, params.Serializer)
}

func (c *WalletClient) sign(
	ctx context.Context,
	account accounts.Account,
	chain networks.Chain,
	chainID uint64,
	req transaction.Request,
	serializer transaction.Serializer,
) (string, error) {
	local, err := localSigner(account)
	if err != nil {
		return "", err
	}
	if local != nil {
		logger.Debug("signing with local account %s", local.Address().Hex())
		return local.SignTransaction(
			transaction.Serializable{ChainID: chainID, Params: req.Params},
			chainSerializer(chain, serializer),
		)
	}

	logger.Debug("signing with json-rpc account %s", account.Address().Hex())
	rpcReq := chainFormatter(chain).Format(req)
	rpcReq.SetChainID(chainID)

	var result json.RawMessage
	if err := c.transport.Request(ctx, &result, "eth_signTransaction", rpcReq); err != nil {
		return "", fmt.Errorf("eth_signTransaction failed: %w", err)
	}
	return decodeSignResult(result)
}

// decodeSignResult accepts the plain hex string most nodes return and
// the {raw, tx} object returned by geth.
// A null or empty result is an error.
func decodeSignResult(result json.RawMessage) (string, error) {
	var raw string
	if err := json.Unmarshal(result, &raw); err != nil {
		var withTx struct {
			Raw string `json:"raw"`
		}
		if err := json.Unmarshal(result, &withTx); err == nil {
			raw = withTx.Raw
		}
	}
	if raw == "" {
		return "", fmt.Errorf("%w: %s", ErrUnexpectedSignResult, string(result))
	}
	return raw, nil
}

// localSigner returns nil for accounts signed for by the node. Accounts
// claiming to be local must be able to sign.
func localSigner(account accounts.Account) (accounts.LocalSigner, error) {
	if account.Type() != accounts.AccountTypeLocal {
		return nil, nil
	}
	local, ok := account.(accounts.LocalSigner)
	if !ok {
		return nil, fmt.Errorf("%s (%T): %w", account.Address().Hex(), account, ErrLocalAccountNoSigner)
	}
	return local, nil
}

func withFrom(req transaction.Request, account accounts.Account) transaction.Request {
	from := account.Address()
	req.From = &from
	return req
}

func chainFormatter(chain networks.Chain) transaction.Formatter {
	if chain != nil {
		if f := chain.Formatters(); f != nil && f.TransactionRequest != nil {
			return f.TransactionRequest
		}
	}
	return transaction.DefaultFormatter
}

func chainSerializer(chain networks.Chain, override transaction.Serializer) transaction.Serializer {
	if override != nil {
		return override
	}
	if chain != nil {
		if s := chain.Serializers(); s != nil && s.Transaction != nil {
			return s.Transaction
		}
	}
	return transaction.DefaultSerializer
}
