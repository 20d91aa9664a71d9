package client

import (
	"errors"

	"github.com/tranvictor/walletclient/accounts"
	"github.com/tranvictor/walletclient/networks"
	"github.com/tranvictor/walletclient/transport"
)

var ErrAccountNotFound = errors.New(
	"could not find an account to sign with, pass one to the call or set it on the client",
)

var (
	ErrUnexpectedSignResult = errors.New("unexpected eth_signTransaction result")
	ErrLocalAccountNoSigner = errors.New("local account cannot sign transactions")
)

// WalletClient signs and submits transactions through a transport. The
// chain and account are defaults that every call can override.
type WalletClient struct {
	transport transport.Transport
	chain     networks.Chain
	account   accounts.Account
}

type Option func(*WalletClient)

func WithChain(chain networks.Chain) Option {
	return func(c *WalletClient) {
		c.chain = chain
	}
}

func WithAccount(account accounts.Account) Option {
	return func(c *WalletClient) {
		c.account = account
	}
}

func NewWalletClient(t transport.Transport, opts ...Option) *WalletClient {
	c := &WalletClient{transport: t}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *WalletClient) Chain() networks.Chain {
	return c.chain
}

func (c *WalletClient) Account() accounts.Account {
	return c.account
}

func (c *WalletClient) Transport() transport.Transport {
	return c.transport
}

func (c *WalletClient) Close() {
	c.transport.Close()
}

// resolveAccount picks the call account, else the client one. Local
// accounts that can't sign are rejected here, before any request.
func (c *WalletClient) resolveAccount(account accounts.Account) (accounts.Account, error) {
	if account == nil {
		account = c.account
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	if _, err := localSigner(account); err != nil {
		return nil, err
	}
	return account, nil
}

func (c *WalletClient) resolveChain(chain networks.Chain) networks.Chain {
	if chain != nil {
		return chain
	}
	return c.chain
}
