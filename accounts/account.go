package accounts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/tranvictor/walletclient/transaction"
)

type AccountType string

const (
	AccountTypeLocal   AccountType = "local"
	AccountTypeJSONRPC AccountType = "json-rpc"
)

var ErrInvalidAddress = errors.New("invalid address")

// Account is either a local account, which signs in-process, or a
// *JSONRPCAccount whose key is held by the node.
type Account interface {
	Address() common.Address
	Type() AccountType
}

// LocalSigner is implemented by every account of type AccountTypeLocal.
// *LocalAccount is the built-in one.
type LocalSigner interface {
	Account
	SignTransaction(tx transaction.Serializable, serializer transaction.Serializer) (string, error)
}

// JSONRPCAccount is an address whose transactions are signed by the
// node through eth_signTransaction.
type JSONRPCAccount struct {
	address common.Address
}

func FromAddress(address common.Address) *JSONRPCAccount {
	return &JSONRPCAccount{address: address}
}

// ParseAccount accepts a 0x prefixed 20 bytes hex address.
func ParseAccount(address string) (*JSONRPCAccount, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) || !strings.HasPrefix(strings.ToLower(address), "0x") {
		return nil, fmt.Errorf("'%s': %w", address, ErrInvalidAddress)
	}
	return FromAddress(common.HexToAddress(address)), nil
}

func (a *JSONRPCAccount) Address() common.Address {
	return a.address
}

func (a *JSONRPCAccount) Type() AccountType {
	return AccountTypeJSONRPC
}

func (a *JSONRPCAccount) String() string {
	return a.address.Hex()
}
