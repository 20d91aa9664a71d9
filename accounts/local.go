package accounts

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/tranvictor/walletclient/transaction"
)

// LocalAccount holds a signer in-process. Signing never touches the
// network.
type LocalAccount struct {
	signer  Signer
	address common.Address
}

func NewLocalAccount(signer Signer, address common.Address) *LocalAccount {
	return &LocalAccount{signer: signer, address: address}
}

func (a *LocalAccount) Address() common.Address {
	return a.address
}

func (a *LocalAccount) Type() AccountType {
	return AccountTypeLocal
}

func (a *LocalAccount) String() string {
	return a.address.Hex()
}

// SignTransaction builds tx, signs it for tx.ChainID and returns the 0x
// hex of its serialization. A nil serializer means
// transaction.DefaultSerializer.
func (a *LocalAccount) SignTransaction(tx transaction.Serializable, serializer transaction.Serializer) (string, error) {
	if serializer == nil {
		serializer = transaction.DefaultSerializer
	}
	unsigned, err := tx.Transaction()
	if err != nil {
		return "", err
	}
	signed, err := a.signer.SignTx(unsigned, new(big.Int).SetUint64(tx.ChainID))
	if err != nil {
		return "", fmt.Errorf("couldn't sign the tx: %w", err)
	}
	data, err := serializer.Serialize(signed)
	if err != nil {
		return "", fmt.Errorf("couldn't serialize the signed tx: %w", err)
	}
	return hexutil.Encode(data), nil
}

func fromKey(key *ecdsa.PrivateKey) *LocalAccount {
	return NewLocalAccount(NewKeySigner(key), crypto.PubkeyToAddress(key.PublicKey))
}

// PrivateKeyToAccount works with both 0x prefix form and naked form
func PrivateKeyToAccount(hex string) (*LocalAccount, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return fromKey(key), nil
}

// FromKeyFile reads a file holding a hex encoded private key.
func FromKeyFile(path string) (*LocalAccount, error) {
	key, err := crypto.LoadECDSA(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't load private key from %s: %w", path, err)
	}
	return fromKey(key), nil
}

func FromKeystore(path string, password string) (*LocalAccount, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	key, err := keystore.DecryptKey(content, password)
	if err != nil {
		return nil, fmt.Errorf("unlocking keystore '%s' failed: %w", path, err)
	}
	return fromKey(key.PrivateKey), nil
}
