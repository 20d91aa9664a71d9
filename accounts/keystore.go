package accounts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gethkeystore "github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
)

// StorePrivateKeyWithKeystore encrypts privateKey with passphrase and
// writes it to <dir>/<address>.json.
func StorePrivateKeyWithKeystore(privateKey string, passphrase string, dir string) (string, error) {
	return storeKeystore(privateKey, passphrase, dir, gethkeystore.StandardScryptN, gethkeystore.StandardScryptP)
}

func storeKeystore(privateKey, passphrase, dir string, scryptN, scryptP int) (string, error) {
	priv, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(privateKey), "0x"))
	if err != nil {
		return "", fmt.Errorf("invalid private key: %w", err)
	}
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	key := &gethkeystore.Key{
		Id:         id,
		Address:    crypto.PubkeyToAddress(priv.PublicKey),
		PrivateKey: priv,
	}

	keystoreJSON, err := gethkeystore.EncryptKey(key, passphrase, scryptN, scryptP)
	if err != nil {
		return "", fmt.Errorf("couldn't encrypt the key: %w", err)
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.json", key.Address.Hex()))
	return path, os.WriteFile(path, keystoreJSON, 0600)
}

// VerifyKeystore returns the address a keystore file is for without
// decrypting it.
func VerifyKeystore(path string) (common.Address, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return common.Address{}, err
	}
	k := struct {
		Address string `json:"address"`
	}{}
	if err := json.Unmarshal(content, &k); err != nil {
		return common.Address{}, fmt.Errorf("invalid keystore %s: %w", path, err)
	}
	if !common.IsHexAddress(k.Address) {
		return common.Address{}, fmt.Errorf("keystore %s: %w", path, ErrInvalidAddress)
	}
	return common.HexToAddress(k.Address), nil
}
