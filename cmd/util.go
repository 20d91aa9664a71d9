package cmd

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/tranvictor/walletclient/accounts"
	"github.com/tranvictor/walletclient/client"
	wcommon "github.com/tranvictor/walletclient/common"
	"github.com/tranvictor/walletclient/config"
	"github.com/tranvictor/walletclient/logger"
	"github.com/tranvictor/walletclient/networks"
	"github.com/tranvictor/walletclient/transaction"
	"github.com/tranvictor/walletclient/transport"
	"github.com/tranvictor/walletclient/ui"
)

var appUI ui.UI = ui.NewTerminalUI()

var ErrNoNode = errors.New("no node configured for the chain")

// loadConfig merges, from lowest to highest priority, the defaults, the
// --config file, WALLETCLIENT_* env vars and the flags.
func loadConfig() (*config.Config, error) {
	cfg := config.NewConfig()
	if config.ConfigFile != "" {
		if err := cfg.LoadFile(config.ConfigFile); err != nil {
			return nil, err
		}
	}
	cfg.LoadFromEnvironment()
	if config.Network != "" {
		cfg.Network = config.Network
	}
	if config.NodeURL != "" {
		cfg.NodeURL = config.NodeURL
	}
	if config.PrivateKey != "" {
		cfg.PrivateKey = config.PrivateKey
	}
	if config.KeystorePath != "" {
		cfg.KeystorePath = config.KeystorePath
	}
	cfg.Debug = cfg.Debug || config.Debug
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveChain(cfg *config.Config) (networks.Chain, error) {
	if n, err := networks.LoadCustomChains(cfg.ChainsDir); err != nil {
		logger.Warn("Loading custom chains failed: %s", err)
	} else if n > 0 {
		logger.Debug("Loaded %d custom chains from %s", n, cfg.ChainsDir)
	}
	return networks.GetChain(cfg.Network)
}

// nodeURL picks --node, then the configured node of the chain, then the
// first of the chain's default nodes by name.
func nodeURL(cfg *config.Config, chain networks.Chain) (string, error) {
	if cfg.NodeURL != "" {
		return cfg.NodeURL, nil
	}
	if url, found := cfg.Nodes[chain.Name()]; found {
		return url, nil
	}
	nodes := chain.DefaultNodes()
	names := make([]string, 0, len(nodes))
	for name := range nodes {
		names = append(names, name)
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%s: %w", chain.Name(), ErrNoNode)
	}
	sort.Strings(names)
	logger.Debug("Using node %s of %s", names[0], chain.Name())
	return nodes[names[0]], nil
}

type session struct {
	cfg    *config.Config
	chain  networks.Chain
	client *client.WalletClient
}

// newSession resolves the config, chain, node and account shared by
// the transactional commands. A missing account is not an error here,
// the client reports it when it is needed.
func newSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	chain, err := resolveChain(cfg)
	if err != nil {
		return nil, err
	}
	url, err := nodeURL(cfg, chain)
	if err != nil {
		return nil, err
	}
	t, err := transport.Dial(ctx, url, transport.Config{Timeout: cfg.RequestTimeout, Name: chain.Name()})
	if err != nil {
		return nil, err
	}
	account, err := resolveAccount(cfg)
	if err != nil {
		t.Close()
		return nil, err
	}

	opts := []client.Option{client.WithChain(chain)}
	if account != nil {
		opts = append(opts, client.WithAccount(account))
	}
	return &session{cfg: cfg, chain: chain, client: client.NewWalletClient(t, opts...)}, nil
}

func (s *session) Close() {
	s.client.Close()
}

// resolveAccount opens, in order, the private key, the keystore and the
// --from account. --from is either an address signed for by the node or
// a hint matched against the stored account records.
func resolveAccount(cfg *config.Config) (accounts.Account, error) {
	switch {
	case cfg.PrivateKey != "":
		return accounts.PrivateKeyToAccount(cfg.PrivateKey)
	case cfg.KeystorePath != "":
		pwd, err := appUI.Password(fmt.Sprintf("Passphrase of %s: ", cfg.KeystorePath))
		if err != nil {
			return nil, err
		}
		return accounts.FromKeystore(cfg.KeystorePath, pwd)
	case config.From == "":
		return nil, nil
	}

	if common.IsHexAddress(config.From) {
		return accounts.ParseAccount(config.From)
	}
	records, err := accounts.LoadRecords(cfg.AccountsDir)
	if err != nil {
		return nil, err
	}
	record, err := accounts.FindRecord(records, config.From)
	if err != nil {
		return nil, err
	}
	appUI.Info("Using account %s (%s)", record.Address, record.Desc)
	pwd := ""
	if record.Kind == accounts.KindKeystore {
		if pwd, err = appUI.Password(fmt.Sprintf("Passphrase of %s: ", record.Keypath)); err != nil {
			return nil, err
		}
	}
	return record.Open(pwd)
}

func parseOptionalAmount(value string, decimals int32) (*big.Int, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	return wcommon.ParseUnits(value, decimals)
}

// buildRequest turns the transaction flags into a request. Unset flags
// leave their field unset.
func buildRequest() (transaction.Request, error) {
	req := transaction.Request{}
	var err error

	if config.To != "" {
		if !common.IsHexAddress(config.To) {
			return req, fmt.Errorf("--to '%s': %w", config.To, accounts.ErrInvalidAddress)
		}
		to := common.HexToAddress(config.To)
		req.To = &to
	}
	if req.Value, err = parseOptionalAmount(config.Value, wcommon.EtherDecimals); err != nil {
		return req, fmt.Errorf("--value: %w", err)
	}
	if req.GasPrice, err = parseOptionalAmount(config.GasPrice, wcommon.GweiDecimals); err != nil {
		return req, fmt.Errorf("--gas-price: %w", err)
	}
	if req.MaxFeePerGas, err = parseOptionalAmount(config.MaxFeePerGas, wcommon.GweiDecimals); err != nil {
		return req, fmt.Errorf("--max-fee: %w", err)
	}
	if req.MaxPriorityFeePerGas, err = parseOptionalAmount(config.MaxPriorityFeePerGas, wcommon.GweiDecimals); err != nil {
		return req, fmt.Errorf("--max-priority-fee: %w", err)
	}
	if config.GasLimit > 0 {
		req.Gas = transaction.Uint64(config.GasLimit)
	}
	if config.Nonce >= 0 {
		req.Nonce = transaction.Uint64(uint64(config.Nonce))
	}
	if config.Data != "" {
		if req.Data, err = hexutil.Decode(config.Data); err != nil {
			return req, fmt.Errorf("--data: %w", err)
		}
	}
	if config.TxType != "" {
		if req.Type, err = transaction.ParseType(config.TxType); err != nil {
			return req, err
		}
	}
	return req, nil
}
