package accounts

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sahilm/fuzzy"

	"github.com/tranvictor/walletclient/logger"
)

const (
	KindKeystore = "keystore"
	KindKeyFile  = "keyfile"
	KindJSONRPC  = "json-rpc"
)

var ErrAccountRecordNotFound = errors.New("no account record found")

// Record describes a known account. Records are stored one per json
// file named after the address.
type Record struct {
	Address string `json:"address"`
	Kind    string `json:"kind"`
	Keypath string `json:"keypath,omitempty"`
	Desc    string `json:"desc"`
}

func StoreRecord(dir string, record Record) (string, error) {
	if !common.IsHexAddress(record.Address) {
		return "", fmt.Errorf("'%s': %w", record.Address, ErrInvalidAddress)
	}
	record.Address = common.HexToAddress(record.Address).Hex()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	content, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s.json", record.Address))
	return path, os.WriteFile(path, content, 0600)
}

// LoadRecords reads every record in dir sorted by address. Files that
// don't parse are skipped.
func LoadRecords(dir string) ([]Record, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("getting accounts failed: %w", err)
	}
	result := []Record{}
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			logger.Warn("Reading account record %s failed: %s. Ignore and continue.", p, err)
			continue
		}
		record := Record{}
		if err := json.Unmarshal(content, &record); err != nil || !common.IsHexAddress(record.Address) {
			logger.Warn("Account record %s is invalid. Ignore and continue.", p)
			continue
		}
		result = append(result, record)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Address < result[j].Address })
	return result, nil
}

type fuzzySource []Record

func (s fuzzySource) Len() int {
	return len(s)
}

func (s fuzzySource) String(i int) string {
	return fmt.Sprintf("%s_%s", s[i].Address, strings.ReplaceAll(s[i].Desc, " ", "_"))
}

// FindRecord returns the best fuzzy match of input against the address
// and description of records.
func FindRecord(records []Record, input string) (Record, error) {
	matches := fuzzy.FindFrom(strings.ReplaceAll(strings.TrimSpace(input), " ", "_"), fuzzySource(records))
	if len(matches) == 0 {
		return Record{}, fmt.Errorf("'%s': %w", input, ErrAccountRecordNotFound)
	}
	return records[matches[0].Index], nil
}

// Open turns a record into an Account. password is only used by
// keystore records.
func (r Record) Open(password string) (Account, error) {
	var (
		acc Account
		err error
	)
	switch r.Kind {
	case KindKeystore:
		acc, err = FromKeystore(r.Keypath, password)
	case KindKeyFile:
		acc, err = FromKeyFile(r.Keypath)
	case KindJSONRPC, "":
		acc, err = ParseAccount(r.Address)
	default:
		return nil, fmt.Errorf("unknown account kind %q", r.Kind)
	}
	if err != nil {
		return nil, err
	}
	return acc, nil
}
