package common

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

const (
	EtherDecimals int32 = 18
	GweiDecimals  int32 = 9
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrInvalidAmount  = errors.New("invalid amount")
)

// NumberToHex returns the minimal 0x prefixed hex form of n, 0 is "0x0".
func NumberToHex(n uint64) string {
	return hexutil.EncodeUint64(n)
}

func BigToHex(n *big.Int) string {
	if n == nil {
		return "0x0"
	}
	return hexutil.EncodeBig(n)
}

func HexToBig(hex string) (*big.Int, error) {
	result, err := hexutil.DecodeBig(hex)
	if err != nil {
		return nil, fmt.Errorf("couldn't decode %q: %w", hex, err)
	}
	return result, nil
}

func HexToUint64(hex string) (uint64, error) {
	result, err := hexutil.DecodeUint64(hex)
	if err != nil {
		return 0, fmt.Errorf("couldn't decode %q: %w", hex, err)
	}
	return result, nil
}

// ParseUnits converts a decimal string into its integer representation
// with the given number of decimals.
// Example:
// - ParseUnits("1", 4) = 10000
// - ParseUnits("1.234", 4) = 12340
func ParseUnits(amount string, decimals int32) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidAmount, err)
	}
	if d.IsNegative() {
		return nil, ErrNegativeAmount
	}
	if -d.Exponent() > decimals {
		// a value like 1.0000 is still fine
		if !d.Equal(d.Truncate(decimals)) {
			return nil, fmt.Errorf("%w: %s has more than %d decimals", ErrInvalidAmount, amount, decimals)
		}
	}
	return d.Shift(decimals).BigInt(), nil
}

// FormatUnits is the reverse of ParseUnits, trailing zeros are dropped.
// Example:
// - FormatUnits(1100, 3) = "1.1"
// - FormatUnits(1100, 5) = "0.011"
func FormatUnits(value *big.Int, decimals int32) string {
	if value == nil {
		return "0"
	}
	return decimal.NewFromBigInt(value, -decimals).String()
}

func ParseEther(amount string) (*big.Int, error) {
	return ParseUnits(amount, EtherDecimals)
}

func ParseGwei(amount string) (*big.Int, error) {
	return ParseUnits(amount, GweiDecimals)
}

func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}

func FormatGwei(wei *big.Int) string {
	return FormatUnits(wei, GweiDecimals)
}
