package transaction

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	ErrFeeConflict                    = errors.New("cannot specify both gasPrice and maxFeePerGas/maxPriorityFeePerGas")
	ErrFeeCapTooHigh                  = errors.New("maxFeePerGas cannot be higher than 2^256-1")
	ErrTipAboveFeeCap                 = errors.New("maxPriorityFeePerGas cannot be higher than maxFeePerGas")
	ErrNegativeValue                  = errors.New("value and fee fields must not be negative")
	ErrDataInputConflict              = errors.New(`both "data" and "input" are set and not equal`)
	ErrInvalidChainID                 = errors.New("chain id must be positive")
	ErrInvalidSerializableTransaction = errors.New("transaction is not serializable")
	ErrInvalidType                    = errors.New("invalid transaction type")
)

type FeeCapTooHighError struct {
	MaxFeePerGas *big.Int
}

func (e *FeeCapTooHighError) Error() string {
	return fmt.Sprintf("%s: got %s", ErrFeeCapTooHigh, e.MaxFeePerGas)
}

func (e *FeeCapTooHighError) Is(target error) bool {
	return target == ErrFeeCapTooHigh
}

type TipAboveFeeCapError struct {
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

func (e *TipAboveFeeCapError) Error() string {
	return fmt.Sprintf("%s: tip %s > fee cap %s", ErrTipAboveFeeCap, e.MaxPriorityFeePerGas, e.MaxFeePerGas)
}

func (e *TipAboveFeeCapError) Is(target error) bool {
	return target == ErrTipAboveFeeCap
}

type InvalidSerializableTransactionError struct {
	Type   Type
	Reason string
}

func (e *InvalidSerializableTransactionError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("%s: %s", ErrInvalidSerializableTransaction, e.Reason)
	}
	return fmt.Sprintf("%s (%s): %s", ErrInvalidSerializableTransaction, e.Type, e.Reason)
}

func (e *InvalidSerializableTransactionError) Is(target error) bool {
	return target == ErrInvalidSerializableTransaction
}

type InvalidTypeError struct {
	Type string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidType, e.Type)
}

func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType
}
