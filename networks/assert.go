package networks

import (
	"errors"
	"fmt"
)

var ErrChainMismatch = errors.New("chain mismatch")

// ChainMismatchError is returned when the node serves a different chain
// than the one a transaction is meant for.
type ChainMismatchError struct {
	ChainID        uint64
	Name           string
	CurrentChainID uint64
}

func (e *ChainMismatchError) Error() string {
	target := fmt.Sprintf("id: %d", e.ChainID)
	if e.Name != "" {
		target = fmt.Sprintf("id: %d - %s", e.ChainID, e.Name)
	}
	return fmt.Sprintf(
		"the current chain of the wallet (id: %d) does not match the target chain for the transaction (%s)",
		e.CurrentChainID, target,
	)
}

func (e *ChainMismatchError) Is(target error) bool {
	return target == ErrChainMismatch
}

// AssertCurrentChain fails with ErrChainNotFound when chain is nil and
// with a *ChainMismatchError when the ids differ.
func AssertCurrentChain(chain Chain, currentChainID uint64) error {
	if chain == nil {
		return ErrChainNotFound
	}
	if chain.ID() != currentChainID {
		return &ChainMismatchError{
			ChainID:        chain.ID(),
			Name:           chain.Name(),
			CurrentChainID: currentChainID,
		}
	}
	return nil
}
