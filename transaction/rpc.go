package transaction

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
)

// RPCRequest is the hex encoded transaction object used by
// eth_signTransaction, eth_sendTransaction and eth_estimateGas.
type RPCRequest struct {
	ChainID              *hexutil.Uint64              `json:"chainId,omitempty"`
	Type                 *hexutil.Uint64              `json:"type,omitempty"`
	From                 *common.Address              `json:"from,omitempty"`
	To                   *common.Address              `json:"to,omitempty"`
	Gas                  *hexutil.Uint64              `json:"gas,omitempty"`
	GasPrice             *hexutil.Big                 `json:"gasPrice,omitempty"`
	MaxFeePerGas         *hexutil.Big                 `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *hexutil.Big                 `json:"maxPriorityFeePerGas,omitempty"`
	Value                *hexutil.Big                 `json:"value,omitempty"`
	Nonce                *hexutil.Uint64              `json:"nonce,omitempty"`
	Data                 *hexutil.Bytes               `json:"data,omitempty"`
	AccessList           *types.AccessList            `json:"accessList,omitempty"`
	AuthorizationList    []types.SetCodeAuthorization `json:"authorizationList,omitempty"`

	// Extra holds chain specific fields, merged into the JSON object.
	// Standard fields win on a name clash.
	Extra map[string]any `json:"-"`
}

type rpcRequestAlias RPCRequest

func (r RPCRequest) MarshalJSON() ([]byte, error) {
	standard, err := json.Marshal(rpcRequestAlias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return standard, nil
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(standard, &fields); err != nil {
		return nil, err
	}
	for key, value := range r.Extra {
		if _, found := fields[key]; found {
			continue
		}
		encoded, err := json.Marshal(hexValue(value))
		if err != nil {
			return nil, err
		}
		fields[key] = encoded
	}
	return json.Marshal(fields)
}

func (r *RPCRequest) SetChainID(id uint64) {
	r.ChainID = (*hexutil.Uint64)(&id)
}

// Formatter maps a request onto its RPC shape. Chains with custom
// request fields provide their own.
type Formatter interface {
	Format(req Request) RPCRequest
}

type FormatterFunc func(req Request) RPCRequest

func (f FormatterFunc) Format(req Request) RPCRequest {
	return f(req)
}

var DefaultFormatter Formatter = FormatterFunc(FormatRequest)

// FormatRequest hex encodes every set field of req. Unset fields are
// left out of the result. Extra fields are passed through, byte slices
// and big ints among them hex encoded.
func FormatRequest(req Request) RPCRequest {
	result := RPCRequest{
		From:                 req.From,
		To:                   req.To,
		Gas:                  (*hexutil.Uint64)(req.Gas),
		GasPrice:             toHexBig(req.GasPrice),
		MaxFeePerGas:         toHexBig(req.MaxFeePerGas),
		MaxPriorityFeePerGas: toHexBig(req.MaxPriorityFeePerGas),
		Value:                toHexBig(req.Value),
		Nonce:                (*hexutil.Uint64)(req.Nonce),
		AuthorizationList:    req.AuthorizationList,
	}
	if req.Type != "" {
		if t, found := rpcTypes[req.Type]; found {
			result.Type = (*hexutil.Uint64)(&t)
		}
	}
	if req.Data != nil {
		data := hexutil.Bytes(req.Data)
		result.Data = &data
	}
	if req.AccessList != nil {
		accessList := req.AccessList
		result.AccessList = &accessList
	}
	if len(req.Extra) > 0 {
		result.Extra = make(map[string]any, len(req.Extra))
		for k, v := range req.Extra {
			result.Extra[k] = hexValue(v)
		}
	}
	return result
}

func hexValue(v any) any {
	switch value := v.(type) {
	case []byte:
		return hexutil.Bytes(value)
	case *big.Int:
		return toHexBig(value)
	case uint64:
		return hexutil.Uint64(value)
	}
	return v
}

func toHexBig(v *big.Int) *hexutil.Big {
	if v == nil {
		return nil
	}
	return (*hexutil.Big)(v)
}

// NewExtraFieldsFormatter formats with base, then keeps only the named
// extra fields. A nil base means DefaultFormatter.
func NewExtraFieldsFormatter(base Formatter, keys ...string) Formatter {
	if base == nil {
		base = DefaultFormatter
	}
	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[k] = true
	}
	return FormatterFunc(func(req Request) RPCRequest {
		result := base.Format(req)
		for k := range result.Extra {
			if !allowed[k] {
				delete(result.Extra, k)
			}
		}
		return result
	})
}
