package transport

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/rpc"
)

// RPCError is a JSON-RPC error object returned by the node.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("json-rpc error %d", e.Code)
	}
	return e.Message
}

func (e *RPCError) ErrorCode() int {
	return e.Code
}

func (e *RPCError) ErrorData() any {
	return e.Data
}

var (
	_ rpc.Error     = (*RPCError)(nil)
	_ rpc.DataError = (*RPCError)(nil)
)

// HTTPRequestError is returned when the node answers with a non 2xx
// status and no JSON-RPC error in the body.
type HTTPRequestError struct {
	URL    string
	Status int
	Body   string
}

func (e *HTTPRequestError) Error() string {
	return fmt.Sprintf("http request to %s failed with status %d: %s", e.URL, e.Status, e.Body)
}

// fromRPCError converts the errors of go-ethereum clients that carry a
// JSON-RPC code into *RPCError.
func fromRPCError(err error) error {
	if err == nil {
		return nil
	}
	var coded rpc.Error
	if !errors.As(err, &coded) {
		return err
	}
	result := &RPCError{Code: coded.ErrorCode(), Message: coded.Error()}
	var withData rpc.DataError
	if errors.As(err, &withData) {
		result.Data = withData.ErrorData()
	}
	return result
}

type jsonrpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type jsonrpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}
