package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/tranvictor/walletclient/logger"
)

// HTTP posts JSON-RPC 2.0 requests to one node. It is safe for
// concurrent use.
type HTTP struct {
	url    string
	client *resty.Client
	nextID atomic.Uint64
	info   Info
}

func NewHTTP(url string, config Config) *HTTP {
	client := resty.New().
		SetTimeout(config.timeout()).
		SetHeader("Content-Type", "application/json").
		SetHeaders(config.Headers)

	key := config.Key
	if key == "" {
		key = TypeHTTP
	}
	name := config.Name
	if name == "" {
		name = "HTTP JSON-RPC"
	}
	return &HTTP{
		url:    url,
		client: client,
		info:   Info{Key: key, Name: name, Type: TypeHTTP, URL: url},
	}
}

func (h *HTTP) Request(ctx context.Context, result any, method string, params ...any) error {
	if params == nil {
		params = []any{}
	}
	body := jsonrpcRequest{
		JSONRPC: "2.0",
		ID:      h.nextID.Add(1),
		Method:  method,
		Params:  params,
	}
	logger.Debug("-> %s %s (id %d)", h.url, method, body.ID)

	httpResp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		Post(h.url)
	if err != nil {
		return fmt.Errorf("request %s to %s failed: %w", method, h.url, err)
	}

	response := jsonrpcResponse{}
	if err := json.Unmarshal(httpResp.Body(), &response); err != nil {
		if httpResp.IsError() {
			return &HTTPRequestError{URL: h.url, Status: httpResp.StatusCode(), Body: httpResp.String()}
		}
		return fmt.Errorf("invalid json-rpc response from %s: %w", h.url, err)
	}
	if response.Error != nil {
		return response.Error
	}
	if httpResp.IsError() {
		return &HTTPRequestError{URL: h.url, Status: httpResp.StatusCode(), Body: httpResp.String()}
	}
	if result == nil || len(response.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(response.Result, result); err != nil {
		return fmt.Errorf("couldn't decode %s result: %w", method, err)
	}
	return nil
}

func (h *HTTP) Info() Info {
	return h.info
}

func (h *HTTP) Close() {}
