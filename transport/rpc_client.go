package transport

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/tranvictor/walletclient/logger"
)

// RPCClient adapts a go-ethereum rpc.Client, which covers WebSocket, IPC
// and in-process connections.
type RPCClient struct {
	client  *rpc.Client
	timeout time.Duration
	info    Info
}

func NewRPCClient(client *rpc.Client, config Config) *RPCClient {
	key := config.Key
	if key == "" {
		key = TypeRPC
	}
	name := config.Name
	if name == "" {
		name = "go-ethereum RPC client"
	}
	return &RPCClient{
		client:  client,
		timeout: config.timeout(),
		info:    Info{Key: key, Name: name, Type: TypeRPC},
	}
}

// DialWebSocket connects to a ws:// or wss:// endpoint.
func DialWebSocket(ctx context.Context, url string, config Config) (*RPCClient, error) {
	var (
		client *rpc.Client
		err    error
	)
	if len(config.Headers) == 0 {
		client, err = rpc.DialWebsocket(ctx, url, "")
	} else {
		headers := http.Header{}
		for k, v := range config.Headers {
			headers.Set(k, v)
		}
		client, err = rpc.DialOptions(ctx, url, rpc.WithHeaders(headers))
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to %s: %w", url, err)
	}

	if config.Key == "" {
		config.Key = TypeWebSocket
	}
	if config.Name == "" {
		config.Name = "WebSocket JSON-RPC"
	}
	t := NewRPCClient(client, config)
	t.info.Type = TypeWebSocket
	t.info.URL = url
	return t, nil
}

func (c *RPCClient) Request(ctx context.Context, result any, method string, params ...any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	logger.Debug("-> %s %s", c.info.Key, method)
	return fromRPCError(c.client.CallContext(ctx, result, method, params...))
}

func (c *RPCClient) Info() Info {
	return c.info
}

func (c *RPCClient) Close() {
	c.client.Close()
}
