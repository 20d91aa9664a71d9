package transport

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

const (
	TypeHTTP      = "http"
	TypeWebSocket = "webSocket"
	TypeRPC       = "rpc"

	DefaultTimeout = 10 * time.Second
)

var ErrUnsupportedURL = errors.New("unsupported node url")

// Transport sends JSON-RPC requests to a single node.
type Transport interface {
	// Request calls method with params and decodes the result into
	// result, which may be nil when the caller doesn't need it.
	Request(ctx context.Context, result any, method string, params ...any) error
	Info() Info
	Close()
}

type Info struct {
	Key  string
	Name string
	Type string
	URL  string
}

type Config struct {
	// Timeout bounds every request, zero means DefaultTimeout.
	Timeout time.Duration
	Headers map[string]string
	Key     string
	Name    string
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// Dial picks the transport from the scheme of url: http(s) goes through
// NewHTTP, ws(s) through DialWebSocket and anything else is handed to
// rpc.DialContext which treats it as an IPC path.
func Dial(ctx context.Context, url string, config Config) (Transport, error) {
	switch {
	case url == "":
		return nil, fmt.Errorf("empty url: %w", ErrUnsupportedURL)
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return NewHTTP(url, config), nil
	case strings.HasPrefix(url, "ws://"), strings.HasPrefix(url, "wss://"):
		return DialWebSocket(ctx, url, config)
	case strings.Contains(url, "://"):
		return nil, fmt.Errorf("%s: %w", url, ErrUnsupportedURL)
	}
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to %s: %w", url, err)
	}
	t := NewRPCClient(client, config)
	t.info.URL = url
	return t, nil
}
