package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/walletclient/internal/testnode"
)

func TestHTTPRequest(t *testing.T) {
	node := testnode.New(t, 31337)
	tr := NewHTTP(node.URL, Config{})

	var id hexutil.Uint64
	require.NoError(t, tr.Request(context.Background(), &id, "eth_chainId"))
	assert.Equal(t, uint64(31337), uint64(id))
	assert.Equal(t, []string{"eth_chainId"}, node.Calls())

	info := tr.Info()
	assert.Equal(t, TypeHTTP, info.Type)
	assert.Equal(t, node.URL, info.URL)
}

func TestHTTPConcurrentRequests(t *testing.T) {
	node := testnode.New(t, 1)
	tr := NewHTTP(node.URL, Config{})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var id hexutil.Uint64
			assert.NoError(t, tr.Request(context.Background(), &id, "eth_chainId"))
			assert.Equal(t, uint64(1), uint64(id))
		}()
	}
	wg.Wait()
	assert.Len(t, node.Calls(), 10)
}

func TestHTTPRPCError(t *testing.T) {
	node := testnode.New(t, 1)
	node.Failures["eth_signTransaction"] = &testnode.Error{Code: 3, Message: "execution reverted", Data: "0x08c379a0"}
	tr := NewHTTP(node.URL, Config{})

	err := tr.Request(context.Background(), nil, "eth_signTransaction", map[string]any{})
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, 3, rpcErr.Code)
	assert.Equal(t, "execution reverted", rpcErr.Message)
	assert.Equal(t, "0x08c379a0", rpcErr.Data)
}

func TestHTTPUnknownMethod(t *testing.T) {
	node := testnode.New(t, 1)
	tr := NewHTTP(node.URL, Config{})

	err := tr.Request(context.Background(), nil, "eth_nope")
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32601, rpcErr.Code)
}

func TestHTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	err := NewHTTP(server.URL, Config{}).Request(context.Background(), nil, "eth_chainId")
	var httpErr *HTTPRequestError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadGateway, httpErr.Status)
	assert.Equal(t, "upstream down", httpErr.Body)
}

func TestHTTPHeaders(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"0x1"}`))
	}))
	defer server.Close()

	tr := NewHTTP(server.URL, Config{Headers: map[string]string{"Authorization": "Bearer t"}})
	var id hexutil.Uint64
	require.NoError(t, tr.Request(context.Background(), &id, "eth_chainId"))
	assert.Equal(t, "Bearer t", got)
	assert.Equal(t, uint64(1), uint64(id))
}

func TestHTTPContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := NewHTTP(server.URL, Config{}).Request(ctx, nil, "eth_chainId")
	assert.Error(t, err)
}

func TestWebSocket(t *testing.T) {
	node := testnode.New(t, 56)
	tr, err := DialWebSocket(context.Background(), node.WSURL, Config{})
	require.NoError(t, err)
	defer tr.Close()

	var id hexutil.Uint64
	require.NoError(t, tr.Request(context.Background(), &id, "eth_chainId"))
	assert.Equal(t, uint64(56), uint64(id))
	assert.Equal(t, TypeWebSocket, tr.Info().Type)

	node.Failures["eth_gasPrice"] = &testnode.Error{Code: -32000, Message: "no gas price"}
	err = tr.Request(context.Background(), nil, "eth_gasPrice")
	var rpcErr *RPCError
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, -32000, rpcErr.Code)
}

func TestDial(t *testing.T) {
	node := testnode.New(t, 1)

	tr, err := Dial(context.Background(), node.URL, Config{})
	require.NoError(t, err)
	assert.Equal(t, TypeHTTP, tr.Info().Type)

	tr, err = Dial(context.Background(), node.WSURL, Config{})
	require.NoError(t, err)
	defer tr.Close()
	assert.Equal(t, TypeWebSocket, tr.Info().Type)

	_, err = Dial(context.Background(), "ftp://example.com", Config{})
	assert.ErrorIs(t, err, ErrUnsupportedURL)

	_, err = Dial(context.Background(), "", Config{})
	assert.ErrorIs(t, err, ErrUnsupportedURL)
}
