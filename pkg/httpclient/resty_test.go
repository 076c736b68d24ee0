package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Symbol string `json:"symbol"`
	Method string `json:"method"`
}

func TestRestyClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "value", r.Header.Get("X-Test"))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(echoPayload{Symbol: r.URL.Query().Get("symbol"), Method: r.Method})
	}))
	defer srv.Close()

	client := New(Options{BaseURL: srv.URL, Timeout: time.Second})

	var out echoPayload
	resp, err := client.Get(context.Background(), "/query", map[string]string{"symbol": "IBM"}, map[string]string{"X-Test": "value"}, &out)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, echoPayload{Symbol: "IBM", Method: http.MethodGet}, out)
}

func TestRestyClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in echoPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.Method = r.Method
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(in)
	}))
	defer srv.Close()

	client := New(Options{BaseURL: srv.URL, Timeout: time.Second})

	var out echoPayload
	resp, err := client.Post(context.Background(), "/", echoPayload{Symbol: "AAPL"}, nil, &out)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, echoPayload{Symbol: "AAPL", Method: http.MethodPost}, out)
}

func TestRestyClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := New(Options{BaseURL: srv.URL, Timeout: time.Second, RetryCount: 3, RetryWait: time.Millisecond})

	resp, err := client.Get(context.Background(), "/", nil, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}
