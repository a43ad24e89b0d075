package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

const (
	testAPIKey     = "test-api-key"
	testInvestorID = "123"
)

// newTestServer starts a server that checks the request line and answers
// with status and body.
func newTestServer(t *testing.T, method, path string, status int, body string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, method, r.Method)
		assert.Equal(t, path, r.URL.Path)
		assert.Equal(t, testAPIKey, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server
}

// NewTestClient creates a client with an investor ID against baseURL.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&lendingclub.Config{
		APIKey:     testAPIKey,
		InvestorID: testInvestorID,
		Endpoint:   baseURL,
	})
	require.NoError(t, err)

	return client
}

// decodeBody reads a JSON request body keeping numbers exact. It runs in
// handler goroutines, so it reports with assert rather than require.
func decodeBody(t *testing.T, r *http.Request) map[string]interface{} {
	t.Helper()

	data, err := io.ReadAll(r.Body)
	assert.NoError(t, err)

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var body map[string]interface{}

	assert.NoError(t, decoder.Decode(&body))

	return body
}
