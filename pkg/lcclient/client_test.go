package lcclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lendingclub/pkg/lcclient"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := lcclient.New(&lendingclub.Config{APIKey: "key", InvestorID: "12345"})
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.NotNil(t, client.Account())
		assert.NotNil(t, client.Loans())
		assert.Equal(t, "12345", client.InvestorID())
	})

	t.Run("requires config", func(t *testing.T) {
		t.Parallel()

		_, err := lcclient.New(nil)
		require.ErrorIs(t, err, lendingclub.ErrConfigRequired)
	})

	t.Run("requires investor ID", func(t *testing.T) {
		t.Parallel()

		_, err := lcclient.New(&lendingclub.Config{APIKey: "key"})
		require.ErrorIs(t, err, lendingclub.ErrInvestorIDRequired)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := lcclient.New(&lendingclub.Config{InvestorID: "12345"})
		require.ErrorIs(t, err, lendingclub.ErrAPIKeyRequired)
	})

	t.Run("rejects malformed investor ID", func(t *testing.T) {
		t.Parallel()

		_, err := lcclient.New(&lendingclub.Config{APIKey: "key", InvestorID: "12345/notes"})
		require.ErrorIs(t, err, lendingclub.ErrMalformedURLComponent)

		var malformed *lendingclub.MalformedURLComponentError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "12345/notes", malformed.Component)
	})
}

func TestNewLoanClient(t *testing.T) {
	t.Parallel()

	t.Run("loan-only capability", func(t *testing.T) {
		t.Parallel()

		client, err := lcclient.NewLoanClient(&lendingclub.Config{APIKey: "key"})
		require.NoError(t, err)
		assert.NotNil(t, client.Loans())

		_, isFull := client.(lendingclub.Client)
		assert.False(t, isFull)
	})

	t.Run("ignores investor ID", func(t *testing.T) {
		t.Parallel()

		config := &lendingclub.Config{APIKey: "key", InvestorID: "not valid!"}

		client, err := lcclient.NewLoanClient(config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "not valid!", config.InvestorID)
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := lcclient.NewLoanClient(&lendingclub.Config{})
		require.ErrorIs(t, err, lendingclub.ErrAPIKeyRequired)
	})

	t.Run("lists loans", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/investor/v1/loans/listing", r.URL.Path)
			assert.Equal(t, "key", r.Header.Get("Authorization"))

			_, _ = w.Write([]byte(`{"asOfDate":"2024-01-01","loans":[{"id":7}]}`))
		}))
		defer server.Close()

		client, err := lcclient.NewLoanClient(&lendingclub.Config{
			APIKey:   "key",
			Endpoint: server.URL + "/api/investor/v1/",
		})
		require.NoError(t, err)

		listed, err := client.Loans().ListedLoans(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", listed.AsOfDate)
		require.Len(t, listed.Loans, 1)
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := lcclient.NewWithAPIKey("key", "12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", client.InvestorID())

	_, err = lcclient.NewWithAPIKey("key", "")
	require.ErrorIs(t, err, lendingclub.ErrInvestorIDRequired)
}
