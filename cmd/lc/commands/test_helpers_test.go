package commands_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const (
	testAPIKey     = "test-api-key"
	testInvestorID = "123"
)

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// recordedRequest is a request seen by the fake API.
type recordedRequest struct {
	Method  string
	Path    string
	Query   string
	Headers http.Header
	Body    string
}

// fakeAPI answers "METHOD /path" routes with canned JSON and records every request.
type fakeAPI struct {
	mu       sync.Mutex
	requests []recordedRequest
	server   *httptest.Server
}

type route struct {
	status int
	body   string
}

func newFakeAPI(t *testing.T, routes map[string]route) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}
	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		api.mu.Lock()
		api.requests = append(api.requests, recordedRequest{
			Method:  r.Method,
			Path:    r.URL.Path,
			Query:   r.URL.RawQuery,
			Headers: r.Header.Clone(),
			Body:    string(body),
		})
		api.mu.Unlock()

		assert.Equal(t, testAPIKey, r.Header.Get("Authorization"))

		answer, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)

			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(answer.status)
		_, _ = w.Write([]byte(answer.body))
	}))
	t.Cleanup(api.server.Close)

	return api
}

func (a *fakeAPI) Requests() []recordedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]recordedRequest(nil), a.requests...)
}

// setupCLI resets viper to a fresh configuration pointing at endpoint, with
// the config file in a temporary directory. Tests using it share viper's
// global state and must not run in parallel.
func setupCLI(t *testing.T, endpoint string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configFile := filepath.Join(t.TempDir(), "lc", "config.yml")

	viper.Set("config", configFile)
	viper.Set("api_key", testAPIKey)
	viper.Set("investor_id", testInvestorID)
	viper.Set("endpoint", endpoint)
	viper.Set("output", "table")

	return configFile
}

// runCommand executes cmd with args and returns what it wrote to stdout and stderr.
func runCommand(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer

	// cobra reads os.Args when args is nil
	if args == nil {
		args = []string{}
	}

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}
