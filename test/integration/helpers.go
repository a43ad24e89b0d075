//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lendingclub/pkg/lcclient"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey     string
	InvestorID string
	Endpoint   string
	LcPath     string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIKey:     os.Getenv("LC_API_KEY"),
		InvestorID: os.Getenv("LC_INVESTOR_ID"),
		Endpoint:   os.Getenv("LC_ENDPOINT"),
		LcPath:     getLcPath(),
		Verbose:    os.Getenv("LC_VERBOSE") == "true",
	}
}

// getLcPath determines the path to the lc binary
func getLcPath() string {
	if path := os.Getenv("LC_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../lc", "./lc", "../lc"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "lc"
}

// SkipIfMissingConfig skips test if no API key is configured
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("LC_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingInvestor skips test if no investor ID is configured
func (config *TestConfig) SkipIfMissingInvestor(t *testing.T) {
	t.Helper()

	config.SkipIfMissingConfig(t)

	if config.InvestorID == "" {
		t.Skip("LC_INVESTOR_ID not set, skipping account integration test")
	}
}

// SkipIfMissingBinary skips test if the lc binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.LcPath); err != nil {
		t.Skipf("lc binary not found at %s, skipping integration test", config.LcPath)
	}
}

// LibraryConfig returns the client configuration for the library tests.
func (config *TestConfig) LibraryConfig() *lendingclub.Config {
	return &lendingclub.Config{
		APIKey:     config.APIKey,
		InvestorID: config.InvestorID,
		Endpoint:   config.Endpoint,
	}
}

// NewClient creates a full client from the test configuration
func (config *TestConfig) NewClient(t *testing.T) lendingclub.Client {
	t.Helper()

	client, err := lcclient.New(config.LibraryConfig())
	require.NoError(t, err)

	return client
}

// CommandRunner runs the lc binary with an isolated config file
type CommandRunner struct {
	config     *TestConfig
	configFile string
	t          *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	t.Helper()

	return &CommandRunner{
		config:     config,
		configFile: filepath.Join(t.TempDir(), "config.yml"),
		t:          t,
	}
}

// Run executes an lc command and returns its output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	args = append([]string{"--config", runner.configFile}, args...)

	cmd := exec.Command(runner.config.LcPath, args...)
	cmd.Env = append(os.Environ(),
		"LC_API_KEY="+runner.config.APIKey,
		"LC_INVESTOR_ID="+runner.config.InvestorID,
		"LC_ENDPOINT="+runner.config.Endpoint,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.LcPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput checks that output is valid JSON and returns it decoded
func AssertJSONOutput(t *testing.T, output string) interface{} {
	t.Helper()

	var decoded interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &decoded), "output is not valid JSON: %s", output)

	return decoded
}
