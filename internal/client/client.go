package client

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/lendingclub/internal/auth"
	"github.com/fivetwenty-io/lendingclub/internal/http"
	"github.com/fivetwenty-io/lendingclub/pkg/lendingclub"
)

// Client implements lendingclub.Client. Account operations are only
// available when it was built with an investor ID.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	endpoint     string
	investorID   string
	logger       lendingclub.Logger

	// Resource clients
	loans   *LoansClient
	account *AccountClient
}

// New creates a client from config. The investor ID is optional here;
// callers that need account operations check HasAccount.
func New(config *lendingclub.Config) (*Client, error) {
	if config == nil {
		return nil, lendingclub.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, lendingclub.ErrAPIKeyRequired
	}

	if config.InvestorID != "" {
		err := lendingclub.ValidatePathComponent(config.InvestorID)
		if err != nil {
			return nil, fmt.Errorf("invalid investor ID: %w", err)
		}
	}

	tokenManager := auth.NewAPIKeyManager(config.APIKey)
	endpoint := NormalizeEndpoint(config.Endpoint)
	httpClient := http.NewClient(tokenManager, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		endpoint:     endpoint,
		investorID:   config.InvestorID,
		logger:       config.Logger,
	}

	// Initialize resource clients
	client.loans = NewLoansClient(httpClient, endpoint)
	if config.InvestorID != "" {
		client.account = NewAccountClient(httpClient, endpoint, config.InvestorID)
	}

	return client, nil
}

// NormalizeEndpoint trims a trailing slash and adds https:// when the
// endpoint has no scheme. An empty endpoint yields DefaultEndpoint.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return lendingclub.DefaultEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return strings.TrimRight(endpoint, "/")
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *lendingclub.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	return httpOpts
}

// Loans implements lendingclub.LoanClient.Loans.
func (c *Client) Loans() lendingclub.LoansClient {
	return c.loans
}

// Account implements lendingclub.Client.Account. It returns nil when the
// client has no investor ID.
func (c *Client) Account() lendingclub.AccountClient {
	if c.account == nil {
		return nil
	}

	return c.account
}

// HasAccount reports whether account operations are available.
func (c *Client) HasAccount() bool {
	return c.account != nil
}

// InvestorID implements lendingclub.Client.InvestorID.
func (c *Client) InvestorID() string {
	return c.investorID
}

// Endpoint returns the normalized API endpoint.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// loggerAdapter adapts lendingclub.Logger to http.Logger.
type loggerAdapter struct {
	logger lendingclub.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
